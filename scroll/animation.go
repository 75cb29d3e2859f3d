package scroll

import (
	"math"
	"time"
)

// DefaultDuration is the length of a smooth scroll
const DefaultDuration = 150 * time.Millisecond

// Animation is a smooth scroll between two positions
type Animation struct {
	From     Position
	To       Position
	Start    time.Time
	Duration time.Duration
}

func NewAnimation(from Position, to Position, now time.Time) *Animation {
	return &Animation{
		From:     from,
		To:       to,
		Start:    now,
		Duration: DefaultDuration,
	}
}

// At returns the position of the animation at now, and whether the animation
// has finished
func (a *Animation) At(now time.Time) (Position, bool) {
	elapsed := now.Sub(a.Start)
	if a.Duration <= 0 || elapsed >= a.Duration {
		return a.To, true
	}
	if elapsed < 0 {
		return a.From, false
	}
	t := easeOut(float64(elapsed) / float64(a.Duration))
	return Position{
		X: lerp(a.From.X, a.To.X, t),
		Y: lerp(a.From.Y, a.To.Y, t),
	}, false
}

// cubic ease out
func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func lerp(a, b int, t float64) int {
	return a + int(math.Round(float64(b-a)*t))
}
