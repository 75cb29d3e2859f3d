package scroll

import "fmt"

// Position is a scroll offset, in cells. X is the number of columns scrolled
// past the left edge and Y the number of rows scrolled past the top edge
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type Size struct {
	Width  int
	Height int
}

// Extent describes a scrollable area: the size of everything that can be
// scrolled into view and the size of the visible part
type Extent struct {
	Content Size
	View    Size
}

// Max returns the largest valid scroll position for the extent
func (e Extent) Max() Position {
	return Position{
		X: max(0, e.Content.Width-e.View.Width),
		Y: max(0, e.Content.Height-e.View.Height),
	}
}

// Clamp returns p limited to [0, Max] on both axes
func (e Extent) Clamp(p Position) Position {
	m := e.Max()
	return Position{
		X: clamp(p.X, 0, m.X),
		Y: clamp(p.Y, 0, m.Y),
	}
}

// Overflows reports whether the content is larger than the view on each axis
func (e Extent) Overflows() (x bool, y bool) {
	return e.Content.Width > e.View.Width, e.Content.Height > e.View.Height
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
