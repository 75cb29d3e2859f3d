package scroll

import (
	"git.sr.ht/~rockorager/gridscroll/log"
)

// State is the state of a [Synchronizer]
type State int

const (
	// Idle means scroll events from either side are forwarded
	Idle State = iota
	// Forwarding means an update is still propagating. Events from either
	// side are suppressed until the next frame
	Forwarding
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Forwarding:
		return "forwarding"
	}
	return "unknown"
}

type side int

const (
	sideNone side = iota
	sideNative
	sideOverlay
)

func (s side) String() string {
	switch s {
	case sideNative:
		return "native"
	case sideOverlay:
		return "overlay"
	}
	return "none"
}

// Stats counts what a [Synchronizer] did with the events it received
type Stats struct {
	// Forwarded is the number of positions copied from one side to the other
	Forwarded int
	// Suppressed is the number of events dropped while Forwarding
	Suppressed int
	// Reconciled is the number of forwards made at the end of a frame for
	// input that was suppressed during it
	Reconciled int
}

// Synchronizer keeps a native scroll container and an overlay scrollbar at
// the same position.
//
// A scroll event on either side copies that side's position to the other
// side with an immediate scroll and moves the synchronizer to Forwarding. The
// echo event caused by the copy arrives while Forwarding and is dropped, so
// an update never bounces back to where it came from. The next frame returns
// the synchronizer to Idle.
//
// A dropped event whose position disagrees with the other side is genuine
// input which raced the forward (for example a wheel scroll during a thumb
// drag). The side it came from is remembered and forwarded again when the
// frame releases the guard, so both sides agree one frame after the last
// event.
//
// Synchronizer is not safe for concurrent use. All calls, including scroll
// events and frame callbacks, must come from the UI goroutine.
type Synchronizer struct {
	native  Scroller
	overlay Scroller
	frames  Frames

	state   State
	pending side
	closed  bool
	unsubs  []func()
	stats   Stats
}

// New connects native and overlay. If either scroller or frames is nil the
// synchronizer does nothing until it is closed
func New(native Scroller, overlay Scroller, frames Frames) *Synchronizer {
	s := &Synchronizer{
		native:  native,
		overlay: overlay,
		frames:  frames,
	}
	if native == nil || overlay == nil || frames == nil {
		log.Debug("scroll sync: target not mounted, sync disabled")
		return s
	}
	s.unsubs = []func(){
		native.OnScroll(func(Position) { s.handle(sideNative) }),
		overlay.OnScroll(func(Position) { s.handle(sideOverlay) }),
	}
	return s
}

// State returns the current guard state
func (s *Synchronizer) State() State {
	return s.state
}

// Stats returns the event counters
func (s *Synchronizer) Stats() Stats {
	return s.stats
}

// Close removes both scroll subscriptions. It is safe to call more than once
func (s *Synchronizer) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	log.Debug("scroll sync: closed, %+v", s.stats)
}

func (s *Synchronizer) scrollers(src side) (Scroller, Scroller) {
	if src == sideNative {
		return s.native, s.overlay
	}
	return s.overlay, s.native
}

func (s *Synchronizer) handle(src side) {
	if s.closed {
		return
	}
	if s.state == Forwarding {
		s.stats.Suppressed += 1
		from, to := s.scrollers(src)
		if from.ScrollPosition() != to.ScrollPosition() {
			s.pending = src
		}
		log.Trace("scroll sync: suppressed %s event, pending=%s", src, s.pending)
		return
	}
	s.forward(src)
}

func (s *Synchronizer) forward(src side) {
	from, to := s.scrollers(src)
	s.state = Forwarding
	s.stats.Forwarded += 1
	pos := from.ScrollPosition()
	log.Trace("scroll sync: %s -> %s", src, pos)
	to.SetScrollPosition(pos, true)
	s.frames.RequestFrame(s.release)
}

// release is the frame callback which ends a forward
func (s *Synchronizer) release() {
	s.state = Idle
	src := s.pending
	s.pending = sideNone
	if s.closed || src == sideNone {
		return
	}
	from, to := s.scrollers(src)
	if from.ScrollPosition() == to.ScrollPosition() {
		return
	}
	s.stats.Reconciled += 1
	s.forward(src)
}
