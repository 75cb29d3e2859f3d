// Package overlay provides a scrollbar drawn over the edge of a scrollable
// host, independently of the host's own scrolling. The scrollbar keeps its
// own scroll position and reports changes through [scroll.Scroller], so it can
// be synchronized with any scroll container.
package overlay

import (
	"math"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"git.sr.ht/~rockorager/gridscroll/log"
	"git.sr.ht/~rockorager/gridscroll/scroll"
)

// Number of cells scrolled by one wheel notch over the scrollbar
const wheelStep = 3

type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) String() string {
	if a == axisX {
		return "x"
	}
	return "y"
}

type dragState struct {
	axis axis
	// cell within the handle where it was grabbed
	grab int
}

type Scrollbar struct {
	Options Options
	// Now returns the current time. Defaults to time.Now
	Now func() time.Time
	// OnDestroy is called once, when the scrollbar is destroyed
	OnDestroy func()

	pos       scroll.Position
	extent    scroll.Extent
	anim      *scroll.Animation
	emitter   scroll.Emitter
	destroyed bool

	hovered    bool
	leftAt     time.Time
	movedAt    time.Time
	scrolledAt time.Time

	drag       *dragState
	vertical   *bar
	horizontal *bar
}

func New(opts Options) *Scrollbar {
	s := &Scrollbar{Options: opts}
	s.vertical = &bar{sb: s, axis: axisY}
	s.horizontal = &bar{sb: s, axis: axisX}
	return s
}

func (s *Scrollbar) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// ScrollPosition implements scroll.Scroller
func (s *Scrollbar) ScrollPosition() scroll.Position {
	return s.pos
}

// SetScrollPosition implements scroll.Scroller
func (s *Scrollbar) SetScrollPosition(pos scroll.Position, immediate bool) {
	if s.destroyed {
		return
	}
	target := s.extent.Clamp(pos)
	if immediate {
		s.anim = nil
		s.setPosition(target)
		return
	}
	if target == s.pos {
		s.anim = nil
		return
	}
	s.anim = scroll.NewAnimation(s.pos, target, s.now())
}

// OnScroll implements scroll.Scroller
func (s *Scrollbar) OnScroll(fn func(scroll.Position)) func() {
	return s.emitter.Subscribe(fn)
}

// Destroy implements scroll.Scroller. It removes every listener and stops
// drawing. Destroy is safe to call more than once; OnDestroy runs on the first
// call only
func (s *Scrollbar) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.anim = nil
	s.drag = nil
	s.emitter.Reset()
	log.Debug("overlay: destroyed")
	if s.OnDestroy != nil {
		s.OnDestroy()
	}
}

// Destroyed reports whether Destroy was called
func (s *Scrollbar) Destroyed() bool {
	return s.destroyed
}

// Listeners returns the number of active scroll listeners
func (s *Scrollbar) Listeners() int {
	return s.emitter.Len()
}

// SetExtent sets the size of the scrollable area the scrollbar represents.
// The position is clamped to the new extent
func (s *Scrollbar) SetExtent(e scroll.Extent) {
	if s.destroyed || e == s.extent {
		return
	}
	s.extent = e
	if s.anim != nil {
		s.anim.To = e.Clamp(s.anim.To)
	}
	s.setPosition(e.Clamp(s.pos))
}

func (s *Scrollbar) Extent() scroll.Extent {
	return s.extent
}

// PointerEnter tells the scrollbar the pointer entered its host
func (s *Scrollbar) PointerEnter() {
	s.hovered = true
	s.movedAt = s.now()
}

// PointerMove tells the scrollbar the pointer moved over its host
func (s *Scrollbar) PointerMove() {
	s.movedAt = s.now()
}

// PointerLeave tells the scrollbar the pointer left its host
func (s *Scrollbar) PointerLeave() {
	if !s.hovered {
		return
	}
	s.hovered = false
	s.leftAt = s.now()
}

// Hovered reports whether the pointer is over the host
func (s *Scrollbar) Hovered() bool {
	return s.hovered
}

// Dragging reports whether the handle is being dragged
func (s *Scrollbar) Dragging() bool {
	return s.drag != nil
}

// EndDrag ends a drag of the handle and reports whether one was in progress.
// Hosts call it when they see the button released or the pointer leave
func (s *Scrollbar) EndDrag() bool {
	if s.drag == nil {
		return false
	}
	s.drag = nil
	log.Trace("overlay: drag ended")
	return true
}

// Busy reports whether the scrollbar needs more frames: a smooth scroll is in
// progress or an auto hide delay has not elapsed
func (s *Scrollbar) Busy() bool {
	if s.destroyed {
		return false
	}
	if s.anim != nil {
		return true
	}
	if s.Options.AutoHide == AutoHideNever {
		return false
	}
	now := s.now()
	d := s.Options.AutoHideDelay
	return within(s.leftAt, now, d) ||
		within(s.movedAt, now, d) ||
		within(s.scrolledAt, now, d)
}

// Visible reports whether the vertical and horizontal bars are shown
func (s *Scrollbar) Visible() (vertical bool, horizontal bool) {
	now := s.now()
	return s.visible(axisY, now), s.visible(axisX, now)
}

func within(t time.Time, now time.Time, d time.Duration) bool {
	return !t.IsZero() && now.Before(t.Add(d))
}

func (s *Scrollbar) overflow(a axis) Overflow {
	if a == axisX {
		return s.Options.OverflowX
	}
	return s.Options.OverflowY
}

func (s *Scrollbar) visible(a axis, now time.Time) bool {
	if s.destroyed || s.overflow(a) != OverflowScroll {
		return false
	}
	ox, oy := s.extent.Overflows()
	overflows := oy
	if a == axisX {
		overflows = ox
	}
	switch s.Options.Visibility {
	case VisibilityHidden:
		return false
	case VisibilityAuto:
		if !overflows {
			return false
		}
	}
	if s.drag != nil {
		return true
	}

	d := s.Options.AutoHideDelay
	switch s.Options.AutoHide {
	case AutoHideLeave:
		return s.hovered ||
			within(s.leftAt, now, d) ||
			within(s.scrolledAt, now, d)
	case AutoHideMove:
		return within(s.movedAt, now, d) ||
			within(s.scrolledAt, now, d)
	case AutoHideScroll:
		return within(s.scrolledAt, now, d)
	}
	return true
}

func (s *Scrollbar) setPosition(p scroll.Position) {
	if p == s.pos {
		return
	}
	s.pos = p
	s.scrolledAt = s.now()
	s.emitter.Emit(p)
}

// advance moves a smooth scroll one frame forward
func (s *Scrollbar) advance() {
	if s.anim == nil {
		return
	}
	p, done := s.anim.At(s.now())
	if done {
		s.anim = nil
	}
	s.setPosition(s.extent.Clamp(p))
}

func (s *Scrollbar) get(a axis, p scroll.Position) int {
	if a == axisX {
		return p.X
	}
	return p.Y
}

func (s *Scrollbar) with(a axis, p scroll.Position, v int) scroll.Position {
	if a == axisX {
		p.X = v
	} else {
		p.Y = v
	}
	return p
}

// lengths returns the content length and view length of an axis
func (s *Scrollbar) lengths(a axis) (int, int) {
	if a == axisX {
		return s.extent.Content.Width, s.extent.View.Width
	}
	return s.extent.Content.Height, s.extent.View.Height
}

// handle returns the first cell and the length of the handle on a track of n
// cells
func (s *Scrollbar) handle(a axis, n int) (int, int) {
	content, view := s.lengths(a)
	return thumb(n, s.get(a, s.pos), s.get(a, s.extent.Max()), content, view)
}

// thumb computes handle geometry. The handle is at least one cell long, its
// length is proportional to the visible fraction of the content, and it only
// touches either end of the track when the position is at that end
func thumb(n int, pos int, maxPos int, content int, view int) (start int, length int) {
	if n <= 0 || content <= 0 {
		return 0, 0
	}
	length = int(math.Round(float64(view) * float64(n) / float64(content)))
	length = min(max(length, 1), n)
	travel := n - length
	if travel == 0 || maxPos <= 0 {
		return 0, length
	}
	start = int(math.Round(float64(pos) * float64(travel) / float64(maxPos)))
	start = min(max(start, 0), travel)
	if travel > 1 {
		if start == 0 && pos > 0 {
			start = 1
		} else if start == travel && pos < maxPos {
			start = travel - 1
		}
	}
	return start, length
}

// positionAt converts a handle start cell to a scroll offset
func positionAt(start int, n int, length int, maxPos int) int {
	travel := n - length
	if travel <= 0 {
		return 0
	}
	start = min(max(start, 0), travel)
	return int(math.Round(float64(start) * float64(maxPos) / float64(travel)))
}

// Bars draws the visible bars for a host of the size of ctx.Max. The returned
// subsurfaces are positioned along the right and bottom edges of the host and
// raised above it, ready to be appended to the host's surface
func (s *Scrollbar) Bars(ctx vxfw.DrawContext) ([]vxfw.SubSurface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		panic("Scrollbar must have bounded constraints")
	}
	s.advance()
	now := s.now()
	showY := s.visible(axisY, now)
	showX := s.visible(axisX, now)

	w, h := ctx.Max.Width, ctx.Max.Height
	subs := []vxfw.SubSurface{}
	if showY && w > 0 {
		bh := h
		if showX && bh > 0 {
			bh -= 1
		}
		surf, err := s.vertical.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: 1, Height: bh}))
		if err != nil {
			return nil, err
		}
		ss := vxfw.NewSubSurface(int(w)-1, 0, surf)
		ss.ZIndex = 1
		subs = append(subs, ss)
	}
	if showX && h > 0 {
		bw := w
		if showY && bw > 0 {
			bw -= 1
		}
		surf, err := s.horizontal.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: bw, Height: 1}))
		if err != nil {
			return nil, err
		}
		ss := vxfw.NewSubSurface(0, int(h)-1, surf)
		ss.ZIndex = 1
		subs = append(subs, ss)
	}
	return subs, nil
}

// HandleEvent handles pointer events when the scrollbar is drawn as a widget
// of its own
func (s *Scrollbar) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if s.destroyed {
		return nil, nil
	}
	switch ev := ev.(type) {
	case vxfw.MouseEnter:
		s.PointerEnter()
		return vxfw.RedrawCmd{}, nil
	case vxfw.MouseLeave:
		s.PointerLeave()
		s.EndDrag()
		return vxfw.RedrawCmd{}, nil
	case vaxis.Mouse:
		s.PointerMove()
		if s.wheel(axisY, ev) {
			return vxfw.ConsumeAndRedraw(), nil
		}
		if ev.EventType == vaxis.EventRelease {
			s.EndDrag()
		}
		return vxfw.RedrawCmd{}, nil
	}
	return nil, nil
}

// Draw draws the scrollbar as a standalone widget filling ctx.Max, for hosts
// which give the scrollbar a gutter of its own
func (s *Scrollbar) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	subs, err := s.Bars(ctx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	return vxfw.Surface{
		Size:     ctx.Max,
		Widget:   s,
		Children: subs,
	}, nil
}

func (s *Scrollbar) wheel(a axis, ev vaxis.Mouse) bool {
	var d int
	switch ev.Button {
	case vaxis.MouseWheelDown:
		d = wheelStep
	case vaxis.MouseWheelUp:
		d = -wheelStep
	default:
		return false
	}
	if ev.Modifiers&vaxis.ModShift != 0 {
		a = axisX
	}
	target := s.pos
	if s.anim != nil {
		target = s.anim.To
	}
	s.SetScrollPosition(s.with(a, target, s.get(a, target)+d), true)
	return true
}

var _ vxfw.Widget = &Scrollbar{}
var _ scroll.Scroller = &Scrollbar{}
