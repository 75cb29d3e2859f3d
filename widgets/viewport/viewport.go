package viewport

import (
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"

	"git.sr.ht/~rockorager/gridscroll/log"
	"git.sr.ht/~rockorager/gridscroll/scroll"
)

// Number of rows (or columns) scrolled by one wheel notch
const wheelStep = 3

// Content is drawn inside a [Viewport]. Content only has to draw the part of
// itself which is visible at the given offset
type Content interface {
	// ContentSize returns the full size of the content, in cells
	ContentSize(ctx vxfw.DrawContext) scroll.Size
	// DrawViewport draws the content scrolled to offset. The returned
	// surface should fit ctx.Max
	DrawViewport(ctx vxfw.DrawContext, offset scroll.Position) (vxfw.Surface, error)
}

// Viewport is a scroll container. It owns the scroll position of its Content
// and implements [scroll.Scroller]
type Viewport struct {
	Content Content
	// DisableEventHandlers prevents the viewport from handling key or mouse
	// events
	DisableEventHandlers bool
	// OnResize is called when the content or view size changes
	OnResize func(scroll.Extent)
	// Now returns the current time. Defaults to time.Now
	Now func() time.Time

	pos       scroll.Position
	extent    scroll.Extent
	anim      *scroll.Animation
	emitter   scroll.Emitter
	destroyed bool
}

func New(content Content) *Viewport {
	return &Viewport{
		Content: content,
	}
}

func (v *Viewport) now() time.Time {
	if v.Now == nil {
		return time.Now()
	}
	return v.Now()
}

// ScrollPosition implements scroll.Scroller
func (v *Viewport) ScrollPosition() scroll.Position {
	return v.pos
}

// SetScrollPosition implements scroll.Scroller. The position is clamped to
// the last measured extent
func (v *Viewport) SetScrollPosition(pos scroll.Position, immediate bool) {
	if v.destroyed {
		return
	}
	target := v.extent.Clamp(pos)
	if immediate {
		v.anim = nil
		v.setPosition(target)
		return
	}
	if target == v.pos {
		v.anim = nil
		return
	}
	v.anim = scroll.NewAnimation(v.pos, target, v.now())
}

// OnScroll implements scroll.Scroller
func (v *Viewport) OnScroll(fn func(scroll.Position)) func() {
	return v.emitter.Subscribe(fn)
}

// Destroy implements scroll.Scroller
func (v *Viewport) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.anim = nil
	v.emitter.Reset()
}

// Listeners returns the number of active scroll listeners
func (v *Viewport) Listeners() int {
	return v.emitter.Len()
}

// Extent returns the extent measured by the last draw
func (v *Viewport) Extent() scroll.Extent {
	return v.extent
}

// Animating reports whether a smooth scroll is in progress
func (v *Viewport) Animating() bool {
	return v.anim != nil
}

// ScrollBy scrolls immediately by a relative amount
func (v *Viewport) ScrollBy(dx int, dy int) {
	p := v.pos
	if v.anim != nil {
		p = v.anim.To
	}
	v.SetScrollPosition(scroll.Position{X: p.X + dx, Y: p.Y + dy}, true)
}

// ScrollToTop scrolls to the first row
func (v *Viewport) ScrollToTop(smooth bool) {
	v.SetScrollPosition(scroll.Position{X: v.pos.X, Y: 0}, !smooth)
}

// ScrollToBottom scrolls so that the last row is at the bottom of the view.
// The resulting offset is content height - view height
func (v *Viewport) ScrollToBottom(smooth bool) {
	v.SetScrollPosition(scroll.Position{X: v.pos.X, Y: v.extent.Max().Y}, !smooth)
}

func (v *Viewport) setPosition(p scroll.Position) {
	if p == v.pos {
		return
	}
	v.pos = p
	log.Trace("viewport: scrolled to %s", p)
	v.emitter.Emit(p)
}

// ScrollKey scrolls in response to a navigation key. It returns false if the
// key is not a navigation key
func (v *Viewport) ScrollKey(ev vaxis.Key) bool {
	if ev.EventType == vaxis.EventRelease {
		return false
	}
	page := max(1, v.extent.View.Height-1)
	switch {
	case ev.Matches('j') || ev.Matches(vaxis.KeyDown):
		v.ScrollBy(0, 1)
	case ev.Matches('k') || ev.Matches(vaxis.KeyUp):
		v.ScrollBy(0, -1)
	case ev.Matches('l') || ev.Matches(vaxis.KeyRight):
		v.ScrollBy(1, 0)
	case ev.Matches('h') || ev.Matches(vaxis.KeyLeft):
		v.ScrollBy(-1, 0)
	case ev.Matches(vaxis.KeyPgDown) || ev.Matches('f', vaxis.ModCtrl):
		v.ScrollBy(0, page)
	case ev.Matches(vaxis.KeyPgUp) || ev.Matches('b', vaxis.ModCtrl):
		v.ScrollBy(0, -page)
	case ev.Matches('g') || ev.Matches(vaxis.KeyHome):
		v.ScrollToTop(false)
	case ev.Matches('G') || ev.Matches(vaxis.KeyEnd):
		v.ScrollToBottom(false)
	default:
		return false
	}
	return true
}

// ScrollWheel scrolls in response to a wheel event. Shift scrolls
// horizontally. It returns false if ev is not a wheel event
func (v *Viewport) ScrollWheel(ev vaxis.Mouse) bool {
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
		v.ScrollBy(d, 0)
	} else {
		v.ScrollBy(0, d)
	}
	return true
}

func (v *Viewport) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if v.DisableEventHandlers || v.destroyed {
		return nil, nil
	}
	switch ev := ev.(type) {
	case vaxis.Key:
		if v.ScrollKey(ev) {
			return vxfw.ConsumeAndRedraw(), nil
		}
	case vaxis.Mouse:
		if v.ScrollWheel(ev) {
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

func (v *Viewport) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		panic("Viewport cannot have unbounded height or width")
	}

	extent := scroll.Extent{
		Content: v.Content.ContentSize(ctx),
		View: scroll.Size{
			Width:  int(ctx.Max.Width),
			Height: int(ctx.Max.Height),
		},
	}
	if extent != v.extent {
		v.extent = extent
		if v.anim != nil {
			v.anim.To = extent.Clamp(v.anim.To)
		}
		v.setPosition(extent.Clamp(v.pos))
		if v.OnResize != nil {
			v.OnResize(extent)
		}
	}

	// Advance any smooth scroll. Each step is a scroll event
	if v.anim != nil {
		p, done := v.anim.At(v.now())
		if done {
			v.anim = nil
		}
		v.setPosition(extent.Clamp(p))
	}

	s := vxfw.NewSurface(ctx.Max.Width, ctx.Max.Height, v)
	chS, err := v.Content.DrawViewport(ctx, v.pos)
	if err != nil {
		return s, err
	}
	s.AddChild(0, 0, chS)
	return s, nil
}

var _ vxfw.Widget = &Viewport{}
var _ scroll.Scroller = &Viewport{}
