// Package demo contains the two demo screens: a data grid whose overlay
// scrollbar appears while the pointer hovers it, and a virtualized grid whose
// scroll position is synchronized with a detached overlay scrollbar.
package demo

import (
	"time"

	"git.sr.ht/~rockorager/vaxis/vxfw"

	"git.sr.ht/~rockorager/gridscroll/log"
	"git.sr.ht/~rockorager/gridscroll/scroll"
	"git.sr.ht/~rockorager/gridscroll/widgets/overlay"
	"git.sr.ht/~rockorager/gridscroll/widgets/viewport"
)

// Component is a demo screen. Mount builds the scrollbar wiring of the
// component and Unmount releases it. A component can be mounted again after
// it was unmounted. Sending Init to a mounted component returns the command
// focusing its grid
type Component interface {
	vxfw.Widget
	vxfw.EventHandler
	Mount() error
	Unmount()
	// Busy reports whether the component needs more frames to finish an
	// animation, an auto hide delay or a scroll synchronization
	Busy() bool
	Title() string
}

// binding keeps an overlay scrollbar in sync with a grid viewport
type binding struct {
	scrollbar *overlay.Scrollbar
	sync      *scroll.Synchronizer
	frames    scroll.FrameQueue
	// OnDestroy of the next scrollbar
	onDestroy func()
}

func (b *binding) mounted() bool {
	return b.scrollbar != nil
}

func (b *binding) mount(vp *viewport.Viewport, opts overlay.Options, now func() time.Time) {
	if b.mounted() {
		return
	}
	sb := overlay.New(opts)
	sb.Now = now
	sb.OnDestroy = b.onDestroy
	sb.SetExtent(vp.Extent())
	sb.SetScrollPosition(vp.ScrollPosition(), true)
	vp.OnResize = sb.SetExtent
	b.scrollbar = sb
	b.sync = scroll.New(vp, sb, &b.frames)
	log.Debug("demo: mounted scrollbar at %s", vp.ScrollPosition())
}

func (b *binding) unmount(vp *viewport.Viewport) {
	if !b.mounted() {
		return
	}
	b.sync.Close()
	b.scrollbar.Destroy()
	vp.OnResize = nil
	b.sync = nil
	b.scrollbar = nil
	log.Debug("demo: unmounted scrollbar")
}

// frame runs the callbacks requested since the previous frame
func (b *binding) frame() {
	b.frames.Flush()
}

func (b *binding) busy(vp *viewport.Viewport) bool {
	if b.frames.Pending() > 0 || vp.Animating() {
		return true
	}
	return b.mounted() && b.scrollbar.Busy()
}
