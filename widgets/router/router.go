// Package router delivers mouse events to widgets in coordinates local to the
// surface they drew. It wraps the root widget of an application, hit tests its
// last frame and dispatches each mouse event to the widgets under the pointer:
// the topmost first, then its ancestors, until one consumes it.
package router

import (
	"slices"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

type Router struct {
	Child vxfw.Widget

	last vxfw.Surface
}

func New(child vxfw.Widget) *Router {
	return &Router{Child: child}
}

type hit struct {
	w   vxfw.Widget
	col int
	row int
}

// hitTest returns the widgets of s containing the point, outermost first.
// Children are visited in z order so the topmost widget is last
func hitTest(s vxfw.Surface, hits []hit, col int, row int) []hit {
	if s.Widget != nil {
		hits = append(hits, hit{w: s.Widget, col: col, row: row})
	}
	children := slices.Clone(s.Children)
	slices.SortStableFunc(children, func(a, b vxfw.SubSurface) int {
		return a.ZIndex - b.ZIndex
	})
	for _, ss := range children {
		lc, lr := col-ss.Origin.Col, row-ss.Origin.Row
		if lc < 0 || lr < 0 ||
			lc >= int(ss.Surface.Size.Width) ||
			lr >= int(ss.Surface.Size.Height) {
			continue
		}
		hits = hitTest(ss.Surface, hits, lc, lr)
	}
	return hits
}

// consumes reports whether cmd stops the propagation of an event
func consumes(cmd vxfw.Command) bool {
	switch cmd := cmd.(type) {
	case vxfw.ConsumeEventCmd:
		return true
	case vxfw.BatchCmd:
		return slices.ContainsFunc(cmd, consumes)
	case []vxfw.Command:
		return slices.ContainsFunc(cmd, consumes)
	}
	return false
}

// Dispatch delivers a mouse event at the given screen position to the widgets
// of the last frame and returns their commands
func (r *Router) Dispatch(ev vaxis.Mouse) (vxfw.BatchCmd, error) {
	hits := hitTest(r.last, nil, ev.Col, ev.Row)
	cmds := vxfw.BatchCmd{}
	for i := len(hits) - 1; i >= 0; i -= 1 {
		h := hits[i]
		eh, ok := h.w.(vxfw.EventHandler)
		if !ok {
			continue
		}
		local := ev
		local.Col, local.Row = h.col, h.row
		ph := vxfw.BubblePhase
		if i == len(hits)-1 {
			ph = vxfw.TargetPhase
		}
		cmd, err := eh.HandleEvent(local, ph)
		if err != nil {
			return nil, err
		}
		if cmd == nil {
			continue
		}
		cmds = append(cmds, cmd)
		if consumes(cmd) {
			break
		}
	}
	return cmds, nil
}

// CaptureEvent takes every mouse event away from the default dispatch
func (r *Router) CaptureEvent(ev vaxis.Event) (vxfw.Command, error) {
	mouse, ok := ev.(vaxis.Mouse)
	if !ok {
		return nil, nil
	}
	cmds, err := r.Dispatch(mouse)
	if err != nil {
		return nil, err
	}
	return append(cmds, vxfw.ConsumeEventCmd{}), nil
}

// HandleEvent forwards events sent to the root, such as Init, to the child
func (r *Router) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if _, ok := ev.(vaxis.Mouse); ok {
		return nil, nil
	}
	if ph == vxfw.BubblePhase {
		return nil, nil
	}
	eh, ok := r.Child.(vxfw.EventHandler)
	if !ok {
		return nil, nil
	}
	return eh.HandleEvent(ev, ph)
}

func (r *Router) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	chS, err := r.Child.Draw(ctx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	r.last = chS
	return vxfw.Surface{
		Size:     chS.Size,
		Widget:   r,
		Children: []vxfw.SubSurface{vxfw.NewSubSurface(0, 0, chS)},
	}, nil
}

var _ vxfw.Widget = &Router{}
var _ vxfw.EventCapturer = &Router{}
