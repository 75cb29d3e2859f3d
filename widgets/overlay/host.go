package overlay

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// Host draws Child with the bars of a Scrollbar over its right and bottom
// edges. Pointer movement over the child is reported to the scrollbar, which
// drives the leave and move auto hide modes
type Host struct {
	Child     vxfw.Widget
	Scrollbar *Scrollbar
}

func NewHost(child vxfw.Widget, sb *Scrollbar) *Host {
	return &Host{
		Child:     child,
		Scrollbar: sb,
	}
}

func (h *Host) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if h.Scrollbar == nil {
		return nil, nil
	}
	switch ev := ev.(type) {
	case vxfw.MouseEnter:
		h.Scrollbar.PointerEnter()
		return vxfw.RedrawCmd{}, nil
	case vxfw.MouseLeave:
		h.Scrollbar.PointerLeave()
		h.Scrollbar.EndDrag()
		return vxfw.RedrawCmd{}, nil
	case vaxis.Mouse:
		h.Scrollbar.PointerMove()
		// A release over the child never reaches the bar
		if ev.EventType == vaxis.EventRelease && ph == vxfw.BubblePhase {
			h.Scrollbar.EndDrag()
		}
		return vxfw.RedrawCmd{}, nil
	}
	return nil, nil
}

func (h *Host) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	chS, err := h.Child.Draw(ctx)
	if err != nil {
		return vxfw.Surface{}, err
	}
	s := vxfw.Surface{
		Size:     chS.Size,
		Widget:   h,
		Children: []vxfw.SubSurface{vxfw.NewSubSurface(0, 0, chS)},
	}
	if h.Scrollbar == nil {
		return s, nil
	}
	bars, err := h.Scrollbar.Bars(ctx.WithConstraints(chS.Size, chS.Size))
	if err != nil {
		return s, err
	}
	s.Children = append(s.Children, bars...)
	return s, nil
}

var _ vxfw.Widget = &Host{}
