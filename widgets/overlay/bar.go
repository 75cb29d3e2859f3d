package overlay

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

// bar is the widget of one axis of a Scrollbar. It draws the track and the
// handle and turns presses and drags into scroll positions
type bar struct {
	sb    *Scrollbar
	axis  axis
	hover bool
	// length of the track in the last draw
	n int
}

// cell returns the mouse coordinate along the bar. Mouse events are delivered
// in coordinates local to the target surface
func (b *bar) cell(ev vaxis.Mouse) int {
	if b.axis == axisX {
		return ev.Col
	}
	return ev.Row
}

func (b *bar) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	s := b.sb
	if s.destroyed {
		return nil, nil
	}
	switch ev := ev.(type) {
	case vxfw.MouseEnter:
		b.hover = true
		return vxfw.RedrawCmd{}, nil
	case vxfw.MouseLeave:
		b.hover = false
		return vxfw.RedrawCmd{}, nil
	case vaxis.Mouse:
		s.PointerMove()
		if s.wheel(b.axis, ev) {
			return vxfw.ConsumeAndRedraw(), nil
		}
		switch ev.EventType {
		case vaxis.EventPress:
			if ev.Button != vaxis.MouseLeftButton {
				return nil, nil
			}
			b.press(b.cell(ev))
			return vxfw.ConsumeAndRedraw(), nil
		case vaxis.EventMotion:
			if s.drag == nil {
				return nil, nil
			}
			// The button was released somewhere the bar could not see
			if ev.Button != vaxis.MouseLeftButton {
				s.EndDrag()
				return vxfw.RedrawCmd{}, nil
			}
			if s.drag.axis != b.axis {
				return nil, nil
			}
			b.dragTo(b.cell(ev))
			return vxfw.ConsumeAndRedraw(), nil
		case vaxis.EventRelease:
			if !s.EndDrag() {
				return nil, nil
			}
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

// press handles a left button press at cell c of the track
func (b *bar) press(c int) {
	s := b.sb
	start, length := s.handle(b.axis, b.n)
	maxPos := s.get(b.axis, s.extent.Max())
	if c >= start && c < start+length {
		if s.Options.DragScroll {
			s.drag = &dragState{axis: b.axis, grab: c - start}
		}
		return
	}
	if !s.Options.ClickScroll {
		return
	}
	// Center the handle on the pressed cell
	v := positionAt(c-length/2, b.n, length, maxPos)
	s.SetScrollPosition(s.with(b.axis, s.pos, v), false)
}

// dragTo moves the grabbed handle so the grabbed cell is at c
func (b *bar) dragTo(c int) {
	s := b.sb
	_, length := s.handle(b.axis, b.n)
	maxPos := s.get(b.axis, s.extent.Max())
	v := positionAt(c-s.drag.grab, b.n, length, maxPos)
	s.SetScrollPosition(s.with(b.axis, s.pos, v), true)
}

func (b *bar) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s := b.sb
	w, h := ctx.Max.Width, ctx.Max.Height
	surf := vxfw.NewSurface(w, h, b)

	track, handle := verticalTrack, verticalHandle
	b.n = int(h)
	if b.axis == axisX {
		track, handle = horizontalTrack, horizontalHandle
		b.n = int(w)
	}

	p := palettes[s.Options.Theme]
	hs := p.handle
	switch {
	case s.drag != nil && s.drag.axis == b.axis:
		hs = p.active
	case b.hover:
		hs = p.hover
	}

	start, length := s.handle(b.axis, b.n)
	for i := 0; i < b.n; i += 1 {
		cell := vaxis.Cell{
			Character: track,
			Style:     p.track,
		}
		if i >= start && i < start+length {
			cell = vaxis.Cell{
				Character: handle,
				Style:     hs,
			}
		}
		if b.axis == axisX {
			surf.WriteCell(uint16(i), 0, cell)
		} else {
			surf.WriteCell(0, uint16(i), cell)
		}
	}
	return surf, nil
}

var _ vxfw.Widget = &bar{}
