package frame

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
)

var (
	horizontal  = vaxis.Character{Grapheme: "─", Width: 1}
	vertical    = vaxis.Character{Grapheme: "│", Width: 1}
	topLeft     = vaxis.Character{Grapheme: "╭", Width: 1}
	topRight    = vaxis.Character{Grapheme: "╮", Width: 1}
	bottomRight = vaxis.Character{Grapheme: "╯", Width: 1}
	bottomLeft  = vaxis.Character{Grapheme: "╰", Width: 1}
)

// Frame draws a rounded border around Child, with an optional Title in the
// top edge. The frame fills its maximum size
type Frame struct {
	Child      vxfw.Widget
	Title      string
	Style      vaxis.Style
	TitleStyle vaxis.Style
}

func New(child vxfw.Widget, title string) *Frame {
	return &Frame{
		Child: child,
		Title: title,
		TitleStyle: vaxis.Style{
			Attribute: vaxis.AttrBold,
		},
	}
}

func (f *Frame) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		panic("Frame cannot have unbounded height or width")
	}
	w, h := ctx.Max.Width, ctx.Max.Height
	s := vxfw.NewSurface(w, h, f)
	if w < 2 || h < 2 {
		return s, nil
	}

	cell := func(ch vaxis.Character) vaxis.Cell {
		return vaxis.Cell{Character: ch, Style: f.Style}
	}
	s.WriteCell(0, 0, cell(topLeft))
	s.WriteCell(0, h-1, cell(bottomLeft))
	s.WriteCell(w-1, 0, cell(topRight))
	s.WriteCell(w-1, h-1, cell(bottomRight))
	for i := uint16(1); i < w-1; i += 1 {
		s.WriteCell(i, 0, cell(horizontal))
		s.WriteCell(i, h-1, cell(horizontal))
	}
	for i := uint16(1); i < h-1; i += 1 {
		s.WriteCell(0, i, cell(vertical))
		s.WriteCell(w-1, i, cell(vertical))
	}

	if f.Title != "" {
		col := uint16(2)
		for _, ch := range ctx.Characters(" " + f.Title + " ") {
			if col+uint16(ch.Width) > w-2 {
				break
			}
			s.WriteCell(col, 0, vaxis.Cell{Character: ch, Style: f.TitleStyle})
			col += uint16(ch.Width)
		}
	}

	if f.Child == nil || w < 3 || h < 3 {
		return s, nil
	}
	inner := vxfw.Size{Width: w - 2, Height: h - 2}
	chS, err := f.Child.Draw(ctx.WithConstraints(inner, inner))
	if err != nil {
		return s, err
	}
	s.AddChild(1, 1, chS)
	return s, nil
}

var _ vxfw.Widget = &Frame{}
