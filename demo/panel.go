package demo

import (
	"strconv"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"
)

// styled returns a line of text drawn in style
func styled(s string, style vaxis.Style) *text.Text {
	t := text.New(s)
	t.Style = style
	t.Softwrap = false
	return t
}

// panel stacks lines of text, one per row. Lines are cut at the right edge
type panel struct {
	lines      []*text.Text
	background vaxis.Style
}

func (p *panel) height() int {
	return len(p.lines)
}

func (p *panel) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	w := ctx.Max.Width
	h := min(ctx.Max.Height, uint16(len(p.lines)))
	s := vxfw.NewSurface(w, h, p)
	s.Fill(vaxis.Cell{
		Character: vaxis.Character{Grapheme: " ", Width: 1},
		Style:     p.background,
	})
	for row, l := range p.lines[:h] {
		ls, err := l.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: w, Height: 1}))
		if err != nil {
			return s, err
		}
		s.AddChild(0, row, ls)
	}
	return s, nil
}

// thousands formats n with comma separators
func thousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + thousands(-n)
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

var _ vxfw.Widget = &panel{}
