package grid

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/textfield"
	"github.com/mattn/go-runewidth"

	"git.sr.ht/~rockorager/gridscroll/log"
)

// Text appended to truncated cell text
const ellipsis = "…"

var space = vaxis.Character{Grapheme: " ", Width: 1}

// line is one row of the grid laid out over the full content width. A wide
// character occupies its cell, the cells it covers to the right have a zero
// width
type line []vaxis.Cell

func newLine(width int, style vaxis.Style) line {
	l := make(line, width)
	for i := range l {
		l[i] = vaxis.Cell{Character: space, Style: style}
	}
	return l
}

// put writes text into cells [col, col+width), truncated and aligned
func (l line) put(ctx vxfw.DrawContext, col int, width int, text string, align Align, style vaxis.Style) {
	if width <= 0 {
		return
	}
	text = runewidth.Truncate(text, width, ellipsis)
	switch align {
	case AlignRight:
		text = runewidth.FillLeft(text, width)
	case AlignCenter:
		pad := (width - runewidth.StringWidth(text)) / 2
		text = runewidth.FillRight(runewidth.FillLeft(text, runewidth.StringWidth(text)+pad), width)
	default:
		text = runewidth.FillRight(text, width)
	}
	c := col
	end := min(col+width, len(l))
	for _, ch := range ctx.Characters(text) {
		if ch.Width == 0 {
			continue
		}
		if c+ch.Width > end {
			break
		}
		l[c] = vaxis.Cell{Character: ch, Style: style}
		for k := 1; k < ch.Width; k += 1 {
			l[c+k] = vaxis.Cell{Style: style}
		}
		c += ch.Width
	}
	for ; c < end; c += 1 {
		l[c] = vaxis.Cell{Character: space, Style: style}
	}
}

// edit draws the text field tf into cells [col, col+width). The cell under
// its cursor is reversed
func (l line) edit(ctx vxfw.DrawContext, col int, width int, tf *textfield.TextField) {
	if width <= 0 {
		return
	}
	size := vxfw.Size{Width: uint16(width), Height: 1}
	s, err := tf.Draw(ctx.WithConstraints(size, size))
	if err != nil {
		log.Error("grid: drawing text field: %v", err)
		return
	}
	covered := 0
	for i, cell := range s.Buffer {
		if col+i >= len(l) {
			break
		}
		switch {
		case covered > 0:
			cell = vaxis.Cell{Style: tf.Style}
			covered -= 1
		case cell.Grapheme == "", i+cell.Width > width:
			cell = vaxis.Cell{Character: space, Style: tf.Style}
		default:
			covered = cell.Width - 1
		}
		if s.Cursor != nil && i == int(s.Cursor.Col) {
			cell.Style.Attribute |= vaxis.AttrReverse
		}
		l[col+i] = cell
	}
}

// blit writes the cells of l starting at content column x into row of s
func (l line) blit(s *vxfw.Surface, row uint16, x int) {
	w := int(s.Size.Width)
	for j := 0; j < w; j += 1 {
		i := x + j
		if i < 0 {
			continue
		}
		if i >= len(l) {
			break
		}
		cell := l[i]
		switch {
		case cell.Width == 0 && j > 0:
			// covered by the wide character to the left
			continue
		case cell.Width == 0, j+cell.Width > w:
			// a wide character cut by the edge of the view
			cell.Character = space
		}
		s.WriteCell(uint16(j), row, cell)
	}
}
