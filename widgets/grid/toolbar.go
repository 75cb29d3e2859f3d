package grid

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/textfield"
	"github.com/mattn/go-runewidth"
)

// Cells between two toolbar items
const itemGap = 2

// item is a clickable label in a toolbar
type item struct {
	label  string
	action func() bool
	// field is drawn after the label while it is edited
	field *textfield.TextField
}

// width returns the cells taken by the item. An edited field gets one extra
// cell for the cursor
func (it item) width() (int, int) {
	n := runewidth.StringWidth(it.label)
	if it.field == nil {
		return n, 0
	}
	return n, runewidth.StringWidth(it.field.Value) + 1
}

// toolbar is a single line of items. Items which don't fit are dropped
type toolbar struct {
	items []item
	style vaxis.Style
	label vaxis.Style

	// first and last cell of each drawn item
	spans [][2]int
}

func (t *toolbar) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Mouse:
		if ev.EventType != vaxis.EventPress || ev.Button != vaxis.MouseLeftButton {
			return nil, nil
		}
		for i, span := range t.spans {
			if ev.Col < span[0] || ev.Col >= span[1] {
				continue
			}
			if t.items[i].action != nil && t.items[i].action() {
				return vxfw.ConsumeAndRedraw(), nil
			}
			return vxfw.ConsumeEventCmd{}, nil
		}
	}
	return nil, nil
}

func (t *toolbar) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	w := int(ctx.Max.Width)
	l := newLine(w, t.style)
	t.spans = t.spans[:0]
	col := 0
	for _, it := range t.items {
		n, fw := it.width()
		if col+n+fw > w {
			break
		}
		l.put(ctx, col, n, it.label, AlignLeft, t.label)
		if it.field != nil {
			l.edit(ctx, col+n, fw, it.field)
		}
		t.spans = append(t.spans, [2]int{col, col + n + fw})
		col += n + fw + itemGap
	}
	s := vxfw.NewSurface(uint16(w), 1, t)
	l.blit(&s, 0, 0)
	return s, nil
}

var _ vxfw.Widget = &toolbar{}
