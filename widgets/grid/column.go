package grid

import (
	"cmp"
	"fmt"

	"git.sr.ht/~rockorager/vaxis"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Column describes how one field of T is shown
type Column[T any] struct {
	// Key identifies the column. Keys must be unique within a grid
	Key string
	// Header is the label drawn in the header row
	Header string
	// Width of the column in cells, not counting padding. Zero means the
	// width of the header
	Width int
	Align Align

	// Value returns the raw value of the column, used for sorting and as
	// the default cell text
	Value func(row T) any
	// Cell renders the value for display. Defaults to fmt.Sprint(Value(row))
	Cell func(row T) string

	// HeaderStyle is merged over the grid's header style
	HeaderStyle vaxis.Style
	// CellStyle is merged over the grid's row style
	CellStyle vaxis.Style

	DisableHiding  bool
	DisableSorting bool
	DisableFilter  bool
}

func (c *Column[T]) text(row T) string {
	if c.Cell != nil {
		return c.Cell(row)
	}
	if c.Value == nil {
		return ""
	}
	return fmt.Sprint(c.Value(row))
}

func (c *Column[T]) width() int {
	if c.Width > 0 {
		return c.Width
	}
	return len([]rune(c.Header))
}

// compareValues orders two column values. Numbers compare numerically,
// everything else by its printed form
func compareValues(a any, b any) int {
	switch a := a.(type) {
	case int:
		if b, ok := b.(int); ok {
			return cmp.Compare(a, b)
		}
	case int64:
		if b, ok := b.(int64); ok {
			return cmp.Compare(a, b)
		}
	case float64:
		if b, ok := b.(float64); ok {
			return cmp.Compare(a, b)
		}
	case string:
		if b, ok := b.(string); ok {
			return cmp.Compare(a, b)
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// merge applies the set fields of over on top of base
func merge(base vaxis.Style, over vaxis.Style) vaxis.Style {
	if over.Foreground != 0 {
		base.Foreground = over.Foreground
	}
	if over.Background != 0 {
		base.Background = over.Background
	}
	if over.UnderlineStyle != vaxis.UnderlineOff {
		base.UnderlineStyle = over.UnderlineStyle
	}
	base.Attribute |= over.Attribute
	return base
}
