package grid

import "git.sr.ht/~rockorager/vaxis"

// Options enables or disables the built in features of a grid. A disabled
// feature draws no affordance and ignores its key bindings
type Options struct {
	EnableTopToolbar    bool
	EnableBottomToolbar bool

	// EnableGlobalFilter shows a search box in the top toolbar
	EnableGlobalFilter bool
	// EnableColumnFilters adds a filter toggle to the top toolbar and a
	// filter row under the header
	EnableColumnFilters bool
	EnableSorting       bool
	// EnableHiding allows hiding columns from the column menu
	EnableHiding bool
	// EnableColumnOrdering draws grips in the header and allows moving
	// columns
	EnableColumnOrdering bool
	// EnableRowSelection adds a checkbox column and a row cursor
	EnableRowSelection     bool
	EnablePagination       bool
	EnableDensityToggle    bool
	EnableFullScreenToggle bool

	// EnableRowVirtualization only builds the rows which are in view
	EnableRowVirtualization bool
	// EnableStickyHeader keeps the header in place while the body scrolls
	EnableStickyHeader bool

	// Rows per page when paginating
	PageSize int
}

// DefaultOptions returns every feature enabled except row virtualization
func DefaultOptions() Options {
	return Options{
		EnableTopToolbar:        true,
		EnableBottomToolbar:     true,
		EnableGlobalFilter:      true,
		EnableColumnFilters:     true,
		EnableSorting:           true,
		EnableHiding:            true,
		EnableColumnOrdering:    true,
		EnableRowSelection:      true,
		EnablePagination:        true,
		EnableDensityToggle:     true,
		EnableFullScreenToggle:  true,
		EnableRowVirtualization: false,
		EnableStickyHeader:      true,
		PageSize:                10,
	}
}

type Density int

const (
	DensityComfortable Density = iota
	DensityCompact
	DensitySpacious
)

func (d Density) String() string {
	switch d {
	case DensityCompact:
		return "compact"
	case DensitySpacious:
		return "spacious"
	}
	return "comfortable"
}

// padding is the number of blank cells on each side of a cell's text
func (d Density) padding() int {
	switch d {
	case DensityCompact:
		return 0
	case DensitySpacious:
		return 2
	}
	return 1
}

// rowHeight is the number of lines a row takes
func (d Density) rowHeight() int {
	if d == DensitySpacious {
		return 2
	}
	return 1
}

type Styles struct {
	Toolbar    vaxis.Style
	Affordance vaxis.Style
	Header     vaxis.Style
	// FocusedHeader is merged over the header of the focused column
	FocusedHeader vaxis.Style
	Row           vaxis.Style
	// Zebra is used for even rows, counting from one
	Zebra    vaxis.Style
	Hover    vaxis.Style
	Cursor   vaxis.Style
	Selected vaxis.Style
	Filter   vaxis.Style
}

// DefaultStyles mirrors a light material table: bold header on a gray
// background, lightly striped rows and a pale blue hover row
func DefaultStyles() Styles {
	return Styles{
		Toolbar: vaxis.Style{},
		Affordance: vaxis.Style{
			Foreground: vaxis.IndexColor(4),
		},
		Header: vaxis.Style{
			Background: vaxis.RGBColor(0xf5, 0xf5, 0xf5),
			Foreground: vaxis.RGBColor(0x21, 0x21, 0x21),
			Attribute:  vaxis.AttrBold,
		},
		FocusedHeader: vaxis.Style{
			UnderlineStyle: vaxis.UnderlineSingle,
		},
		Row: vaxis.Style{},
		Zebra: vaxis.Style{
			Background: vaxis.RGBColor(0xf9, 0xf9, 0xf9),
		},
		Hover: vaxis.Style{
			Background: vaxis.RGBColor(0xf0, 0xf8, 0xff),
		},
		Cursor: vaxis.Style{
			Attribute: vaxis.AttrReverse,
		},
		Selected: vaxis.Style{
			Background: vaxis.RGBColor(0xe3, 0xf2, 0xfd),
		},
		Filter: vaxis.Style{
			Attribute: vaxis.AttrDim,
		},
	}
}
