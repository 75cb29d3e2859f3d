package overlay

import "git.sr.ht/~rockorager/vaxis"

var (
	verticalTrack    = vaxis.Character{Grapheme: "▕", Width: 1}
	verticalHandle   = vaxis.Character{Grapheme: "▐", Width: 1}
	horizontalTrack  = vaxis.Character{Grapheme: "▁", Width: 1}
	horizontalHandle = vaxis.Character{Grapheme: "▄", Width: 1}
)

// palette holds the styles of one theme
type palette struct {
	track  vaxis.Style
	handle vaxis.Style
	hover  vaxis.Style
	active vaxis.Style
}

// gray returns a gray of the given lightness
func gray(v uint8) vaxis.Color {
	return vaxis.RGBColor(v, v, v)
}

// The dark theme is black at 10% (track), 50% (handle), 70% (hovered) and 90%
// (dragged) opacity over a white background. The light theme is the same with
// white over black
var palettes = map[Theme]palette{
	ThemeDark: {
		track:  vaxis.Style{Foreground: gray(0xe6)},
		handle: vaxis.Style{Foreground: gray(0x80)},
		hover:  vaxis.Style{Foreground: gray(0x4d)},
		active: vaxis.Style{Foreground: gray(0x1a)},
	},
	ThemeLight: {
		track:  vaxis.Style{Foreground: gray(0x1a)},
		handle: vaxis.Style{Foreground: gray(0x80)},
		hover:  vaxis.Style{Foreground: gray(0xb3)},
		active: vaxis.Style{Foreground: gray(0xe6)},
	},
}
