package overlay

import (
	"fmt"
	"strings"
	"time"
)

// AutoHide controls when a visible scrollbar hides itself
type AutoHide int

const (
	// AutoHideNever keeps the scrollbar shown
	AutoHideNever AutoHide = iota
	// AutoHideScroll hides the scrollbar a delay after scrolling stops
	AutoHideScroll
	// AutoHideMove hides the scrollbar a delay after the pointer stops
	// moving over the host
	AutoHideMove
	// AutoHideLeave shows the scrollbar while the pointer is over the host
	// and hides it a delay after the pointer leaves
	AutoHideLeave
)

var autoHideNames = map[AutoHide]string{
	AutoHideNever:  "never",
	AutoHideScroll: "scroll",
	AutoHideMove:   "move",
	AutoHideLeave:  "leave",
}

func (a AutoHide) String() string {
	return autoHideNames[a]
}

func ParseAutoHide(s string) (AutoHide, error) {
	for k, v := range autoHideNames {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return AutoHideNever, fmt.Errorf("invalid autohide %q: must be one of never, scroll, move, leave", s)
}

// Visibility is the base visibility of the scrollbar, before auto hiding
type Visibility int

const (
	// VisibilityAuto shows a scrollbar only for an axis which overflows
	VisibilityAuto Visibility = iota
	VisibilityVisible
	VisibilityHidden
)

var visibilityNames = map[Visibility]string{
	VisibilityAuto:    "auto",
	VisibilityVisible: "visible",
	VisibilityHidden:  "hidden",
}

func (v Visibility) String() string {
	return visibilityNames[v]
}

func ParseVisibility(s string) (Visibility, error) {
	for k, v := range visibilityNames {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return VisibilityAuto, fmt.Errorf("invalid visibility %q: must be one of auto, visible, hidden", s)
}

// Overflow is the overflow behavior of one axis
type Overflow int

const (
	// OverflowScroll scrolls the axis and draws a scrollbar for it
	OverflowScroll Overflow = iota
	// OverflowHidden clips the axis. It can't be scrolled and has no
	// scrollbar
	OverflowHidden
	// OverflowVisible lets the axis be scrolled by the host but never
	// draws a scrollbar for it
	OverflowVisible
)

// Theme selects the colors of the scrollbar
type Theme int

const (
	// ThemeDark draws a dark scrollbar, for light terminal backgrounds
	ThemeDark Theme = iota
	// ThemeLight draws a light scrollbar, for dark terminal backgrounds
	ThemeLight
)

var themeNames = map[Theme]string{
	ThemeDark:  "dark",
	ThemeLight: "light",
}

func (t Theme) String() string {
	return themeNames[t]
}

func ParseTheme(s string) (Theme, error) {
	for k, v := range themeNames {
		if strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return ThemeDark, fmt.Errorf("invalid theme %q: must be one of dark, light", s)
}

type Options struct {
	AutoHide      AutoHide
	AutoHideDelay time.Duration
	Visibility    Visibility
	// DragScroll enables scrolling by dragging the handle
	DragScroll bool
	// ClickScroll enables scrolling by pressing the track
	ClickScroll bool
	OverflowX   Overflow
	OverflowY   Overflow
	Theme       Theme
}

// DefaultOptions returns the options of a scrollbar nobody configured
func DefaultOptions() Options {
	return Options{
		AutoHide:      AutoHideNever,
		AutoHideDelay: 1300 * time.Millisecond,
		Visibility:    VisibilityAuto,
		DragScroll:    true,
		ClickScroll:   false,
		OverflowX:     OverflowScroll,
		OverflowY:     OverflowScroll,
		Theme:         ThemeDark,
	}
}
