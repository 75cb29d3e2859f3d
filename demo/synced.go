package demo

import (
	"fmt"
	"math/rand/v2"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"

	"git.sr.ht/~rockorager/gridscroll/widgets/frame"
	"git.sr.ht/~rockorager/gridscroll/widgets/grid"
	"git.sr.ht/~rockorager/gridscroll/widgets/overlay"
)

type SyncedOptions struct {
	Rows int
	// Virtualize only builds the rows in view
	Virtualize bool
	Scrollbar  overlay.Options
}

func DefaultSyncedOptions() SyncedOptions {
	return SyncedOptions{
		Rows:       1000,
		Virtualize: true,
		Scrollbar: overlay.Options{
			AutoHide:      overlay.AutoHideLeave,
			AutoHideDelay: time.Second,
			Visibility:    overlay.VisibilityAuto,
			DragScroll:    true,
			ClickScroll:   true,
			OverflowX:     overlay.OverflowHidden,
			OverflowY:     overlay.OverflowScroll,
			Theme:         overlay.ThemeDark,
		},
	}
}

func memberColumns() []grid.Column[Member] {
	return []grid.Column[Member]{
		{
			Key:    "name",
			Header: "Name",
			Width:  16,
			Value:  func(m Member) any { return m.Name },
			HeaderStyle: vaxis.Style{
				Foreground: vaxis.IndexColor(2),
				Attribute:  vaxis.AttrBold,
			},
			DisableHiding: true,
		},
		{
			Key:    "age",
			Header: "Age",
			Width:  8,
			Align:  grid.AlignRight,
			Value:  func(m Member) any { return m.Age },
			Cell:   func(m Member) string { return thousands(m.Age) },
			HeaderStyle: vaxis.Style{
				Foreground: vaxis.IndexColor(1),
				Attribute:  vaxis.AttrItalic,
			},
			CellStyle: vaxis.Style{
				Attribute: vaxis.AttrItalic,
			},
		},
	}
}

// Synced is a virtualized grid whose scrollbar lives in a gutter next to the
// table instead of over it. The grid viewport and the scrollbar keep separate
// positions which a synchronizer keeps equal
type Synced struct {
	Options SyncedOptions
	// Now returns the current time. Defaults to time.Now
	Now func() time.Time

	data    []Member
	grid    *grid.Grid[Member]
	binding binding
	body    *gutter
	table   *frame.Frame
}

func NewSynced(opts SyncedOptions, r *rand.Rand) *Synced {
	s := &Synced{
		Options: opts,
		data:    Members(opts.Rows, r),
	}
	gopts := grid.DefaultOptions()
	gopts.EnableGlobalFilter = false
	gopts.EnablePagination = false
	gopts.EnableRowSelection = true
	gopts.EnableColumnOrdering = true
	gopts.EnableRowVirtualization = opts.Virtualize
	s.grid = grid.New(memberColumns(), s.data, gopts)
	s.grid.Table.SetRowID(func(m Member) string { return m.ID })
	s.body = &gutter{child: s.grid}
	s.table = frame.New(s.body, "Members")
	return s
}

func (s *Synced) Title() string {
	return "Virtualized Table with OverlayScrollbars (Disabled Native Interaction)"
}

// Grid returns the table of the demo
func (s *Synced) Grid() *grid.Grid[Member] {
	return s.grid
}

// Scrollbar returns the overlay scrollbar, or nil when unmounted
func (s *Synced) Scrollbar() *overlay.Scrollbar {
	return s.binding.scrollbar
}

func (s *Synced) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Synced) Mount() error {
	if s.Options.Scrollbar.OverflowY == overlay.OverflowHidden {
		return fmt.Errorf("synced scrollbar needs a scrollable y axis")
	}
	s.grid.Viewport().Now = s.now
	s.binding.mount(s.grid.Viewport(), s.Options.Scrollbar, s.now)
	s.body.bar = s.binding.scrollbar
	return nil
}

func (s *Synced) Unmount() {
	s.binding.unmount(s.grid.Viewport())
	s.body.bar = nil
}

func (s *Synced) Busy() bool {
	return s.binding.busy(s.grid.Viewport())
}

func (s *Synced) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev.(type) {
	case vxfw.Init:
		return vxfw.FocusWidgetCmd(s.grid), nil
	}
	return nil, nil
}

func (s *Synced) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	s.binding.frame()
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		panic("Synced cannot have unbounded height or width")
	}
	w, h := ctx.Max.Width, ctx.Max.Height
	surf := vxfw.NewSurface(w, h, s)

	if s.grid.Table.Fullscreen() {
		bs, err := s.body.Draw(ctx.WithConstraints(ctx.Max, ctx.Max))
		if err != nil {
			return surf, err
		}
		surf.AddChild(0, 0, bs)
		return surf, nil
	}

	head := &panel{lines: []*text.Text{
		styled(s.Title(), titleStyle),
		styled(fmt.Sprintf("仮想化対応: %s 行のデータ", thousands(len(s.data))), dimStyle),
	}}
	hs, err := head.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: w, Height: h}))
	if err != nil {
		return surf, err
	}
	surf.AddChild(0, 0, hs)
	row := hs.Size.Height
	if h > row+2 {
		size := vxfw.Size{Width: w, Height: h - row}
		ts, err := s.table.Draw(ctx.WithConstraints(size, size))
		if err != nil {
			return surf, err
		}
		surf.AddChild(0, int(row), ts)
	}
	return surf, nil
}

// gutter draws child with one column to its right for a scrollbar
type gutter struct {
	child vxfw.Widget
	bar   *overlay.Scrollbar
}

// HandleEvent reports the pointer over the table to the scrollbar, so the
// scrollbar shows while the table is hovered
func (g *gutter) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	if g.bar == nil {
		return nil, nil
	}
	switch ev := ev.(type) {
	case vxfw.MouseLeave:
		g.bar.PointerLeave()
		g.bar.EndDrag()
		return vxfw.RedrawCmd{}, nil
	case vxfw.MouseEnter:
		g.enter()
		return vxfw.RedrawCmd{}, nil
	case vaxis.Mouse:
		g.enter()
		if ev.EventType == vaxis.EventRelease && ph == vxfw.BubblePhase {
			g.bar.EndDrag()
		}
		return vxfw.RedrawCmd{}, nil
	}
	return nil, nil
}

func (g *gutter) enter() {
	if !g.bar.Hovered() {
		g.bar.PointerEnter()
	} else {
		g.bar.PointerMove()
	}
}

func (g *gutter) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	w, h := ctx.Max.Width, ctx.Max.Height
	s := vxfw.NewSurface(w, h, g)
	cw := w
	if g.bar != nil && cw > 0 {
		cw -= 1
	}
	size := vxfw.Size{Width: cw, Height: h}
	chS, err := g.child.Draw(ctx.WithConstraints(size, size))
	if err != nil {
		return s, err
	}
	s.AddChild(0, 0, chS)
	if g.bar == nil || w == 0 {
		return s, nil
	}
	size = vxfw.Size{Width: 1, Height: h}
	bs, err := g.bar.Draw(ctx.WithConstraints(size, size))
	if err != nil {
		return s, err
	}
	s.AddChild(int(cw), 0, bs)
	return s, nil
}

var (
	_ Component   = &Synced{}
	_ vxfw.Widget = &gutter{}
)
