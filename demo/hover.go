package demo

import (
	"fmt"
	"math/rand/v2"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/button"
	"git.sr.ht/~rockorager/vaxis/vxfw/text"

	"git.sr.ht/~rockorager/gridscroll/widgets/frame"
	"git.sr.ht/~rockorager/gridscroll/widgets/grid"
	"git.sr.ht/~rockorager/gridscroll/widgets/overlay"
)

// Tallest the table of the hover demo grows, border included
const hoverTableHeight = 22

type HoverOptions struct {
	Rows      int
	Scrollbar overlay.Options
}

// DefaultHoverOptions shows the scrollbar only while the pointer is over the
// table, hiding it 800ms after the pointer leaves
func DefaultHoverOptions() HoverOptions {
	return HoverOptions{
		Rows: 500,
		Scrollbar: overlay.Options{
			AutoHide:      overlay.AutoHideLeave,
			AutoHideDelay: 800 * time.Millisecond,
			Visibility:    overlay.VisibilityAuto,
			DragScroll:    true,
			ClickScroll:   true,
			OverflowX:     overlay.OverflowScroll,
			OverflowY:     overlay.OverflowScroll,
			Theme:         overlay.ThemeDark,
		},
	}
}

func personColumns() []grid.Column[Person] {
	return []grid.Column[Person]{
		{
			Key:           "name",
			Header:        "名前",
			Width:         12,
			Value:         func(p Person) any { return p.Name },
			DisableHiding: true,
		},
		{
			Key:           "age",
			Header:        "年齢",
			Width:         8,
			Value:         func(p Person) any { return p.Age },
			Cell:          func(p Person) string { return fmt.Sprintf("%d歳", p.Age) },
			DisableHiding: true,
		},
		{
			Key:           "email",
			Header:        "メールアドレス",
			Width:         25,
			Value:         func(p Person) any { return p.Email },
			DisableHiding: true,
		},
		{
			Key:           "city",
			Header:        "都市",
			Width:         10,
			Value:         func(p Person) any { return p.City },
			DisableHiding: true,
		},
	}
}

// Hover is a plain table without any toolbar feature. Its overlay scrollbar
// is only shown while the pointer hovers the table
type Hover struct {
	Options HoverOptions
	// Now returns the current time. Defaults to time.Now
	Now func() time.Time

	data    []Person
	grid    *grid.Grid[Person]
	binding binding
	table   *frame.Frame
	top     *button.Button
	bottom  *button.Button
	// technical details are expanded
	details bool
}

func NewHover(opts HoverOptions, r *rand.Rand) *Hover {
	h := &Hover{
		Options: opts,
		data:    People(opts.Rows, r),
	}
	h.grid = grid.New(personColumns(), h.data, grid.Options{
		EnableStickyHeader: true,
	})
	h.grid.Table.SetRowID(func(p Person) string { return p.ID })
	h.table = frame.New(h.grid, "")
	h.top = button.New("📄 トップへ", func() (vxfw.Command, error) {
		h.grid.Viewport().ScrollToTop(true)
		return vxfw.RedrawCmd{}, nil
	})
	h.bottom = button.New("📄 ボトムへ", func() (vxfw.Command, error) {
		h.grid.Viewport().ScrollToBottom(true)
		return vxfw.RedrawCmd{}, nil
	})
	h.top.Style.Default = vaxis.Style{
		Foreground: vaxis.IndexColor(15),
		Background: vaxis.RGBColor(0x21, 0x96, 0xf3),
		Attribute:  vaxis.AttrBold,
	}
	h.top.Style.Hover = vaxis.Style{
		Foreground: vaxis.IndexColor(15),
		Background: vaxis.RGBColor(0x19, 0x76, 0xd2),
		Attribute:  vaxis.AttrBold,
	}
	h.bottom.Style.Default = vaxis.Style{
		Foreground: vaxis.IndexColor(15),
		Background: vaxis.RGBColor(0x4c, 0xaf, 0x50),
		Attribute:  vaxis.AttrBold,
	}
	h.bottom.Style.Hover = vaxis.Style{
		Foreground: vaxis.IndexColor(15),
		Background: vaxis.RGBColor(0x38, 0x8e, 0x3c),
		Attribute:  vaxis.AttrBold,
	}
	return h
}

func (h *Hover) Title() string {
	return "シンプル・ホバー時スクロールバー表示"
}

// Grid returns the table of the demo
func (h *Hover) Grid() *grid.Grid[Person] {
	return h.grid
}

// Scrollbar returns the overlay scrollbar, or nil when unmounted
func (h *Hover) Scrollbar() *overlay.Scrollbar {
	return h.binding.scrollbar
}

func (h *Hover) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *Hover) Mount() error {
	h.grid.Viewport().Now = h.now
	h.binding.mount(h.grid.Viewport(), h.Options.Scrollbar, h.now)
	h.table.Child = overlay.NewHost(h.grid, h.binding.scrollbar)
	return nil
}

func (h *Hover) Unmount() {
	h.binding.unmount(h.grid.Viewport())
	h.table.Child = h.grid
}

func (h *Hover) Busy() bool {
	return h.binding.busy(h.grid.Viewport())
}

// ScrollToTop smoothly scrolls the table to the first row
func (h *Hover) ScrollToTop() {
	h.grid.Viewport().ScrollToTop(true)
}

// ScrollToBottom smoothly scrolls the table to the last row
func (h *Hover) ScrollToBottom() {
	h.grid.Viewport().ScrollToBottom(true)
}

func (h *Hover) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vxfw.Init:
		return vxfw.FocusWidgetCmd(h.grid), nil
	case vaxis.Key:
		if ev.EventType == vaxis.EventRelease {
			return nil, nil
		}
		if ev.Matches('t') {
			h.details = !h.details
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

var (
	titleStyle = vaxis.Style{Attribute: vaxis.AttrBold}
	dimStyle   = vaxis.Style{Attribute: vaxis.AttrDim}
)

func (h *Hover) features() *panel {
	head := vaxis.Style{
		Foreground: vaxis.RGBColor(0x2e, 0x7d, 0x32),
		Attribute:  vaxis.AttrBold,
	}
	return &panel{lines: []*text.Text{
		styled("✨ 特徴", head),
		text.New("  🚫 ツールバー・フィルター機能なし（すっきり表示）"),
		text.New("  🖱️ マウスホバー時のみスクロールバー表示"),
		text.New("  🔒 ヘッダー固定・データ部分のみスクロール"),
		text.New("  ⚡ 軽量で高速動作"),
	}}
}

func (h *Hover) notes() *panel {
	head := vaxis.Style{
		Foreground: vaxis.RGBColor(0xf5, 0x7f, 0x17),
		Attribute:  vaxis.AttrBold,
	}
	lines := []*text.Text{
		styled("💡 使用方法", head),
		text.New("  スクロールバー表示: テーブル上にマウスを載せるとスクロールバーが表示されます"),
		text.New("  スクロール: マウスホイール、スクロールバーのドラッグ、上記ボタンで操作"),
		text.New("  ヘッダー: スクロール時も常に表示され、データの内容を確認できます"),
	}
	if !h.details {
		return &panel{lines: append(lines,
			styled("▸ 🔧 技術実装詳細 (t)", titleStyle),
		)}
	}
	opts := h.Options.Scrollbar
	lines = append(lines,
		styled("▾ 🔧 技術実装詳細 (t)", titleStyle),
		styled("  無効化した機能: top/bottom toolbar, global filter, column filters,", dimStyle),
		styled("  density, fullscreen, hiding, column ordering, row selection, sorting", dimStyle),
		styled(fmt.Sprintf("  スクロールバー設定: autoHide=%s autoHideDelay=%s visibility=%s",
			opts.AutoHide, opts.AutoHideDelay, opts.Visibility), dimStyle),
	)
	return &panel{lines: lines}
}

func (h *Hover) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	h.binding.frame()
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		panic("Hover cannot have unbounded height or width")
	}
	w, hgt := ctx.Max.Width, int(ctx.Max.Height)
	s := vxfw.NewSurface(w, uint16(hgt), h)

	features := h.features()
	notes := h.notes()
	// title, controls and the smallest useful table
	fixed := 1 + 1 + 5
	if hgt < fixed+features.height()+notes.height() {
		features.lines = nil
		notes.lines = nil
	}

	row := 0
	title := &panel{lines: []*text.Text{styled(h.Title(), titleStyle)}}
	add := func(p *panel) error {
		if p.height() == 0 || row >= hgt {
			return nil
		}
		ps, err := p.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: w, Height: uint16(hgt - row)}))
		if err != nil {
			return err
		}
		s.AddChild(0, row, ps)
		row += int(ps.Size.Height)
		return nil
	}
	if err := add(title); err != nil {
		return s, err
	}
	if err := add(features); err != nil {
		return s, err
	}

	// controls
	if row < hgt {
		col := 0
		for _, b := range []*button.Button{h.top, h.bottom} {
			bw := uint16(14)
			bs, err := b.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: bw, Height: 1}))
			if err != nil {
				return s, err
			}
			s.AddChild(col, row, bs)
			col += int(bw) + 2
		}
		count := styled(fmt.Sprintf("総データ数: %s件", thousands(len(h.data))), dimStyle)
		cs, err := count.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: w - min(w, uint16(col)), Height: 1}))
		if err != nil {
			return s, err
		}
		s.AddChild(col, row, cs)
		row += 1
	}

	// table
	th := min(hoverTableHeight, hgt-row-notes.height())
	if th > 2 {
		size := vxfw.Size{Width: w, Height: uint16(th)}
		fs, err := h.table.Draw(ctx.WithConstraints(size, size))
		if err != nil {
			return s, err
		}
		s.AddChild(0, row, fs)
		row += th
	}

	if err := add(notes); err != nil {
		return s, err
	}
	return s, nil
}

var _ Component = &Hover{}
