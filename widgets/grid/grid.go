// Package grid is a data grid widget: a header with sorting and column
// ordering, optional column filters, a scrollable and optionally virtualized
// body, row selection and pagination. Every feature can be turned off through
// [Options].
package grid

import (
	"fmt"
	"strings"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"git.sr.ht/~rockorager/vaxis/vxfw/textfield"
	"github.com/mattn/go-runewidth"

	"git.sr.ht/~rockorager/gridscroll/log"
	"git.sr.ht/~rockorager/gridscroll/scroll"
	"git.sr.ht/~rockorager/gridscroll/widgets/viewport"
)

// Overscan is the number of rows built above and below the view when
// virtualizing
const Overscan = 5

// Width of the selection checkbox column
const selectWidth = 4

const (
	gripLabel   = "⠿ "
	sortNone    = "⇅"
	sortAsc     = "▲"
	sortDesc    = "▼"
	unchecked   = "[ ]"
	checked     = "[x]"
	partial     = "[-]"
	searchLabel = "/ "
	filterHint  = "filter…"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputFilter
)

// span is the horizontal placement of a column in content coordinates
type span struct {
	key   string
	col   int
	width int
}

type Grid[T any] struct {
	Table  *Table[T]
	Styles Styles

	viewport *viewport.Viewport
	body     *body[T]
	header   *header[T]
	filters  *filterRow[T]
	top      *toolbar
	bottom   *toolbar

	// index of the focused visible column
	focus int
	// row of the current page under the cursor. Only used with row
	// selection
	cursor int
	// row under the mouse, -1 if none
	hover int
	input inputMode
	// edits the search or the filter of the focused column
	field *textfield.TextField
}

func New[T any](columns []Column[T], data []T, opts Options) *Grid[T] {
	g := &Grid[T]{
		Table:  NewTable(columns, data, opts),
		Styles: DefaultStyles(),
		hover:  -1,
	}
	g.body = &body[T]{g: g}
	g.header = &header[T]{g: g}
	g.filters = &filterRow[T]{g: g}
	g.top = &toolbar{}
	g.bottom = &toolbar{}
	g.viewport = viewport.New(g.body)
	g.field = textfield.New()
	g.field.OnChange = func(q string) (vxfw.Command, error) {
		g.apply(q)
		return vxfw.RedrawCmd{}, nil
	}
	return g
}

// Viewport returns the scroll container of the body
func (g *Grid[T]) Viewport() *viewport.Viewport {
	return g.viewport
}

// RenderedRows returns the number of rows built by the last draw
func (g *Grid[T]) RenderedRows() int {
	return g.body.rendered
}

// Cursor returns the row of the current page under the cursor, or -1 when row
// selection is disabled
func (g *Grid[T]) Cursor() int {
	if !g.Table.opts.EnableRowSelection {
		return -1
	}
	return g.cursor
}

// Hovered returns the row of the current page under the mouse, or -1
func (g *Grid[T]) Hovered() int {
	return g.hover
}

// FocusedColumn returns the key of the focused column
func (g *Grid[T]) FocusedColumn() string {
	cols := g.Table.Columns()
	if len(cols) == 0 {
		return ""
	}
	return cols[min(g.focus, len(cols)-1)].Key
}

func (g *Grid[T]) padding() int {
	return g.Table.density.padding()
}

func (g *Grid[T]) rowHeight() int {
	return g.Table.density.rowHeight()
}

// headerLabel returns the header text of a column with its affordances
func (g *Grid[T]) headerLabel(col *Column[T]) string {
	opts := g.Table.opts
	label := col.Header
	if opts.EnableColumnOrdering {
		label = gripLabel + label
	}
	if opts.EnableSorting && !col.DisableSorting {
		marker := sortNone
		if key, dir := g.Table.Sort(); key == col.Key {
			switch dir {
			case SortAsc:
				marker = sortAsc
			case SortDesc:
				marker = sortDesc
			}
		}
		label += " " + marker
	}
	return label
}

// layout places the visible columns. It returns the spans and the full
// content width
func (g *Grid[T]) layout() ([]span, int) {
	pad := g.padding()
	col := 0
	if g.Table.opts.EnableRowSelection {
		col = selectWidth
	}
	spans := []span{}
	for _, c := range g.Table.Columns() {
		w := max(c.width(), runewidth.StringWidth(g.headerLabel(c)))
		spans = append(spans, span{
			key:   c.Key,
			col:   col,
			width: w + 2*pad,
		})
		col += w + 2*pad
	}
	return spans, col
}

// spanAt returns the index of the span containing content column x, or -1
func spanAt(spans []span, x int) int {
	for i, s := range spans {
		if x >= s.col && x < s.col+s.width {
			return i
		}
	}
	return -1
}

// headerLines is the number of lines above the rows: the header and the
// filter row when shown
func (g *Grid[T]) headerLines() int {
	if g.Table.ColumnFiltersShown() {
		return 2
	}
	return 1
}

// bodyHeaderLines is the number of header lines scrolled with the body
func (g *Grid[T]) bodyHeaderLines() int {
	if g.Table.opts.EnableStickyHeader {
		return 0
	}
	return g.headerLines()
}

func (g *Grid[T]) topItems() []item {
	opts := g.Table.opts
	if !opts.EnableTopToolbar {
		return nil
	}
	items := []item{}
	if opts.EnableGlobalFilter {
		search := item{
			label: searchLabel,
			action: func() bool {
				g.startInput(inputSearch)
				return true
			},
		}
		switch q := g.Table.GlobalFilter(); {
		case g.input == inputSearch:
			search.field = g.field
		case q == "":
			search.label += "search"
		default:
			search.label += q
		}
		items = append(items, search)
	}
	if opts.EnableColumnFilters {
		items = append(items, item{
			label:  "≡ filters",
			action: g.toggleFilters,
		})
	}
	if opts.EnableHiding {
		label := "▥ columns"
		if n := len(g.Table.Order()) - len(g.Table.Columns()); n > 0 {
			label = fmt.Sprintf("%s (%d hidden)", label, n)
		}
		items = append(items, item{
			label:  label,
			action: g.Table.ShowAllColumns,
		})
	}
	if opts.EnableDensityToggle {
		items = append(items, item{
			label:  "⇕ " + g.Table.Density().String(),
			action: g.cycleDensity,
		})
	}
	if opts.EnableFullScreenToggle {
		label := "⤢ fullscreen"
		if g.Table.Fullscreen() {
			label = "⤡ exit fullscreen"
		}
		items = append(items, item{
			label:  label,
			action: g.Table.ToggleFullscreen,
		})
	}
	return items
}

func (g *Grid[T]) bottomItems() []item {
	opts := g.Table.opts
	if !opts.EnableBottomToolbar {
		return nil
	}
	items := []item{}
	if opts.EnableRowSelection {
		items = append(items, item{
			label: fmt.Sprintf("%d of %d row(s) selected",
				g.Table.SelectedLen(), g.Table.FilteredLen()),
		})
	}
	if opts.EnablePagination {
		start, end := g.Table.pageBounds()
		items = append(items,
			item{label: "‹ prev", action: g.prevPage},
			item{label: fmt.Sprintf("page %d/%d", g.Table.Page()+1, g.Table.PageCount())},
			item{label: "next ›", action: g.nextPage},
			item{label: fmt.Sprintf("%d-%d of %d", min(start+1, end), end, g.Table.FilteredLen())},
		)
	}
	return items
}

func (g *Grid[T]) toggleFilters() bool {
	if !g.Table.ToggleColumnFilters() {
		return false
	}
	if !g.Table.ColumnFiltersShown() && g.input == inputFilter {
		g.input = inputNone
	}
	return true
}

func (g *Grid[T]) cycleDensity() bool {
	if !g.Table.CycleDensity() {
		return false
	}
	g.ensureVisible()
	return true
}

func (g *Grid[T]) nextPage() bool {
	if !g.Table.NextPage() {
		return false
	}
	g.reset()
	return true
}

func (g *Grid[T]) prevPage() bool {
	if !g.Table.PrevPage() {
		return false
	}
	g.reset()
	return true
}

// reset moves to the top of the body after the rows changed
func (g *Grid[T]) reset() {
	g.cursor = 0
	g.hover = -1
	g.viewport.ScrollToTop(false)
}

// startInput starts editing the global filter or the filter of the focused
// column
func (g *Grid[T]) startInput(mode inputMode) bool {
	var q string
	switch mode {
	case inputSearch:
		opts := g.Table.opts
		if !opts.EnableGlobalFilter || !opts.EnableTopToolbar {
			return false
		}
		q = g.Table.GlobalFilter()
		g.field.Style = g.Styles.Affordance
	case inputFilter:
		if !g.Table.ColumnFiltersShown() {
			return false
		}
		q = g.Table.ColumnFilter(g.FocusedColumn())
		g.field.Style = g.Styles.Row
	}
	g.field.Reset()
	g.field.InsertStringAtCursor(q)
	g.input = mode
	return true
}

// apply updates the filter being edited with q
func (g *Grid[T]) apply(q string) {
	switch g.input {
	case inputSearch:
		g.Table.SetGlobalFilter(q)
	case inputFilter:
		g.Table.SetColumnFilter(g.FocusedColumn(), q)
	}
	g.reset()
}

// handleInput passes keys to the text field until enter or escape
func (g *Grid[T]) handleInput(ev vaxis.Key) bool {
	if ev.Matches(vaxis.KeyEnter) || ev.Matches(vaxis.KeyEsc) {
		g.input = inputNone
		return true
	}
	cmd, err := g.field.HandleEvent(ev, vxfw.TargetPhase)
	if err != nil {
		log.Error("grid: editing filter: %v", err)
	}
	return cmd != nil || ev.Text != "" || ev.Matches(vaxis.KeyBackspace)
}

func (g *Grid[T]) moveCursor(d int) {
	n := g.Table.PageLen()
	if n == 0 {
		g.cursor = 0
		return
	}
	g.cursor = min(max(g.cursor+d, 0), n-1)
	g.ensureVisible()
}

// ensureVisible scrolls the body so the cursor row is in view
func (g *Grid[T]) ensureVisible() {
	if !g.Table.opts.EnableRowSelection {
		return
	}
	rh := g.rowHeight()
	top := g.bodyHeaderLines() + g.cursor*rh
	pos := g.viewport.ScrollPosition()
	view := g.viewport.Extent().View.Height
	switch {
	case top < pos.Y:
		pos.Y = top
	case top+rh > pos.Y+view:
		pos.Y = top + rh - view
	default:
		return
	}
	g.viewport.SetScrollPosition(pos, true)
}

// HandleKey performs the action bound to a key. It returns false if the key
// is not bound or the action is disabled
func (g *Grid[T]) HandleKey(ev vaxis.Key) bool {
	if ev.EventType == vaxis.EventRelease {
		return false
	}
	if g.input != inputNone {
		return g.handleInput(ev)
	}
	t := g.Table
	selecting := t.opts.EnableRowSelection
	switch {
	case ev.Matches('/'):
		return g.startInput(inputSearch)
	case ev.Matches('\\'):
		return g.startInput(inputFilter)
	case ev.Matches('F'):
		return g.toggleFilters()
	case ev.Matches('s'):
		return t.CycleSort(g.FocusedColumn())
	case ev.Matches(vaxis.KeyTab):
		g.focus = (g.focus + 1) % max(1, len(t.Columns()))
		return true
	case ev.Matches(vaxis.KeyTab, vaxis.ModShift):
		n := max(1, len(t.Columns()))
		g.focus = (g.focus + n - 1) % n
		return true
	case ev.Matches('<'), ev.Matches('>'):
		d := 1
		if ev.Matches('<') {
			d = -1
		}
		if !t.MoveColumn(g.FocusedColumn(), d) {
			return false
		}
		g.focus = min(max(g.focus+d, 0), len(t.Columns())-1)
		return true
	case ev.Matches('x'):
		if !t.HideColumn(g.FocusedColumn()) {
			return false
		}
		g.focus = min(g.focus, len(t.Columns())-1)
		return true
	case ev.Matches('X'):
		return t.ShowAllColumns()
	case ev.Matches(' '):
		r, ok := t.RowAt(g.cursor)
		if !selecting || !ok {
			return false
		}
		return t.ToggleSelected(r.ID)
	case ev.Matches('a'):
		return t.ToggleAll()
	case ev.Matches('d'):
		return g.cycleDensity()
	case ev.Matches('f'):
		return t.ToggleFullscreen()
	case ev.Matches('n'):
		return g.nextPage()
	case ev.Matches('p'):
		return g.prevPage()
	}
	if selecting {
		page := max(1, g.viewport.Extent().View.Height/g.rowHeight()-1)
		switch {
		case ev.Matches('j'), ev.Matches(vaxis.KeyDown):
			g.moveCursor(1)
			return true
		case ev.Matches('k'), ev.Matches(vaxis.KeyUp):
			g.moveCursor(-1)
			return true
		case ev.Matches(vaxis.KeyPgDown), ev.Matches('f', vaxis.ModCtrl):
			g.moveCursor(page)
			return true
		case ev.Matches(vaxis.KeyPgUp), ev.Matches('b', vaxis.ModCtrl):
			g.moveCursor(-page)
			return true
		case ev.Matches('g'), ev.Matches(vaxis.KeyHome):
			g.moveCursor(-g.cursor)
			return true
		case ev.Matches('G'), ev.Matches(vaxis.KeyEnd):
			g.moveCursor(t.PageLen())
			return true
		}
	}
	return g.viewport.ScrollKey(ev)
}

func (g *Grid[T]) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Key:
		if g.HandleKey(ev) {
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

func (g *Grid[T]) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	if ctx.Max.HasUnboundedHeight() || ctx.Max.HasUnboundedWidth() {
		panic("Grid cannot have unbounded height or width")
	}
	w, h := ctx.Max.Width, ctx.Max.Height
	s := vxfw.NewSurface(w, h, g)

	g.top.items = g.topItems()
	g.top.style, g.top.label = g.Styles.Toolbar, g.Styles.Affordance
	g.bottom.items = g.bottomItems()
	g.bottom.style, g.bottom.label = g.Styles.Toolbar, g.Styles.Affordance

	row := 0
	bottomRows := 0
	if len(g.bottom.items) > 0 {
		bottomRows = 1
	}
	if len(g.top.items) > 0 {
		row += 1
	}
	headerRow := row
	if g.Table.opts.EnableStickyHeader {
		row += g.headerLines()
	}
	bh := max(0, int(h)-row-bottomRows)
	body := vxfw.Size{Width: w, Height: uint16(bh)}

	// the body is drawn first so the header uses its clamped offset
	vs, err := g.viewport.Draw(ctx.WithConstraints(body, body))
	if err != nil {
		return s, err
	}
	x := g.viewport.ScrollPosition().X

	if len(g.top.items) > 0 {
		ts, err := g.top.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: w, Height: 1}))
		if err != nil {
			return s, err
		}
		s.AddChild(0, 0, ts)
	}
	if g.Table.opts.EnableStickyHeader && int(h) > headerRow {
		hs := g.header.draw(ctx, w, x)
		s.AddChild(0, headerRow, hs)
		if g.Table.ColumnFiltersShown() {
			fs := g.filters.draw(ctx, w, x)
			s.AddChild(0, headerRow+1, fs)
		}
	}
	s.AddChild(0, row, vs)
	if bottomRows > 0 && h > 0 {
		bs, err := g.bottom.Draw(ctx.WithConstraints(vxfw.Size{}, vxfw.Size{Width: w, Height: 1}))
		if err != nil {
			return s, err
		}
		s.AddChild(0, int(h)-1, bs)
	}
	return s, nil
}

// header draws the column headers
type header[T any] struct {
	g     *Grid[T]
	spans []span
}

func (hd *header[T]) line(ctx vxfw.DrawContext) line {
	g := hd.g
	spans, total := g.layout()
	hd.spans = spans
	st := g.Styles.Header
	l := newLine(total, st)
	pad := g.padding()
	if g.Table.opts.EnableRowSelection {
		box := unchecked
		switch {
		case g.Table.AllSelected():
			box = checked
		case g.Table.SelectedLen() > 0:
			box = partial
		}
		l.put(ctx, 0, selectWidth, box, AlignLeft, st)
	}
	focused := g.FocusedColumn()
	for _, sp := range spans {
		col, _ := g.Table.column(sp.key)
		cs := merge(st, col.HeaderStyle)
		if sp.key == focused {
			cs = merge(cs, g.Styles.FocusedHeader)
		}
		l.put(ctx, sp.col+pad, sp.width-2*pad, g.headerLabel(col), col.Align, cs)
	}
	return l
}

func (hd *header[T]) draw(ctx vxfw.DrawContext, w uint16, x int) vxfw.Surface {
	s := vxfw.NewSurface(w, 1, hd)
	s.Fill(vaxis.Cell{Character: space, Style: hd.g.Styles.Header})
	hd.line(ctx).blit(&s, 0, x)
	return s
}

// click handles a press on content column x of the header
func (hd *header[T]) click(x int) bool {
	g := hd.g
	if g.Table.opts.EnableRowSelection && x < selectWidth {
		return g.Table.ToggleAll()
	}
	i := spanAt(hd.spans, x)
	if i < 0 {
		return false
	}
	if !g.Table.CycleSort(hd.spans[i].key) {
		return false
	}
	g.focus = i
	return true
}

func (hd *header[T]) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Mouse:
		if ev.EventType != vaxis.EventPress || ev.Button != vaxis.MouseLeftButton {
			return nil, nil
		}
		if hd.click(ev.Col + hd.g.viewport.ScrollPosition().X) {
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

func (hd *header[T]) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	return hd.draw(ctx, ctx.Max.Width, hd.g.viewport.ScrollPosition().X), nil
}

// filterRow draws the column filter inputs
type filterRow[T any] struct {
	g     *Grid[T]
	spans []span
}

func (f *filterRow[T]) line(ctx vxfw.DrawContext) line {
	g := f.g
	spans, total := g.layout()
	f.spans = spans
	st := g.Styles.Filter
	l := newLine(total, st)
	pad := g.padding()
	focused := g.FocusedColumn()
	for _, sp := range spans {
		col, _ := g.Table.column(sp.key)
		if col.DisableFilter {
			continue
		}
		if g.input == inputFilter && sp.key == focused {
			l.edit(ctx, sp.col+pad, sp.width-2*pad, g.field)
			continue
		}
		text := g.Table.ColumnFilter(sp.key)
		cs := st
		if text != "" {
			cs = g.Styles.Row
		}
		if text == "" {
			text = filterHint
		}
		l.put(ctx, sp.col+pad, sp.width-2*pad, text, AlignLeft, cs)
	}
	return l
}

func (f *filterRow[T]) draw(ctx vxfw.DrawContext, w uint16, x int) vxfw.Surface {
	s := vxfw.NewSurface(w, 1, f)
	s.Fill(vaxis.Cell{Character: space, Style: f.g.Styles.Filter})
	f.line(ctx).blit(&s, 0, x)
	return s
}

// click starts editing the filter of the column at content column x
func (f *filterRow[T]) click(x int) bool {
	g := f.g
	i := spanAt(f.spans, x)
	if i < 0 {
		return false
	}
	g.focus = i
	return g.startInput(inputFilter)
}

func (f *filterRow[T]) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	switch ev := ev.(type) {
	case vaxis.Mouse:
		if ev.EventType != vaxis.EventPress || ev.Button != vaxis.MouseLeftButton {
			return nil, nil
		}
		if f.click(ev.Col + f.g.viewport.ScrollPosition().X) {
			return vxfw.ConsumeAndRedraw(), nil
		}
	}
	return nil, nil
}

func (f *filterRow[T]) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	return f.draw(ctx, ctx.Max.Width, f.g.viewport.ScrollPosition().X), nil
}

// body is the scrollable content of the grid
type body[T any] struct {
	g *Grid[T]

	rendered int
	offset   scroll.Position
	spans    []span
}

// ContentSize implements viewport.Content
func (b *body[T]) ContentSize(ctx vxfw.DrawContext) scroll.Size {
	_, total := b.g.layout()
	return scroll.Size{
		Width:  total,
		Height: b.g.bodyHeaderLines() + b.g.Table.PageLen()*b.g.rowHeight(),
	}
}

func (b *body[T]) rowStyle(i int, r Row[T]) vaxis.Style {
	g := b.g
	st := g.Styles.Row
	if i%2 == 1 {
		st = merge(st, g.Styles.Zebra)
	}
	if g.Table.IsSelected(r.ID) {
		st = merge(st, g.Styles.Selected)
	}
	if i == g.hover {
		st = merge(st, g.Styles.Hover)
	}
	if g.Table.opts.EnableRowSelection && i == g.cursor {
		st = merge(st, g.Styles.Cursor)
	}
	return st
}

func (b *body[T]) rowLine(ctx vxfw.DrawContext, i int, r Row[T], total int) line {
	g := b.g
	st := b.rowStyle(i, r)
	l := newLine(total, st)
	pad := g.padding()
	if g.Table.opts.EnableRowSelection {
		box := unchecked
		if g.Table.IsSelected(r.ID) {
			box = checked
		}
		l.put(ctx, 0, selectWidth, box, AlignLeft, st)
	}
	for _, sp := range b.spans {
		col, _ := g.Table.column(sp.key)
		l.put(ctx, sp.col+pad, sp.width-2*pad, col.text(r.Data), col.Align, merge(st, col.CellStyle))
	}
	return l
}

// DrawViewport implements viewport.Content
func (b *body[T]) DrawViewport(ctx vxfw.DrawContext, offset scroll.Position) (vxfw.Surface, error) {
	g := b.g
	w, h := int(ctx.Max.Width), int(ctx.Max.Height)
	s := vxfw.NewSurface(uint16(w), uint16(h), b)
	s.Fill(vaxis.Cell{Character: space, Style: g.Styles.Row})

	spans, total := g.layout()
	b.spans = spans
	b.offset = offset
	hl := g.bodyHeaderLines()
	rh := g.rowHeight()
	n := g.Table.PageLen()

	// header lines scrolled with the body
	for i := 0; i < hl; i += 1 {
		row := i - offset.Y
		if row < 0 || row >= h {
			continue
		}
		var l line
		if i == 0 {
			l = g.header.line(ctx)
		} else {
			l = g.filters.line(ctx)
		}
		l.blit(&s, uint16(row), offset.X)
	}

	first, last := 0, n
	if g.Table.opts.EnableRowVirtualization {
		top := max(0, offset.Y-hl)
		first = max(0, top/rh-Overscan)
		last = min(n, (top+h+rh-1)/rh+Overscan)
	}
	b.rendered = 0
	for i := first; i < last; i += 1 {
		r, ok := g.Table.RowAt(i)
		if !ok {
			break
		}
		l := b.rowLine(ctx, i, r, total)
		b.rendered += 1
		for k := 0; k < rh; k += 1 {
			row := hl + i*rh + k - offset.Y
			if row < 0 || row >= h {
				continue
			}
			if k == 0 {
				l.blit(&s, uint16(row), offset.X)
				continue
			}
			newLine(total, b.rowStyle(i, r)).blit(&s, uint16(row), offset.X)
		}
	}
	log.Trace("grid: built %d of %d rows", b.rendered, n)
	return s, nil
}

// rowAt converts a view row to a row of the current page. It returns -1 for
// header lines and -2 past the last row
func (b *body[T]) rowAt(viewRow int) int {
	g := b.g
	line := b.offset.Y + viewRow - g.bodyHeaderLines()
	if line < 0 {
		return -1
	}
	i := line / g.rowHeight()
	if i >= g.Table.PageLen() {
		return -2
	}
	return i
}

func (b *body[T]) HandleEvent(ev vaxis.Event, ph vxfw.EventPhase) (vxfw.Command, error) {
	g := b.g
	switch ev := ev.(type) {
	case vxfw.MouseLeave:
		if g.hover < 0 {
			return nil, nil
		}
		g.hover = -1
		return vxfw.RedrawCmd{}, nil
	case vaxis.Mouse:
		if ev.Button == vaxis.MouseWheelUp || ev.Button == vaxis.MouseWheelDown {
			// the viewport scrolls
			g.hover = -1
			return nil, nil
		}
		i := b.rowAt(ev.Row)
		x := ev.Col + b.offset.X
		if i == -1 {
			line := b.offset.Y + ev.Row
			if ev.EventType != vaxis.EventPress || ev.Button != vaxis.MouseLeftButton {
				return nil, nil
			}
			if line == 0 && g.header.click(x) {
				return vxfw.ConsumeAndRedraw(), nil
			}
			if line == 1 && g.filters.click(x) {
				return vxfw.ConsumeAndRedraw(), nil
			}
			return nil, nil
		}
		hover := i
		if i < 0 {
			hover = -1
		}
		changed := hover != g.hover
		g.hover = hover
		if ev.EventType == vaxis.EventPress && ev.Button == vaxis.MouseLeftButton && i >= 0 {
			if g.Table.opts.EnableRowSelection {
				g.cursor = i
				if x < selectWidth {
					r, _ := g.Table.RowAt(i)
					g.Table.ToggleSelected(r.ID)
				}
			}
			return vxfw.ConsumeAndRedraw(), nil
		}
		if changed {
			return vxfw.RedrawCmd{}, nil
		}
	}
	return nil, nil
}

// Draw draws the body without scrolling. The body is normally drawn by the
// grid's viewport
func (b *body[T]) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	return b.DrawViewport(ctx, scroll.Position{})
}

// String renders the grid state for logs
func (g *Grid[T]) String() string {
	var sb strings.Builder
	key, dir := g.Table.Sort()
	fmt.Fprintf(&sb, "grid{rows=%d/%d page=%d/%d", g.Table.FilteredLen(), g.Table.Len(), g.Table.Page()+1, g.Table.PageCount())
	if key != "" {
		fmt.Fprintf(&sb, " sort=%s:%s", key, dir)
	}
	sb.WriteString("}")
	return sb.String()
}

var (
	_ vxfw.Widget      = &Grid[int]{}
	_ viewport.Content = &body[int]{}
)
