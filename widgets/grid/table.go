package grid

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"git.sr.ht/~rockorager/gridscroll/log"
)

type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	}
	return "none"
}

// Row is one record of a table, identified by a stable ID
type Row[T any] struct {
	ID   string
	Data T
}

// Table is the state of a grid independent of drawing: the data, filters,
// sorting, column layout, selection and pagination. Every mutator returns
// false and leaves the state untouched when its feature is disabled
type Table[T any] struct {
	opts    Options
	columns []Column[T]
	rows    []Row[T]
	// rowID returns the ID of a record. nil gives rows random IDs
	rowID func(T) string

	order  []string
	hidden map[string]bool

	globalFilter  string
	showFilters   bool
	columnFilters map[string]string

	sortKey string
	sortDir SortDirection

	selected map[string]bool

	page       int
	density    Density
	fullscreen bool

	// indices into rows after filtering and sorting. nil when stale
	view []int
}

// NewTable creates a table over data. Each row is given a random ID until
// SetRowID is called
func NewTable[T any](columns []Column[T], data []T, opts Options) *Table[T] {
	t := &Table[T]{
		opts:          opts,
		columns:       columns,
		hidden:        make(map[string]bool),
		columnFilters: make(map[string]string),
		selected:      make(map[string]bool),
	}
	for _, col := range columns {
		t.order = append(t.order, col.Key)
	}
	t.SetData(data)
	return t
}

// SetData replaces the rows of the table. Selection is cleared
func (t *Table[T]) SetData(data []T) {
	t.rows = make([]Row[T], 0, len(data))
	for _, d := range data {
		t.rows = append(t.rows, Row[T]{
			ID:   t.id(d),
			Data: d,
		})
	}
	clear(t.selected)
	t.invalidate()
}

// SetRowID makes fn the source of row IDs and re-keys the current rows.
// Selection is cleared
func (t *Table[T]) SetRowID(fn func(T) string) {
	t.rowID = fn
	for i := range t.rows {
		t.rows[i].ID = t.id(t.rows[i].Data)
	}
	clear(t.selected)
}

func (t *Table[T]) id(d T) string {
	if t.rowID == nil {
		return uuid.NewString()
	}
	return t.rowID(d)
}

func (t *Table[T]) Options() Options {
	return t.opts
}

// Len returns the number of rows before filtering
func (t *Table[T]) Len() int {
	return len(t.rows)
}

func (t *Table[T]) invalidate() {
	t.view = nil
}

func (t *Table[T]) column(key string) (*Column[T], bool) {
	for i := range t.columns {
		if t.columns[i].Key == key {
			return &t.columns[i], true
		}
	}
	return nil, false
}

// Columns returns the visible columns in display order
func (t *Table[T]) Columns() []*Column[T] {
	cols := []*Column[T]{}
	for _, key := range t.order {
		if t.hidden[key] {
			continue
		}
		col, ok := t.column(key)
		if !ok {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// Order returns the keys of all columns, hidden ones included, in display
// order
func (t *Table[T]) Order() []string {
	return slices.Clone(t.order)
}

// MoveColumn moves the column by delta places
func (t *Table[T]) MoveColumn(key string, delta int) bool {
	if !t.opts.EnableColumnOrdering {
		return false
	}
	i := slices.Index(t.order, key)
	if i < 0 {
		return false
	}
	j := min(max(i+delta, 0), len(t.order)-1)
	if i == j {
		return false
	}
	t.order = slices.Delete(t.order, i, i+1)
	t.order = slices.Insert(t.order, j, key)
	log.Trace("grid: moved column %s to %d", key, j)
	return true
}

// HideColumn hides a column. The last visible column can't be hidden
func (t *Table[T]) HideColumn(key string) bool {
	if !t.opts.EnableHiding {
		return false
	}
	col, ok := t.column(key)
	if !ok || col.DisableHiding || t.hidden[key] {
		return false
	}
	if len(t.Columns()) <= 1 {
		return false
	}
	t.hidden[key] = true
	t.invalidate()
	return true
}

// ShowAllColumns unhides every column
func (t *Table[T]) ShowAllColumns() bool {
	if !t.opts.EnableHiding || len(t.hidden) == 0 {
		return false
	}
	clear(t.hidden)
	t.invalidate()
	return true
}

func (t *Table[T]) Hidden(key string) bool {
	return t.hidden[key]
}

// SetGlobalFilter sets the fuzzy query matched against every visible column
func (t *Table[T]) SetGlobalFilter(q string) bool {
	if !t.opts.EnableGlobalFilter {
		return false
	}
	if q == t.globalFilter {
		return true
	}
	t.globalFilter = q
	t.page = 0
	t.invalidate()
	return true
}

func (t *Table[T]) GlobalFilter() string {
	return t.globalFilter
}

// ToggleColumnFilters shows or hides the column filter row
func (t *Table[T]) ToggleColumnFilters() bool {
	if !t.opts.EnableColumnFilters {
		return false
	}
	t.showFilters = !t.showFilters
	return true
}

// ColumnFiltersShown reports whether the column filter row is shown
func (t *Table[T]) ColumnFiltersShown() bool {
	return t.opts.EnableColumnFilters && t.showFilters
}

// SetColumnFilter sets a case insensitive substring filter on a column. An
// empty query removes the filter
func (t *Table[T]) SetColumnFilter(key string, q string) bool {
	if !t.opts.EnableColumnFilters {
		return false
	}
	col, ok := t.column(key)
	if !ok || col.DisableFilter {
		return false
	}
	if q == "" {
		delete(t.columnFilters, key)
	} else {
		t.columnFilters[key] = q
	}
	t.page = 0
	t.invalidate()
	return true
}

func (t *Table[T]) ColumnFilter(key string) string {
	return t.columnFilters[key]
}

// CycleSort moves the sort of a column from none to ascending to descending
// and back to none. Sorting another column starts it at ascending
func (t *Table[T]) CycleSort(key string) bool {
	if !t.opts.EnableSorting {
		return false
	}
	col, ok := t.column(key)
	if !ok || col.DisableSorting {
		return false
	}
	dir := SortAsc
	if key == t.sortKey {
		switch t.sortDir {
		case SortAsc:
			dir = SortDesc
		case SortDesc:
			dir = SortNone
		}
	}
	t.sortKey, t.sortDir = key, dir
	if dir == SortNone {
		t.sortKey = ""
	}
	t.invalidate()
	log.Trace("grid: sort %s %s", key, dir)
	return true
}

// Sort returns the sorted column and direction
func (t *Table[T]) Sort() (string, SortDirection) {
	return t.sortKey, t.sortDir
}

func (t *Table[T]) matches(r Row[T]) bool {
	if t.opts.EnableColumnFilters {
		for key, q := range t.columnFilters {
			col, ok := t.column(key)
			if !ok {
				continue
			}
			if !strings.Contains(strings.ToLower(col.text(r.Data)), strings.ToLower(q)) {
				return false
			}
		}
	}
	if !t.opts.EnableGlobalFilter || t.globalFilter == "" {
		return true
	}
	for _, col := range t.Columns() {
		if col.DisableFilter {
			continue
		}
		if fuzzy.MatchFold(t.globalFilter, col.text(r.Data)) {
			return true
		}
	}
	return false
}

// filtered returns the indices of the rows passing the filters, in sort order
func (t *Table[T]) filtered() []int {
	if t.view != nil {
		return t.view
	}
	view := make([]int, 0, len(t.rows))
	for i, r := range t.rows {
		if t.matches(r) {
			view = append(view, i)
		}
	}
	if col, ok := t.column(t.sortKey); ok && t.opts.EnableSorting && t.sortDir != SortNone && col.Value != nil {
		slices.SortStableFunc(view, func(a int, b int) int {
			c := compareValues(col.Value(t.rows[a].Data), col.Value(t.rows[b].Data))
			if t.sortDir == SortDesc {
				return -c
			}
			return c
		})
	}
	t.view = view
	return view
}

// FilteredLen returns the number of rows passing the filters
func (t *Table[T]) FilteredLen() int {
	return len(t.filtered())
}

func (t *Table[T]) pageSize() int {
	if !t.opts.EnablePagination || t.opts.PageSize <= 0 {
		return 0
	}
	return t.opts.PageSize
}

// PageCount returns the number of pages. It is at least one
func (t *Table[T]) PageCount() int {
	size := t.pageSize()
	n := t.FilteredLen()
	if size == 0 || n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Page returns the zero based index of the current page
func (t *Table[T]) Page() int {
	return min(t.page, t.PageCount()-1)
}

func (t *Table[T]) SetPage(p int) bool {
	if !t.opts.EnablePagination {
		return false
	}
	p = min(max(p, 0), t.PageCount()-1)
	if p == t.Page() {
		return false
	}
	t.page = p
	return true
}

func (t *Table[T]) NextPage() bool {
	return t.SetPage(t.Page() + 1)
}

func (t *Table[T]) PrevPage() bool {
	return t.SetPage(t.Page() - 1)
}

// pageBounds returns the range of filtered indices on the current page
func (t *Table[T]) pageBounds() (int, int) {
	n := t.FilteredLen()
	size := t.pageSize()
	if size == 0 {
		return 0, n
	}
	start := t.Page() * size
	return start, min(start+size, n)
}

// Rows returns the rows of the current page
func (t *Table[T]) Rows() []Row[T] {
	view := t.filtered()
	start, end := t.pageBounds()
	rows := make([]Row[T], 0, end-start)
	for _, i := range view[start:end] {
		rows = append(rows, t.rows[i])
	}
	return rows
}

// PageLen returns the number of rows on the current page
func (t *Table[T]) PageLen() int {
	start, end := t.pageBounds()
	return end - start
}

// RowAt returns the i-th row of the current page
func (t *Table[T]) RowAt(i int) (Row[T], bool) {
	start, end := t.pageBounds()
	if i < 0 || start+i >= end {
		return Row[T]{}, false
	}
	return t.rows[t.filtered()[start+i]], true
}

// ToggleSelected selects or deselects a row
func (t *Table[T]) ToggleSelected(id string) bool {
	if !t.opts.EnableRowSelection {
		return false
	}
	if t.selected[id] {
		delete(t.selected, id)
	} else {
		t.selected[id] = true
	}
	return true
}

func (t *Table[T]) IsSelected(id string) bool {
	return t.selected[id]
}

// SelectedLen returns the number of selected rows
func (t *Table[T]) SelectedLen() int {
	return len(t.selected)
}

// Selected returns the data of the selected rows in table order
func (t *Table[T]) Selected() []T {
	data := []T{}
	for _, r := range t.rows {
		if t.selected[r.ID] {
			data = append(data, r.Data)
		}
	}
	return data
}

// AllSelected reports whether every filtered row is selected
func (t *Table[T]) AllSelected() bool {
	view := t.filtered()
	if len(view) == 0 {
		return false
	}
	for _, i := range view {
		if !t.selected[t.rows[i].ID] {
			return false
		}
	}
	return true
}

// ToggleAll selects every filtered row, or clears the selection when they are
// all selected already
func (t *Table[T]) ToggleAll() bool {
	if !t.opts.EnableRowSelection {
		return false
	}
	if t.AllSelected() {
		clear(t.selected)
		return true
	}
	for _, i := range t.filtered() {
		t.selected[t.rows[i].ID] = true
	}
	return true
}

// CycleDensity switches to the next density
func (t *Table[T]) CycleDensity() bool {
	if !t.opts.EnableDensityToggle {
		return false
	}
	t.density = (t.density + 1) % 3
	return true
}

func (t *Table[T]) Density() Density {
	return t.density
}

func (t *Table[T]) ToggleFullscreen() bool {
	if !t.opts.EnableFullScreenToggle {
		return false
	}
	t.fullscreen = !t.fullscreen
	return true
}

// Fullscreen reports whether the grid asks its host for the whole screen
func (t *Table[T]) Fullscreen() bool {
	return t.opts.EnableFullScreenToggle && t.fullscreen
}
