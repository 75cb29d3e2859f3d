package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	name string
	age  int
	city string
}

var cities = []string{"Oslo", "Lima", "Kyoto", "Cairo", "Quito"}

func people(n int) []person {
	ps := make([]person, 0, n)
	for i := 0; i < n; i += 1 {
		ps = append(ps, person{
			name: fmt.Sprintf("person %03d", i),
			age:  20 + i%50,
			city: cities[i%len(cities)],
		})
	}
	return ps
}

func columns() []Column[person] {
	return []Column[person]{
		{
			Key:    "name",
			Header: "Name",
			Width:  12,
			Value:  func(p person) any { return p.name },
		},
		{
			Key:    "age",
			Header: "Age",
			Width:  4,
			Align:  AlignRight,
			Value:  func(p person) any { return p.age },
		},
		{
			Key:    "city",
			Header: "City",
			Width:  10,
			Value:  func(p person) any { return p.city },
		},
	}
}

func disabled() Options {
	return Options{PageSize: 10}
}

func TestTableSortCycle(t *testing.T) {
	tbl := NewTable(columns(), people(100), DefaultOptions())

	require.True(t, tbl.CycleSort("age"))
	key, dir := tbl.Sort()
	assert.Equal(t, "age", key)
	assert.Equal(t, SortAsc, dir)
	r, _ := tbl.RowAt(0)
	assert.Equal(t, 20, r.Data.age)
	assert.Equal(t, "person 000", r.Data.name, "sort is stable")

	require.True(t, tbl.CycleSort("age"))
	r, _ = tbl.RowAt(0)
	assert.Equal(t, 69, r.Data.age)
	assert.Equal(t, "person 049", r.Data.name)

	require.True(t, tbl.CycleSort("age"))
	key, dir = tbl.Sort()
	assert.Equal(t, "", key)
	assert.Equal(t, SortNone, dir)
	r, _ = tbl.RowAt(0)
	assert.Equal(t, "person 000", r.Data.name)
}

func TestTableSortDisabledColumn(t *testing.T) {
	cols := columns()
	cols[1].DisableSorting = true
	tbl := NewTable(cols, people(10), DefaultOptions())
	assert.False(t, tbl.CycleSort("age"))
	assert.False(t, tbl.CycleSort("nope"))
}

func TestTableGlobalFilter(t *testing.T) {
	opts := DefaultOptions()
	opts.EnablePagination = false
	tbl := NewTable(columns(), people(100), opts)

	require.True(t, tbl.SetGlobalFilter("099"))
	require.Equal(t, 1, tbl.FilteredLen())
	r, _ := tbl.RowAt(0)
	assert.Equal(t, "person 099", r.Data.name)

	require.True(t, tbl.SetGlobalFilter("KYOTO"))
	assert.Equal(t, 20, tbl.FilteredLen(), "matching ignores case")

	require.True(t, tbl.SetGlobalFilter(""))
	assert.Equal(t, 100, tbl.FilteredLen())
}

func TestTableColumnFilter(t *testing.T) {
	opts := DefaultOptions()
	tbl := NewTable(columns(), people(100), opts)

	assert.False(t, tbl.ColumnFiltersShown())
	require.True(t, tbl.ToggleColumnFilters())
	assert.True(t, tbl.ColumnFiltersShown())

	require.True(t, tbl.SetColumnFilter("city", "osl"))
	assert.Equal(t, 20, tbl.FilteredLen())
	assert.Equal(t, "osl", tbl.ColumnFilter("city"))

	require.True(t, tbl.SetColumnFilter("age", "2"))
	// ages 20-29 and 32, 42, 52, 62 in Oslo
	for _, r := range tbl.Rows() {
		assert.Equal(t, "Oslo", r.Data.city)
		assert.Contains(t, fmt.Sprint(r.Data.age), "2")
	}

	require.True(t, tbl.SetColumnFilter("city", ""))
	require.True(t, tbl.SetColumnFilter("age", ""))
	assert.Equal(t, 100, tbl.FilteredLen())
}

func TestTableHiding(t *testing.T) {
	tbl := NewTable(columns(), people(10), DefaultOptions())

	require.True(t, tbl.HideColumn("city"))
	assert.True(t, tbl.Hidden("city"))
	assert.Len(t, tbl.Columns(), 2)
	require.True(t, tbl.HideColumn("age"))
	assert.False(t, tbl.HideColumn("name"), "the last column stays")
	assert.False(t, tbl.HideColumn("age"), "already hidden")

	require.True(t, tbl.ShowAllColumns())
	assert.Len(t, tbl.Columns(), 3)
	assert.False(t, tbl.ShowAllColumns())

	cols := columns()
	cols[0].DisableHiding = true
	tbl = NewTable(cols, people(10), DefaultOptions())
	assert.False(t, tbl.HideColumn("name"))
}

func TestTableOrdering(t *testing.T) {
	tbl := NewTable(columns(), people(10), DefaultOptions())

	require.True(t, tbl.MoveColumn("city", -2))
	assert.Equal(t, []string{"city", "name", "age"}, tbl.Order())
	assert.False(t, tbl.MoveColumn("city", -1))
	require.True(t, tbl.MoveColumn("name", 5))
	assert.Equal(t, []string{"city", "age", "name"}, tbl.Order())

	keys := []string{}
	for _, c := range tbl.Columns() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, tbl.Order(), keys)
}

func TestTableSelection(t *testing.T) {
	tbl := NewTable(columns(), people(100), DefaultOptions())

	r, ok := tbl.RowAt(3)
	require.True(t, ok)
	require.True(t, tbl.ToggleSelected(r.ID))
	assert.True(t, tbl.IsSelected(r.ID))
	assert.Equal(t, []person{r.Data}, tbl.Selected())

	require.True(t, tbl.ToggleAll())
	assert.Equal(t, 100, tbl.SelectedLen())
	assert.True(t, tbl.AllSelected())

	require.True(t, tbl.ToggleAll())
	assert.Equal(t, 0, tbl.SelectedLen())
}

func TestTablePagination(t *testing.T) {
	tbl := NewTable(columns(), people(100), DefaultOptions())

	assert.Equal(t, 10, tbl.PageCount())
	assert.Equal(t, 10, tbl.PageLen())
	assert.False(t, tbl.PrevPage())

	require.True(t, tbl.NextPage())
	assert.Equal(t, 1, tbl.Page())
	r, _ := tbl.RowAt(0)
	assert.Equal(t, "person 010", r.Data.name)

	require.True(t, tbl.SetPage(99))
	assert.Equal(t, 9, tbl.Page())
	assert.False(t, tbl.NextPage())

	require.True(t, tbl.SetGlobalFilter("person"))
	assert.Equal(t, 0, tbl.Page(), "filtering returns to the first page")

	_, ok := tbl.RowAt(10)
	assert.False(t, ok)
}

func TestTableDensity(t *testing.T) {
	tbl := NewTable(columns(), people(1), DefaultOptions())
	assert.Equal(t, DensityComfortable, tbl.Density())
	require.True(t, tbl.CycleDensity())
	assert.Equal(t, DensityCompact, tbl.Density())
	require.True(t, tbl.CycleDensity())
	assert.Equal(t, DensitySpacious, tbl.Density())
	require.True(t, tbl.CycleDensity())
	assert.Equal(t, DensityComfortable, tbl.Density())
}

func TestTableDisabledFeaturesAreInert(t *testing.T) {
	tbl := NewTable(columns(), people(100), disabled())
	r, _ := tbl.RowAt(0)

	assert.False(t, tbl.SetGlobalFilter("099"))
	assert.Equal(t, "", tbl.GlobalFilter())
	assert.False(t, tbl.ToggleColumnFilters())
	assert.False(t, tbl.SetColumnFilter("city", "osl"))
	assert.False(t, tbl.CycleSort("age"))
	assert.False(t, tbl.HideColumn("city"))
	assert.False(t, tbl.MoveColumn("city", -1))
	assert.False(t, tbl.ToggleSelected(r.ID))
	assert.False(t, tbl.ToggleAll())
	assert.False(t, tbl.NextPage())
	assert.False(t, tbl.CycleDensity())
	assert.False(t, tbl.ToggleFullscreen())

	assert.Equal(t, 100, tbl.FilteredLen())
	assert.Equal(t, 1, tbl.PageCount())
	assert.Equal(t, 100, tbl.PageLen(), "no pagination shows every row")
	assert.Len(t, tbl.Columns(), 3)
	assert.False(t, tbl.Fullscreen())
}

func TestTableRowIDs(t *testing.T) {
	tbl := NewTable(columns(), people(50), DefaultOptions())
	seen := map[string]bool{}
	for i := 0; i < tbl.Len(); i += 1 {
		id := tbl.rows[i].ID
		assert.NotEmpty(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestTableRowIDFunc(t *testing.T) {
	tbl := NewTable(columns(), people(10), DefaultOptions())
	first, _ := tbl.RowAt(0)
	require.True(t, tbl.ToggleSelected(first.ID))

	tbl.SetRowID(func(p person) string { return p.name })
	assert.Equal(t, 0, tbl.SelectedLen(), "selection is cleared")
	r, ok := tbl.RowAt(3)
	require.True(t, ok)
	assert.Equal(t, "person 003", r.ID)

	tbl.SetData(people(4))
	r, _ = tbl.RowAt(1)
	assert.Equal(t, "person 001", r.ID)
}
