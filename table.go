package allocation

import (
	"maps"
	"slices"

	"github.com/etnz/allocation/date"
)

// Row holds the weight of every allocated asset for a single day.
type Row map[string]Weight

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	maps.Copy(clone, r)
	return clone
}

// Assets returns the asset identifiers of the row, sorted.
func (r Row) Assets() []string {
	assets := slices.Collect(maps.Keys(r))
	slices.Sort(assets)
	return assets
}

// Equal reports whether both rows hold the same assets with equal weights.
func (r Row) Equal(x Row) bool {
	return maps.EqualFunc(r, x, Weight.Equal)
}

// Table is an allocation: for each requested day, a Row of asset weights.
//
// A stage must report every requested day, so a day with no allocated assets
// is present with an empty Row. The map structure makes the (day, asset) key
// unique by construction.
type Table map[date.Date]Row

// NewTable returns a table covering the given days, each with an empty row.
func NewTable(days ...date.Date) Table {
	t := make(Table, len(days))
	for _, on := range days {
		t[on] = Row{}
	}
	return t
}

// Days returns the days covered by the table, in chronological order.
func (t Table) Days() []date.Date {
	days := slices.Collect(maps.Keys(t))
	slices.SortFunc(days, date.Date.Compare)
	return days
}

// Assets returns the union of all asset identifiers in the table, sorted.
func (t Table) Assets() []string {
	set := make(map[string]struct{})
	for _, row := range t {
		for asset := range row {
			set[asset] = struct{}{}
		}
	}
	assets := slices.Collect(maps.Keys(set))
	slices.Sort(assets)
	return assets
}

// Get returns the weight of asset on the given day, and whether it is present.
func (t Table) Get(on date.Date, asset string) (Weight, bool) {
	w, ok := t[on][asset]
	return w, ok
}

// Set records the weight of asset on the given day, creating the day's row
// if needed.
func (t Table) Set(on date.Date, asset string, w Weight) {
	row, ok := t[on]
	if !ok {
		row = Row{}
		t[on] = row
	}
	row[asset] = w
}

// Equal reports whether both tables cover the same days with equal rows.
func (t Table) Equal(x Table) bool {
	return maps.EqualFunc(t, x, Row.Equal)
}
