package allocation

import "github.com/etnz/allocation/date"

// EqualWeight is a combinator that rewrites its upstream allocation so that
// every asset reported on a day receives the same weight 1/n, where n is the
// number of assets the upstream stage reported for that day.
//
// Only the asset count matters: upstream weights are not renormalized, and
// assets the upstream stage did not report are never invented. A day with no
// upstream assets stays empty.
type EqualWeight struct {
	prev Stage
}

// NewEqualWeight returns an EqualWeight stage reading from prev.
func NewEqualWeight(prev Stage) *EqualWeight {
	return &EqualWeight{prev: prev}
}

// Allocate implements Stage. Upstream errors are returned unchanged.
func (e *EqualWeight) Allocate(days []date.Date) (Table, error) {
	prev, err := Allocation(e.prev, days...)
	if err != nil {
		return nil, err
	}

	t := make(Table, len(prev))
	for on, row := range prev {
		rewritten := make(Row, len(row))
		if n := len(row); n > 0 {
			share := Share(n)
			for asset := range row {
				rewritten[asset] = share
			}
		}
		t[on] = rewritten
	}
	return t, nil
}

var _ Stage = (*EqualWeight)(nil)
