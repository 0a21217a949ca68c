package allocation

import (
	"errors"

	"github.com/etnz/allocation/date"
)

// ErrNotImplemented reports a stage that declares the Stage contract without
// providing the computation, usually by embedding UnimplementedStage or
// UnimplementedDayStage without overriding the required method.
var ErrNotImplemented = errors.New("allocation stage not implemented")

// Stage is one step of an allocation pipeline.
//
// A Stage is a pure function of its configuration and the requested days:
// it holds no mutable state between calls and returns a fresh Table owned by
// the caller. Combinator stages hold a reference to exactly one upstream
// Stage, fixed at construction, so pipelines form a linear chain.
type Stage interface {
	// Allocate returns the allocation table for the given days.
	//
	// Days are expected in canonical form (no duplicate, sorted ascending);
	// use Allocation to enforce this from raw input. The returned table
	// covers every requested day, possibly with an empty row.
	Allocate(days []date.Date) (Table, error)
}

// DayStage is a simpler contract for stages whose computation is independent
// per day. Use EachDay to obtain a full Stage from it.
type DayStage interface {
	// AllocateOn returns the asset weights for a single day.
	AllocateOn(on date.Date) (Row, error)
}

// Allocation computes the allocation table of stage for the given days.
//
// This is the entry point of any pipeline: it reduces the days to their
// canonical form (duplicates removed, sorted ascending) before invoking the
// stage, so the result for a duplicated, unordered input is the same as for
// the clean one. An empty input yields an empty table. A single day is just
// the one-argument call.
//
// Errors from the stage are returned unchanged.
func Allocation(stage Stage, days ...date.Date) (Table, error) {
	return stage.Allocate(date.Normalize(days))
}

// AllocationStrings is like Allocation for days given in their string form.
func AllocationStrings(stage Stage, days ...string) (Table, error) {
	parsed, err := date.ParseAll(days...)
	if err != nil {
		return nil, err
	}
	return Allocation(stage, parsed...)
}

// UnimplementedStage can be embedded in a stage to reserve the Stage
// contract before the computation exists. Its Allocate fails with
// ErrNotImplemented.
type UnimplementedStage struct{}

func (UnimplementedStage) Allocate([]date.Date) (Table, error) {
	return nil, ErrNotImplemented
}

// UnimplementedDayStage is the per-day counterpart of UnimplementedStage.
type UnimplementedDayStage struct{}

func (UnimplementedDayStage) AllocateOn(date.Date) (Row, error) {
	return nil, ErrNotImplemented
}

var (
	_ Stage    = UnimplementedStage{}
	_ DayStage = UnimplementedDayStage{}
)

// EachDay adapts a per-day stage into a full Stage that invokes it once per
// requested day and unions the rows, keyed by day.
//
// The per-day calls carry no dependency on each other. They are issued
// sequentially and any error aborts the whole table.
func EachDay(stage DayStage) Stage { return eachDay{stage} }

type eachDay struct{ stage DayStage }

func (e eachDay) Allocate(days []date.Date) (Table, error) {
	t := make(Table, len(days))
	for _, on := range days {
		row, err := e.stage.AllocateOn(on)
		if err != nil {
			return nil, err
		}
		if row == nil {
			row = Row{}
		}
		t[on] = row
	}
	return t, nil
}
