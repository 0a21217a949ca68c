package allocation

import "github.com/etnz/allocation/date"

// Static returns a leaf stage that reports the same asset weights for every
// requested day.
//
// The weights are not validated: the stage reports them as given, summing to
// one or not.
func Static(weights Row) Stage {
	return EachDay(staticStage{weights: weights})
}

type staticStage struct {
	UnimplementedDayStage
	weights Row
}

func (s staticStage) AllocateOn(date.Date) (Row, error) {
	// Each day gets its own copy so callers can edit a row freely.
	return s.weights.Clone(), nil
}
