package allocation

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// ratioScale turns a weight into an integer allocation ratio, keeping six
// decimal places of resolution.
const ratioScale = 6

// Invest splits a money amount across the assets of an allocation row,
// proportionally to their weights.
//
// The split always sums back to the amount: rounding leftovers are
// distributed in minor units of the currency. Weights must not be negative,
// and at least one weight must be positive. An empty row yields an empty
// split.
func Invest(r Row, amount Money) (map[string]Money, error) {
	if len(r) == 0 {
		return map[string]Money{}, nil
	}

	assets := r.Assets()
	ratios := make([]int, len(assets))
	total := 0
	for i, asset := range assets {
		w := r[asset]
		if w.IsNegative() {
			return nil, fmt.Errorf("cannot invest %s: asset %q has negative weight %s", amount, asset, w)
		}
		ratios[i] = int(w.value.Shift(ratioScale).IntPart())
		total += ratios[i]
	}
	if total == 0 {
		return nil, fmt.Errorf("cannot invest %s: all weights are zero", amount)
	}

	parts, err := money.New(amount.minor(), amount.cur).Allocate(ratios...)
	if err != nil {
		return nil, fmt.Errorf("cannot split %s: %w", amount, err)
	}

	split := make(map[string]Money, len(assets))
	for i, asset := range assets {
		split[asset] = fromMinor(parts[i].Amount(), amount.cur)
	}
	return split, nil
}
