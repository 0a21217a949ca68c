package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Weight is the fraction of a portfolio assigned to one asset on one day.
//
// It is a plain number: the package never checks that the weights of a day
// sum to one, that is up to stages or callers that care about normalization.
type Weight struct {
	value decimal.Decimal
}

// W builds a Weight from any numeric value.
func W[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

// Share returns the weight 1/n, the equal share among n assets.
//
// The division is exact up to the decimal type's native division precision.
func Share(n int) Weight {
	return Weight{value: decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(n)))}
}

// ParseWeight parses a Weight from its decimal string representation.
func ParseWeight(str string) (Weight, error) {
	value, err := decimal.NewFromString(str)
	if err != nil {
		return Weight{}, fmt.Errorf("invalid weight %q: %w", str, err)
	}
	return Weight{value: value}, nil
}

func (w Weight) Equal(x Weight) bool       { return w.value.Equal(x.value) }
func (w Weight) LessThan(x Weight) bool    { return w.value.LessThan(x.value) }
func (w Weight) GreaterThan(x Weight) bool { return w.value.GreaterThan(x.value) }
func (w Weight) Add(x Weight) Weight       { return Weight{value: w.value.Add(x.value)} }
func (w Weight) IsZero() bool              { return w.value.IsZero() }
func (w Weight) IsNegative() bool          { return w.value.IsNegative() }
func (w Weight) IsPositive() bool          { return w.value.IsPositive() }
func (w Weight) String() string            { return w.value.String() }

// MarshalJSON implements the json.Marshaler interface.
func (w Weight) MarshalJSON() ([]byte, error) {
	return w.value.MarshalJSON()
}

func (w *Weight) UnmarshalJSON(decimalBytes []byte) error {
	return w.value.UnmarshalJSON(decimalBytes)
}
