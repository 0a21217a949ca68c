package allocation

import (
	"time"

	"github.com/etnz/allocation/date"
)

var (
	aug1 = date.New(2022, time.August, 1)
	aug2 = date.New(2022, time.August, 2)
	aug3 = date.New(2022, time.August, 3)
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }
