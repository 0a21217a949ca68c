package date

import "slices"

// this file handles
// the canonical form of a requested sequence of days.

// Normalize returns the canonical form of the given days: duplicates removed
// and the remainder sorted in chronological order.
//
// The input slice is not modified; an empty or nil input yields an empty
// result.
func Normalize(days []Date) []Date {
	canonical := slices.Clone(days)
	slices.SortFunc(canonical, Date.Compare)
	return slices.Compact(canonical)
}

// ParseAll parses every string into a Date, in input order.
//
// The first string that is not a valid date fails the whole call.
func ParseAll(strs ...string) ([]Date, error) {
	days := make([]Date, 0, len(strs))
	for _, str := range strs {
		d, err := Parse(str)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
