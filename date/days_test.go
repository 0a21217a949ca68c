package date

import (
	"slices"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	d1 := New(2022, time.August, 1)
	d2 := New(2022, time.August, 2)
	d3 := New(2022, time.August, 3)

	tests := []struct {
		name string
		in   []Date
		want []Date
	}{
		{name: "already canonical", in: []Date{d1, d2}, want: []Date{d1, d2}},
		{name: "unordered", in: []Date{d3, d1, d2}, want: []Date{d1, d2, d3}},
		{name: "duplicates", in: []Date{d2, d1, d2, d1, d1}, want: []Date{d1, d2}},
		{name: "empty", in: []Date{}, want: []Date{}},
		{name: "nil", in: nil, want: []Date{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if !slices.Equal(got, tc.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_doesNotModifyInput(t *testing.T) {
	d1 := New(2022, time.August, 1)
	d2 := New(2022, time.August, 2)
	in := []Date{d2, d1}

	Normalize(in)

	if in[0] != d2 || in[1] != d1 {
		t.Errorf("Normalize modified its input: %v", in)
	}
}

func TestParseAll(t *testing.T) {
	got, err := ParseAll("2022-08-02", "2022-08-01")
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	want := []Date{New(2022, time.August, 2), New(2022, time.August, 1)}
	if !slices.Equal(got, want) {
		t.Errorf("ParseAll() = %v, want %v (input order preserved)", got, want)
	}

	if _, err := ParseAll("2022-08-01", "nope"); err == nil {
		t.Errorf("ParseAll() with an invalid date must fail")
	}
}
