package allocation

import (
	"encoding/json"
	"testing"
)

func TestShare(t *testing.T) {
	tests := []struct {
		n    int
		want Weight
	}{
		{n: 1, want: W(1)},
		{n: 2, want: W(0.5)},
		{n: 4, want: W(0.25)},
		{n: 5, want: W(0.2)},
	}
	for _, tc := range tests {
		if got := Share(tc.n); !got.Equal(tc.want) {
			t.Errorf("Share(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}

	// 1/3 is not exact; three thirds must still not overshoot one.
	third := Share(3)
	sum := third.Add(third).Add(third)
	if sum.GreaterThan(W(1)) {
		t.Errorf("3 * Share(3) = %s, must not exceed 1", sum)
	}
}

func TestParseWeight(t *testing.T) {
	w, err := ParseWeight("0.2")
	if err != nil {
		t.Fatalf("ParseWeight() error = %v", err)
	}
	if !w.Equal(W(0.2)) {
		t.Errorf("ParseWeight(\"0.2\") = %s, want 0.2", w)
	}

	if _, err := ParseWeight("20%"); err == nil {
		t.Errorf("ParseWeight() with a non decimal string must fail")
	}
}

func TestWeightJSON(t *testing.T) {
	row := Row{"a": W(0.2), "b": W(0.8)}
	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back Row
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(row) {
		t.Errorf("JSON round trip = %v, want %v", back, row)
	}
}
