package allocation

import (
	"testing"
)

func TestInvest(t *testing.T) {
	split, err := Invest(Row{"a": W(0.2), "b": W(0.8)}, EUR(100))
	if err != nil {
		t.Fatalf("Invest() error = %v", err)
	}

	if got, want := split["a"], EUR(20); !got.Equal(want) {
		t.Errorf("split[a] = %s, want %s", got, want)
	}
	if got, want := split["b"], EUR(80); !got.Equal(want) {
		t.Errorf("split[b] = %s, want %s", got, want)
	}
}

func TestInvest_sumsBackToAmount(t *testing.T) {
	// 100 EUR over three equal shares does not divide evenly: the split must
	// still sum back to the amount, cent leftovers included.
	third := Share(3)
	split, err := Invest(Row{"a": third, "b": third, "c": third}, EUR(100))
	if err != nil {
		t.Fatalf("Invest() error = %v", err)
	}

	sum := EUR(0)
	for _, part := range split {
		sum = sum.Add(part)
	}
	if !sum.Equal(EUR(100)) {
		t.Errorf("split sums to %s, want %s (split: %v)", sum, EUR(100), split)
	}
	if got, want := split["a"], EUR(33.34); !got.Equal(want) {
		t.Errorf("split[a] = %s, want %s (first asset receives the leftover cent)", got, want)
	}
}

func TestInvest_emptyRow(t *testing.T) {
	split, err := Invest(Row{}, USD(100))
	if err != nil {
		t.Fatalf("Invest() on empty row error = %v", err)
	}
	if len(split) != 0 {
		t.Errorf("Invest() on empty row = %v, want empty split", split)
	}
}

func TestInvest_rejectsUnusableWeights(t *testing.T) {
	if _, err := Invest(Row{"a": W(0), "b": W(0)}, EUR(100)); err == nil {
		t.Errorf("Invest() with all zero weights must fail")
	}
	if _, err := Invest(Row{"a": W(0.5), "b": W(-0.5)}, EUR(100)); err == nil {
		t.Errorf("Invest() with a negative weight must fail")
	}
}
