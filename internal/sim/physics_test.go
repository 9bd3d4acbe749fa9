package sim

import "testing"

func TestFixedConversions(t *testing.T) {
	if got := ToFixed(5); got != 5000 {
		t.Errorf("ToFixed(5) = %d, want 5000", got)
	}
	if got := Fixed(5999).ToCell(); got != 5 {
		t.Errorf("Fixed(5999).ToCell() = %d, want 5", got)
	}
	if got := Fixed(5500).ToCellRounded(); got != 6 {
		t.Errorf("Fixed(5500).ToCellRounded() = %d, want 6", got)
	}
	if got := Fixed(-1500).ToCellRounded(); got != -2 {
		t.Errorf("Fixed(-1500).ToCellRounded() = %d, want -2", got)
	}
}

func TestFixedArithmetic(t *testing.T) {
	a, b := ToFixed(3), ToFixed(2)
	if got := a.Add(b); got != ToFixed(5) {
		t.Errorf("3 + 2 = %v, want 5", got)
	}
	if got := a.Sub(b); got != ToFixed(1) {
		t.Errorf("3 - 2 = %v, want 1", got)
	}
	if got := a.Mul(4); got != ToFixed(12) {
		t.Errorf("3 * 4 = %v, want 12", got)
	}
	if got := ToFixed(10).Div(4); got != 2500 {
		t.Errorf("10 / 4 = %v, want 2.5", got)
	}
	if got := Fixed(-700).Abs(); got != 700 {
		t.Errorf("abs(-700) = %v, want 700", got)
	}
	if got := Fixed(-1).Sign(); got != -1 {
		t.Errorf("sign(-1) = %d, want -1", got)
	}
}

func TestDist(t *testing.T) {
	tests := []struct {
		dx, dy Fixed
		want   Fixed
	}{
		{ToFixed(3), ToFixed(4), ToFixed(5)},
		{ToFixed(-3), ToFixed(4), ToFixed(5)},
		{0, 0, 0},
		{ToFixed(10), 0, ToFixed(10)},
	}
	for _, tt := range tests {
		got := Dist(tt.dx, tt.dy)
		diff := got.Sub(tt.want).Abs()
		if diff > 2 {
			t.Errorf("Dist(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestClampFixed(t *testing.T) {
	if got := ClampFixed(ToFixed(5), ToFixed(1), ToFixed(3)); got != ToFixed(3) {
		t.Errorf("clamp above = %v, want 3", got)
	}
	if got := ClampFixed(ToFixed(0), ToFixed(1), ToFixed(3)); got != ToFixed(1) {
		t.Errorf("clamp below = %v, want 1", got)
	}
}

func TestSimpleRNGDeterminism(t *testing.T) {
	r1 := NewSimpleRNG(42)
	r2 := NewSimpleRNG(42)
	for i := 0; i < 100; i++ {
		if r1.Next() != r2.Next() {
			t.Fatal("same seed diverged")
		}
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.State() == 0 {
		t.Error("zero seed must be remapped to a nonzero state")
	}
}

func TestSimpleRNGRangeInclusive(t *testing.T) {
	r := NewSimpleRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("Range(2, 5) = %d, out of bounds", v)
		}
		seen[v] = true
	}
	for v := 2; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("Range(2, 5) never produced %d", v)
		}
	}
}

func TestSimpleRNGPick(t *testing.T) {
	r := NewSimpleRNG(9)
	weights := []int{0, 5, 0, 1}
	counts := make([]int, len(weights))
	for i := 0; i < 600; i++ {
		idx := r.Pick(weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("Pick returned %d", idx)
		}
		counts[idx]++
	}
	if counts[0] != 0 || counts[2] != 0 {
		t.Error("Pick selected a zero-weight entry")
	}
	if counts[1] <= counts[3] {
		t.Errorf("weight 5 picked %d times, weight 1 picked %d times", counts[1], counts[3])
	}
	if r.Pick([]int{0, 0}) != -1 {
		t.Error("Pick on all-zero weights should return -1")
	}
}
