package core

import (
	"math"
	"testing"
)

func TestRectContainsCellFootprint(t *testing.T) {
	// A 5x3 cell box drawn at (4, 1), as the board lays it out.
	r := NewRect(4, 1, 5, 3)
	if r.Right() != 9 || r.Bottom() != 4 {
		t.Fatalf("edges = (%d, %d), expected (9, 4)", r.Right(), r.Bottom())
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left border", 4, 1, true},
		{"label", 6, 2, true},
		{"bottom-right border", 8, 3, true},
		{"one past right", 9, 2, false},
		{"one past bottom", 6, 4, false},
		{"left neighbour gap", 3, 2, false},
		{"header row", 6, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectZeroSizeContainsNothing(t *testing.T) {
	r := NewRect(2, 2, 0, 0)
	if r.Contains(2, 2) {
		t.Error("Contains(2, 2) = true, expected false for an empty rect")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected int
	}{
		{3, 0, 8, 3},
		{-2, 0, 8, 0},
		{12, 0, 8, 8},
		{8, 0, 8, 8},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.v, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected float64
	}{
		{0.4, 0, 1, 0.4},
		{-0.1, 0, 1, 0},
		{1.7, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := ClampF(tt.v, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tt.v, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestLerpBetweenSlots(t *testing.T) {
	from, to := V(2, 0), V(0, 3)

	tests := []struct {
		name     string
		t        float64
		expected Vec
	}{
		{"at source slot", 0, V(2, 0)},
		{"quarter way", 0.25, V(1.5, 0.75)},
		{"at target slot", 1, V(0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(from, to, tt.t)
			if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", from, to, tt.t, got, tt.expected)
			}
		})
	}
}

func TestSmoothstepEndpointsAndShape(t *testing.T) {
	tests := []struct {
		t, expected float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{0.75, 0.84375},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.t); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Smoothstep(%v) = %v, expected %v", tt.t, got, tt.expected)
		}
	}

	last := Smoothstep(0)
	for i := 1; i <= 50; i++ {
		v := Smoothstep(float64(i) / 50)
		if v < last {
			t.Fatalf("Smoothstep decreased at step %d: %v < %v", i, v, last)
		}
		last = v
	}
}

func TestVecRoundToCell(t *testing.T) {
	tests := []struct {
		v      Vec
		ex, ey int
	}{
		{V(1.49, 2.51), 1, 3},
		{V(0, 0), 0, 0},
		{V(2.5, 0.5), 3, 1},
	}
	for _, tt := range tests {
		if x, y := tt.v.Round(); x != tt.ex || y != tt.ey {
			t.Errorf("%v.Round() = (%d, %d), expected (%d, %d)", tt.v, x, y, tt.ex, tt.ey)
		}
	}
}
