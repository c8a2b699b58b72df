package puzzle

import (
	"math/rand"
	"testing"
)

func TestNewSequenceIsPermutation(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for seed := int64(0); seed < 5; seed++ {
			seq := NewSequence(n, rand.New(rand.NewSource(seed)))
			if len(seq) != n {
				t.Fatalf("NewSequence(%d) length = %d", n, len(seq))
			}
			if !IsPermutation(seq) {
				t.Fatalf("NewSequence(%d, seed %d) = %v is not a permutation of 1..%d", n, seed, seq, n)
			}
		}
	}
}

func TestNewSequenceEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if seq := NewSequence(0, rng); len(seq) != 0 {
		t.Errorf("NewSequence(0) = %v, expected empty", seq)
	}
	if seq := NewSequence(-3, rng); len(seq) != 0 {
		t.Errorf("NewSequence(-3) = %v, expected empty", seq)
	}
}

func TestNewSequenceDeterministic(t *testing.T) {
	a := NewSequence(20, rand.New(rand.NewSource(42)))
	b := NewSequence(20, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different sequences: %v vs %v", a, b)
		}
	}
}

func TestNewSequenceShuffles(t *testing.T) {
	// Over many seeds at least one deal must leave 1 out of the first slot
	moved := false
	for seed := int64(0); seed < 20 && !moved; seed++ {
		seq := NewSequence(10, rand.New(rand.NewSource(seed)))
		moved = seq[0] != 1
	}
	if !moved {
		t.Error("sequence never left ascending order")
	}
}

func TestIsPermutation(t *testing.T) {
	tests := []struct {
		name     string
		seq      []int
		expected bool
	}{
		{"empty", []int{}, true},
		{"single", []int{1}, true},
		{"shuffled", []int{3, 1, 2}, true},
		{"duplicate", []int{1, 1, 2}, false},
		{"omission", []int{1, 2, 4}, false},
		{"zero", []int{0, 1, 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPermutation(tc.seq); got != tc.expected {
				t.Errorf("IsPermutation(%v) = %v, expected %v", tc.seq, got, tc.expected)
			}
		})
	}
}
