package puzzle

import "math/rand"

// NewSequence returns the values 1..n in random order.
// It returns an empty slice for n < 1.
func NewSequence(n int, rng *rand.Rand) []int {
	if n < 1 {
		return []int{}
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i + 1
	}
	shuffle(seq, rng)
	return seq
}

// shuffle permutes s in place with Fisher-Yates.
func shuffle[T any](s []T, rng *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// IsPermutation reports whether seq holds every value of 1..len(seq) exactly once.
func IsPermutation(seq []int) bool {
	seen := make([]bool, len(seq)+1)
	for _, v := range seq {
		if v < 1 || v > len(seq) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
