// Package seq holds the per-site numeric helpers used by sequence
// simulation pipelines: a Markov nucleotide-substitution sampler, a pairwise
// minimum Hamming distance, and a three-way mask-intersection predicate.
// All of them validate argument shape and fail fast before touching data.
package seq

import (
	"fmt"
	"math/rand"
)

// ErrBadArgs wraps every argument-shape failure so callers can test for the
// whole class with errors.Is.
var ErrBadArgs = fmt.Errorf("seq: bad arguments")

// Evolve replaces each nucleotide code (0-3) in s, in place, by sampling
// from the corresponding row of the 4x4 substitution probability matrix.
// Rows must be row-stochastic; the last cumulative entry is pinned to 1 so
// rounding noise cannot leave a row unreachable. rng supplies the uniform
// draws.
func Evolve(mat [][]float64, s []uint8, rng *rand.Rand) error {
	if len(mat) != 4 {
		return fmt.Errorf("%w: want a 4x4 matrix, got %d rows", ErrBadArgs, len(mat))
	}
	for i, row := range mat {
		if len(row) != 4 {
			return fmt.Errorf("%w: want a 4x4 matrix, row %d has %d columns", ErrBadArgs, i, len(row))
		}
	}
	for i, c := range s {
		if c > 3 {
			return fmt.Errorf("%w: nucleotide code %d at position %d", ErrBadArgs, c, i)
		}
	}
	if rng == nil {
		return fmt.Errorf("%w: nil random source", ErrBadArgs)
	}

	// Cumulative row distributions, computed once per call.
	var cum [4][4]float64
	for i := 0; i < 4; i++ {
		cum[i][0] = mat[i][0]
		cum[i][1] = cum[i][0] + mat[i][1]
		cum[i][2] = cum[i][1] + mat[i][2]
		cum[i][3] = 1.0
	}

	for k, c := range s {
		row := &cum[c]
		r := rng.Float64()
		var next uint8
		if r < row[1] {
			if r >= row[0] {
				next = 1
			}
		} else {
			next = 2
			if r >= row[2] {
				next = 3
			}
		}
		s[k] = next
	}
	return nil
}

// MinDiff returns the minimum Hamming distance over all cross pairs from a
// and b. Every string in both collections must have the same length.
func MinDiff(a, b []string) (int, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: empty sequence collection", ErrBadArgs)
	}
	n := len(a[0])
	for _, s := range a {
		if len(s) != n {
			return 0, fmt.Errorf("%w: sequence length %d, want %d", ErrBadArgs, len(s), n)
		}
	}
	for _, s := range b {
		if len(s) != n {
			return 0, fmt.Errorf("%w: sequence length %d, want %d", ErrBadArgs, len(s), n)
		}
	}

	min := n + 1
	for _, s1 := range a {
		for _, s2 := range b {
			count := 0
			for i := 0; i < n; i++ {
				if s1[i] != s2[i] {
					count++
				}
			}
			if count < min {
				min = count
			}
		}
	}
	return min, nil
}

// NonEmptyIntersection reports whether mask a intersects mask s at some
// position and mask b intersects mask s at some (independent) position.
// All three masks must have the same length; nonzero means set.
func NonEmptyIntersection(a, b, s []int64) (bool, error) {
	if len(b) != len(a) || len(s) != len(a) {
		return false, fmt.Errorf("%w: mask lengths %d, %d, %d differ", ErrBadArgs, len(a), len(b), len(s))
	}

	inA := false
	for i := range a {
		if a[i] != 0 && s[i] != 0 {
			inA = true
			break
		}
	}
	if !inA {
		return false, nil
	}
	for i := range b {
		if b[i] != 0 && s[i] != 0 {
			return true, nil
		}
	}
	return false, nil
}
