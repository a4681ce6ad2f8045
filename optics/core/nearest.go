package core

import (
	"fmt"
	"math"
)

// FindCloseIndex returns the index of the value in biglist closest to
// target. Ties resolve to the lowest index. Returns -1 for empty biglist and
// for a NaN or infinite target, which has no closest value.
func FindCloseIndex(biglist []float64, target float64) int {
	if len(biglist) == 0 || !isFinite(target) {
		return -1
	}

	best := 0
	bestDist := distance(biglist[0], target)
	for i := 1; i < len(biglist); i++ {
		d := distance(biglist[i], target)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best
}

// FindCloseIndices returns, for each value in targets, the index of the
// closest value in biglist. Indices are returned in target order.
//
// Each lookup costs O(len(biglist)); biglist does not need to be sorted.
// A NaN or infinite target fails with [ErrNonFinite].
func FindCloseIndices(biglist, targets []float64) ([]int, error) {
	if len(biglist) == 0 {
		return nil, ErrEmptyInput
	}
	for i, target := range targets {
		if !isFinite(target) {
			return nil, fmt.Errorf("%w: target index %d", ErrNonFinite, i)
		}
	}

	out := make([]int, len(targets))
	for i, target := range targets {
		out[i] = FindCloseIndex(biglist, target)
	}

	return out, nil
}

// distance treats NaN entries as infinitely far away.
func distance(a, b float64) float64 {
	d := math.Abs(a - b)
	if math.IsNaN(d) {
		return math.Inf(1)
	}
	return d
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
