package core

import "fmt"

// Scalar wraps v as a single-element slice suitable for [Extend].
func Scalar(v float64) []float64 {
	return []float64{v}
}

// Extend broadcasts val to length n.
//
// If len(val) == n, val is returned unchanged and shares its backing array
// with the result. If len(val) == 1, a new slice holding n copies of val[0]
// is returned. Any other length fails with [ErrLengthMismatch].
func Extend(val []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	switch len(val) {
	case n:
		return val, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = val[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: got %d, want 1 or %d", ErrLengthMismatch, len(val), n)
	}
}
