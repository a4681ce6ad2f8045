package core

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MinMax returns the smallest and largest value of x together with the
// position of their first occurrence. Returns zeros for empty input.
func MinMax(x []float64) (minVal, maxVal float64, minPos, maxPos int) {
	if len(x) == 0 {
		return 0, 0, 0, 0
	}

	minVal, maxVal = x[0], x[0]
	for i, v := range x[1:] {
		if v < minVal {
			minVal = v
			minPos = i + 1
		}
		if v > maxVal {
			maxVal = v
			maxPos = i + 1
		}
	}

	return minVal, maxVal, minPos, maxPos
}

// Rescale returns a new slice with in linearly mapped onto [0, 1]:
//
//	out[i] = (in[i] - min) / (max - min)
//
// Constant input has no defined mapping and fails with
// [ErrDegenerateRange] instead of producing NaN.
func Rescale(in []float64) ([]float64, error) {
	out := make([]float64, len(in))
	copy(out, in)

	if err := RescaleInPlace(out); err != nil {
		return nil, err
	}

	return out, nil
}

// RescaleInPlace is the in-place variant of [Rescale]. buf is left untouched
// when an error is returned.
func RescaleInPlace(buf []float64) error {
	if len(buf) == 0 {
		return ErrEmptyInput
	}

	for _, v := range buf {
		if !isFinite(v) {
			return ErrNonFinite
		}
	}

	minVal, maxVal, _, _ := MinMax(buf)
	span := maxVal - minVal
	if span == 0 {
		return ErrDegenerateRange
	}

	// max - min of finite values can still overflow.
	if math.IsInf(span, 0) {
		return ErrNonFinite
	}

	for i := range buf {
		buf[i] -= minVal
	}
	vecmath.ScaleBlockInPlace(buf, 1/span)
	return nil
}
