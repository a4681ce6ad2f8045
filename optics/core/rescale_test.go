package core

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-structcol/internal/testutil"
)

func TestRescale(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "ramp", in: []float64{2, 4, 6}, want: []float64{0, 0.5, 1}},
		{name: "descending", in: []float64{10, 5, 0}, want: []float64{1, 0.5, 0}},
		{name: "negative", in: []float64{-3, -1, -2}, want: []float64{0, 1, 0.5}},
		{name: "two points", in: []float64{0.2, 0.7}, want: []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rescale(tt.in)
			if err != nil {
				t.Fatalf("Rescale() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestRescaleDoesNotModifyInput(t *testing.T) {
	in := []float64{2, 4, 6}
	if _, err := Rescale(in); err != nil {
		t.Fatalf("Rescale() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, in, []float64{2, 4, 6}, 0)
}

func TestRescaleInPlace(t *testing.T) {
	buf := testutil.Linspace(-1, 1, 9)
	if err := RescaleInPlace(buf); err != nil {
		t.Fatalf("RescaleInPlace() error = %v", err)
	}
	testutil.RequireFinite(t, buf)
	testutil.RequireSliceNearlyEqual(t, buf, testutil.Linspace(0, 1, 9), 1e-12)
}

func TestRescaleErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want error
	}{
		{name: "constant", in: []float64{5, 5, 5}, want: ErrDegenerateRange},
		{name: "single", in: []float64{1}, want: ErrDegenerateRange},
		{name: "empty", in: nil, want: ErrEmptyInput},
		{name: "nan", in: []float64{1, math.NaN(), 3}, want: ErrNonFinite},
		{name: "inf", in: []float64{1, math.Inf(1)}, want: ErrNonFinite},
		{name: "overflowing span", in: []float64{-math.MaxFloat64, math.MaxFloat64}, want: ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Rescale(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Rescale() error = %v, want %v", err, tt.want)
			}
			if got != nil {
				t.Fatalf("Rescale() = %v, want nil on error", got)
			}
		})
	}
}

func TestRescaleInPlaceLeavesBufferOnError(t *testing.T) {
	buf := []float64{5, 5, 5}
	if err := RescaleInPlace(buf); !errors.Is(err, ErrDegenerateRange) {
		t.Fatalf("RescaleInPlace() error = %v, want ErrDegenerateRange", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf, []float64{5, 5, 5}, 0)
}

func TestMinMax(t *testing.T) {
	minVal, maxVal, minPos, maxPos := MinMax([]float64{3, 1, 4, 1, 5, 9, 2, 9})
	if minVal != 1 || minPos != 1 {
		t.Fatalf("min = %v@%d, want 1@1", minVal, minPos)
	}
	if maxVal != 9 || maxPos != 5 {
		t.Fatalf("max = %v@%d, want 9@5", maxVal, maxPos)
	}

	minVal, maxVal, minPos, maxPos = MinMax(nil)
	if minVal != 0 || maxVal != 0 || minPos != 0 || maxPos != 0 {
		t.Fatal("expected zero values for empty input")
	}
}
