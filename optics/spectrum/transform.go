package spectrum

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-structcol/optics/core"
)

// Peak returns the wavelength and height of the reflectance maximum.
// If the maximum occurs more than once, the lowest index wins.
func (s *Spectrum) Peak() (wavelength, reflectance float64) {
	_, maxVal, _, maxPos := core.MinMax(s.reflectance)
	return s.wavelength[maxPos], maxVal
}

// Select returns the sub-spectrum made of the measured points closest to
// each target wavelength, in target order. Selected rows keep their measured
// wavelength; a target between two points snaps to the nearer one.
func (s *Spectrum) Select(targets []float64) (*Spectrum, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("spectrum: select: no targets: %w", core.ErrEmptyInput)
	}

	idx, err := core.FindCloseIndices(s.wavelength, targets)
	if err != nil {
		return nil, fmt.Errorf("spectrum: select: %w", err)
	}

	n := len(idx)
	out := &Spectrum{
		wavelength:  make([]float64, n),
		reflectance: make([]float64, n),
		sigmaR:      make([]float64, n),
	}
	for i, j := range idx {
		out.wavelength[i] = s.wavelength[j]
		out.reflectance[i] = s.reflectance[j]
		out.sigmaR[i] = s.sigmaR[j]
	}
	return out, nil
}

// Interpolate resamples reflectance and sigma_r onto grid by piecewise-linear
// interpolation. Grid points outside the measured range take the value of
// the nearest end point.
//
// The spectrum wavelength must be strictly increasing and finite. NaN or Inf
// grid points fail with [core.ErrNonFinite].
func (s *Spectrum) Interpolate(grid []float64) (*Spectrum, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("spectrum: interpolate: empty grid: %w", core.ErrEmptyInput)
	}
	for i, q := range grid {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return nil, fmt.Errorf("spectrum: interpolate: grid index %d: %w", i, core.ErrNonFinite)
		}
	}
	for i, w := range s.wavelength {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("spectrum: interpolate: wavelength index %d: %w", i, core.ErrNonFinite)
		}
	}
	for i := 1; i < len(s.wavelength); i++ {
		if !(s.wavelength[i] > s.wavelength[i-1]) {
			return nil, fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}

	return &Spectrum{
		wavelength:  clone(grid),
		reflectance: interpolateLinear(s.wavelength, s.reflectance, grid),
		sigmaR:      interpolateLinear(s.wavelength, s.sigmaR, grid),
	}, nil
}

// interpolateLinear evaluates the polyline (x, y) at queryX. x must be
// strictly increasing and non-empty, and queryX must not contain NaN.
func interpolateLinear(x, y, queryX []float64) []float64 {
	out := make([]float64, len(queryX))
	last := len(x) - 1
	for i, q := range queryX {
		if q <= x[0] {
			out[i] = y[0]
			continue
		}
		if q >= x[last] {
			out[i] = y[last]
			continue
		}

		j := sort.SearchFloat64s(x, q)
		x0, x1 := x[j-1], x[j]
		t := (q - x0) / (x1 - x0)
		out[i] = y[j-1] + t*(y[j]-y[j-1])
	}
	return out
}

// Normalized returns a copy with reflectance min-max rescaled onto [0, 1].
// sigma_r is divided by the same reflectance range so that relative
// uncertainties are preserved.
//
// A flat reflectance curve fails with [core.ErrDegenerateRange].
func (s *Spectrum) Normalized() (*Spectrum, error) {
	minVal, maxVal, _, _ := core.MinMax(s.reflectance)

	refl := clone(s.reflectance)
	if err := core.RescaleInPlace(refl); err != nil {
		return nil, fmt.Errorf("spectrum: normalize: %w", err)
	}

	sigma := make([]float64, len(s.sigmaR))
	vecmath.ScaleBlock(sigma, s.sigmaR, 1/(maxVal-minVal))

	return &Spectrum{
		wavelength:  clone(s.wavelength),
		reflectance: refl,
		sigmaR:      sigma,
	}, nil
}
