package sample

import (
	"fmt"

	"github.com/cwbudde/algo-structcol/optics/core"
)

// Sample is an immutable description of a scattering sample on a wavelength
// grid. All index slices have the same length as the grid.
type Sample struct {
	wavelength    []float64
	particleSize  Length
	thickness     Length
	particleIndex []float64
	matrixIndex   []float64
	mediumIndex   []float64
	incidentAngle float64
}

// New builds a Sample. wavelength is copied and defines the grid length N.
// particleIndex, matrixIndex and the medium index from [WithMediumIndex]
// must each hold 1 or N values; other lengths fail with
// [core.ErrLengthMismatch].
func New(
	wavelength []float64,
	particleSize, thickness Length,
	particleIndex, matrixIndex []float64,
	opts ...Option,
) (*Sample, error) {
	n := len(wavelength)
	if n == 0 {
		return nil, fmt.Errorf("sample: wavelength: %w", core.ErrEmptyInput)
	}
	cfg := ApplyOptions(opts...)

	s := &Sample{
		wavelength:    make([]float64, n),
		particleSize:  particleSize,
		thickness:     thickness,
		incidentAngle: cfg.IncidentAngle,
	}
	copy(s.wavelength, wavelength)

	var err error
	if s.particleIndex, err = extendIndex("particle_index", particleIndex, n); err != nil {
		return nil, err
	}
	if s.matrixIndex, err = extendIndex("matrix_index", matrixIndex, n); err != nil {
		return nil, err
	}
	if s.mediumIndex, err = extendIndex("medium_index", cfg.MediumIndex, n); err != nil {
		return nil, err
	}

	return s, nil
}

// extendIndex broadcasts an index to n values and always returns a slice
// the Sample owns.
func extendIndex(name string, index []float64, n int) ([]float64, error) {
	out, err := core.Extend(index, n)
	if err != nil {
		return nil, fmt.Errorf("sample: %s: %w", name, err)
	}
	if len(index) == n {
		out = make([]float64, n)
		copy(out, index)
	}
	return out, nil
}

// Len returns the number of wavelength points.
func (s *Sample) Len() int { return len(s.wavelength) }

// Wavelength returns the wavelength grid. The slice must not be modified.
func (s *Sample) Wavelength() []float64 { return s.wavelength }

// ParticleSize returns the particle size.
func (s *Sample) ParticleSize() Length { return s.particleSize }

// Thickness returns the sample thickness.
func (s *Sample) Thickness() Length { return s.thickness }

// ParticleIndex returns the particle refractive index per wavelength.
func (s *Sample) ParticleIndex() []float64 { return s.particleIndex }

// MatrixIndex returns the matrix refractive index per wavelength.
func (s *Sample) MatrixIndex() []float64 { return s.matrixIndex }

// MediumIndex returns the medium refractive index per wavelength.
func (s *Sample) MediumIndex() []float64 { return s.mediumIndex }

// IncidentAngle returns the incident angle in radians.
func (s *Sample) IncidentAngle() float64 { return s.incidentAngle }
