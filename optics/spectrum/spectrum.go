package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-structcol/optics/core"
)

// Spectrum is a reflectance curve sampled on a wavelength grid.
type Spectrum struct {
	wavelength  []float64
	reflectance []float64
	sigmaR      []float64
}

type config struct {
	transmission bool
}

// Option configures [New].
type Option func(*config)

// WithTransmission supplies transmission data and its uncertainty.
//
// Transmission is not supported yet: passing non-nil data makes [New] fail
// with [ErrNotImplemented]. Two nil slices are treated as absent.
func WithTransmission(transmission, sigmaT []float64) Option {
	return func(cfg *config) {
		if transmission != nil || sigmaT != nil {
			cfg.transmission = true
		}
	}
}

// New builds a Spectrum from three parallel columns. The inputs are copied.
//
// All columns must be non-empty and of equal length; otherwise New fails with
// [core.ErrEmptyInput] or [core.ErrLengthMismatch].
func New(wavelength, reflectance, sigmaR []float64, opts ...Option) (*Spectrum, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.transmission {
		return nil, ErrNotImplemented
	}

	n := len(wavelength)
	if n == 0 {
		return nil, fmt.Errorf("spectrum: wavelength: %w", core.ErrEmptyInput)
	}
	if len(reflectance) != n {
		return nil, fmt.Errorf("spectrum: reflectance has %d values, wavelength has %d: %w",
			len(reflectance), n, core.ErrLengthMismatch)
	}
	if len(sigmaR) != n {
		return nil, fmt.Errorf("spectrum: sigma_r has %d values, wavelength has %d: %w",
			len(sigmaR), n, core.ErrLengthMismatch)
	}

	return &Spectrum{
		wavelength:  clone(wavelength),
		reflectance: clone(reflectance),
		sigmaR:      clone(sigmaR),
	}, nil
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

// Len returns the number of wavelength points.
func (s *Spectrum) Len() int { return len(s.wavelength) }

// Wavelength returns the wavelength column.
// The slice is shared with the Spectrum and must not be modified.
func (s *Spectrum) Wavelength() []float64 { return s.wavelength }

// Reflectance returns the reflectance column.
// The slice is shared with the Spectrum and must not be modified.
func (s *Spectrum) Reflectance() []float64 { return s.reflectance }

// SigmaR returns the reflectance uncertainty column.
// The slice is shared with the Spectrum and must not be modified.
func (s *Spectrum) SigmaR() []float64 { return s.sigmaR }

// HasTransmission reports whether transmission data is available. It is
// always false.
func (s *Spectrum) HasTransmission() bool { return false }

// Transmission always fails with [ErrNotImplemented].
func (s *Spectrum) Transmission() ([]float64, error) { return nil, ErrNotImplemented }

// SigmaT always fails with [ErrNotImplemented].
func (s *Spectrum) SigmaT() ([]float64, error) { return nil, ErrNotImplemented }
