package sample

// Config holds the optional sample parameters.
type Config struct {
	// MediumIndex is the refractive index of the ambient medium, either a
	// single value or one value per wavelength.
	MediumIndex []float64
	// IncidentAngle is the illumination angle in radians.
	IncidentAngle float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns vacuum/air as medium and normal incidence.
func DefaultConfig() Config {
	return Config{
		MediumIndex:   []float64{1},
		IncidentAngle: 0,
	}
}

// WithMediumIndex sets the medium refractive index. Calling it without
// values keeps the default.
func WithMediumIndex(index ...float64) Option {
	return func(cfg *Config) {
		if len(index) > 0 {
			cfg.MediumIndex = index
		}
	}
}

// WithIncidentAngle sets the incident angle in radians.
func WithIncidentAngle(rad float64) Option {
	return func(cfg *Config) {
		cfg.IncidentAngle = rad
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
