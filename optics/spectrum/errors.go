package spectrum

import "errors"

// Errors returned by spectrum operations.
var (
	ErrNotImplemented = errors.New("spectrum: transmission data not implemented")
	ErrNotIncreasing  = errors.New("spectrum: wavelength must be strictly increasing")
)
