package core

import "errors"

// Errors returned by the array utilities.
var (
	ErrEmptyInput      = errors.New("core: empty input")
	ErrInvalidLength   = errors.New("core: target length must be > 0")
	ErrLengthMismatch  = errors.New("core: arrays are of different lengths, cannot interpret")
	ErrDegenerateRange = errors.New("core: cannot rescale constant input")
	ErrNonFinite       = errors.New("core: input contains NaN or Inf")
)
