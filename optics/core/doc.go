// Package core provides the stateless array utilities shared by the
// structural-color data containers.
//
// All functions operate on plain []float64 slices and never retain their
// inputs:
//
//   - [Extend]:           broadcast a length-1 slice to a target length
//   - [Rescale]:          min-max normalization onto [0, 1]
//   - [FindCloseIndices]: nearest-value index lookup
//
// Scalars are passed as single-element slices, see [Scalar].
//
// # Errors
//
// Failures are reported through the sentinel errors declared in this
// package and may be wrapped with additional context by callers:
//
//	idx, err := core.Extend(nParticle, len(wavelength))
//	if errors.Is(err, core.ErrLengthMismatch) {
//		// caller configuration error
//	}
package core
