// Package spectrum provides a reflectance spectrum container for
// structural-color measurements and simulations.
//
// A [Spectrum] holds three parallel columns: wavelength, reflectance and the
// reflectance uncertainty sigma_r. Columns are validated for equal length at
// construction and are never modified afterwards.
//
// # Export
//
// [Spectrum.Save] writes the columns as whitespace-separated text, one row
// per wavelength and no header, in the order
//
//	wavelength reflectance sigma_r
//
// Values use 18-digit exponent notation so that a saved file reads back to
// the same float64 values. Paths without a ".txt" suffix get one appended,
// see [TextPath].
//
// # Transmission
//
// Transmission data is not supported. [Spectrum.HasTransmission] always
// reports false and [Spectrum.Transmission], [Spectrum.SigmaT] and
// [WithTransmission] fail with [ErrNotImplemented].
package spectrum
