// Package sample describes a particle-in-matrix scattering sample.
//
// A [Sample] bundles the physical inputs of a structural-color model: the
// wavelength grid, particle size, film thickness, and the refractive indices
// of the particles, the matrix and the surrounding medium. Index inputs may be
// a single value or one value per wavelength; single values are broadcast to
// the grid length with [core.Extend].
//
//	s, err := sample.New(wavelength, 150*sample.Nanometer, 50*sample.Micrometer,
//		core.Scalar(1.59), core.Scalar(1.0),
//		sample.WithIncidentAngle(0.1))
package sample
