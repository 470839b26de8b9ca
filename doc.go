// Package algodht implements the quasi-cylindrical Discrete Hankel Transform
// (DHT) used by spectral particle-in-cell field solvers.
//
// A DHT instance is built once per (order, azimuthal mode) combination and
// converts field quantities between a real-space radial grid and their
// Bessel-mode spectral representation:
//
//	g(nu) = 2 pi Int f(r)  J_p(2 pi nu r) r  dr
//	f(r)  = 2 pi Int g(nu) J_p(2 pi nu r) nu dnu
//
// The discrete transform pair is a precomputed dense matrix product applied
// batched over a second (longitudinal) grid axis. Construction derives the
// radial sample points, the spectral frequencies from Bessel-function zeros,
// and the forward/inverse matrices; per-step calls are pure matrix
// multiplications. An optional GPU execution path mirrors the CPU path
// through the gpu subpackage and must agree with it numerically.
package algodht
