package algodht

import (
	"math"

	"github.com/cwbudde/algo-dht/internal/bessel"
)

// besselRoots returns the Nr spectral root locations for azimuthal mode m.
// For m != 0 the sequence starts with a synthetic root at 0 followed by the
// first Nr-1 true zeros of J_m: the zero-frequency term is needed to
// reconstruct the on-axis value of an order-0 expansion. For m == 0 the
// first Nr true zeros are used directly.
func besselRoots(m, nr int) []float64 {
	if m == 0 {
		return bessel.Zeros(m, nr)
	}
	roots := make([]float64, nr)
	copy(roots[1:], bessel.Zeros(m, nr-1))
	return roots
}

// spectralGrid scales root locations into spectral frequencies nu.
func spectralGrid(roots []float64, rmax float64) []float64 {
	nu := make([]float64, len(roots))
	for i, a := range roots {
		nu[i] = a / (2 * math.Pi * rmax)
	}
	return nu
}

// radialGrid returns the uniform cell-centered radial sample points,
// r[i] = (rmax/Nr)*(i + 1/2).
func radialGrid(nr int, rmax float64) []float64 {
	r := make([]float64, nr)
	dr := rmax / float64(nr)
	for i := range r {
		r[i] = dr * (float64(i) + 0.5)
	}
	return r
}
