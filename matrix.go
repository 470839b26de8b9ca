package algodht

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dht/internal/bessel"
)

// matrixPolicy selects the construction rule for the transform matrices.
// It is decided once from (p, m) and applied during construction so the
// per-step transform path carries no mode conditionals.
type matrixPolicy uint8

const (
	// policyFullInverse: m == 0. invM is regular; M is its direct inverse.
	policyFullInverse matrixPolicy = iota

	// policyClosedFormRow: m != 0 and p == m-1. Row 0 of invM takes the
	// closed-form limit r^(m-1)/(pi*rmax^(m+1)) at the synthetic zero
	// frequency; invM stays regular and M is its direct inverse.
	policyClosedFormRow

	// policyPinvZeroColumn: m != 0 and p != m-1. Row 0 of invM is zero
	// (this mode cannot represent a uniform offset), M is the pseudo-inverse
	// of the submatrix excluding that row, and column 0 of M is forced to
	// zero: information at zero frequency is irrecoverable for this pairing.
	policyPinvZeroColumn
)

func policyFor(p, m int) matrixPolicy {
	switch {
	case m == 0:
		return policyFullInverse
	case p == m-1:
		return policyClosedFormRow
	default:
		return policyPinvZeroColumn
	}
}

const matrixEps = 0x1p-52

// buildMatrices constructs the inverse transform matrix invM from Bessel
// evaluations at the grid points, then derives the forward matrix M by
// inversion or restricted pseudo-inversion according to the policy.
//
// Both matrices are stored transposed relative to the analytic definition so
// that the per-step transforms are right-multiplications F*M and G*invM
// batched over the longitudinal axis.
func buildMatrices(p, m, nr int, r, nu, roots []float64, rmax float64, log *zap.Logger) (fwd, inv *mat.Dense, err error) {
	pol := policyFor(p, m)

	// Normalization order: p+1 when p == m, else p.
	pDenom := p
	if p == m {
		pDenom = p + 1
	}

	inv = mat.NewDense(nr, nr, nil)
	row0 := 0
	if pol != policyFullInverse {
		row0 = 1
	}
	for i := row0; i < nr; i++ {
		jp := bessel.J(pDenom, roots[i])
		denom := math.Pi * rmax * rmax * jp * jp
		for j := 0; j < nr; j++ {
			inv.Set(i, j, bessel.J(p, 2*math.Pi*r[j]*nu[i])/denom)
		}
	}
	if pol == policyClosedFormRow {
		scale := 1 / (math.Pi * math.Pow(rmax, float64(m+1)))
		for j := 0; j < nr; j++ {
			inv.Set(0, j, math.Pow(r[j], float64(m-1))*scale)
		}
	}

	// Forward matrix, sized (nr, nr) from the configured radial count for
	// both dimensions.
	fwd = mat.NewDense(nr, nr, nil)
	if pol == policyPinvZeroColumn {
		// With a single radial point the submatrix excluding the degenerate
		// row is empty and the forward matrix is entirely the forced-zero
		// column.
		if nr == 1 {
			return fwd, inv, nil
		}
		sub := inv.Slice(1, nr, 0, nr)
		pinv, perr := pseudoInverse(sub)
		if perr != nil {
			return nil, nil, perr
		}
		for i := 0; i < nr; i++ {
			for j := 1; j < nr; j++ {
				fwd.Set(i, j, pinv.At(i, j-1))
			}
		}
		return fwd, inv, nil
	}

	if ierr := fwd.Inverse(inv); ierr != nil {
		var cond mat.Condition
		if !errors.As(ierr, &cond) || math.IsInf(float64(cond), 0) {
			return nil, nil, fmt.Errorf("algodht: inverting transform matrix: %w", ErrSingularMatrix)
		}
		log.Debug("transform matrix is ill-conditioned",
			zap.Int("p", p), zap.Int("m", m), zap.Int("nr", nr),
			zap.Float64("condition", float64(cond)))
	}
	return fwd, inv, nil
}

// pseudoInverse returns the Moore-Penrose pseudo-inverse of a via thin SVD.
// Singular values below max(rows, cols)*eps*sigma_max are treated as zero.
func pseudoInverse(a mat.Matrix) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("algodht: SVD failed: %w", ErrSingularMatrix)
	}
	rows, cols := a.Dims()
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	tol := float64(max(rows, cols)) * matrixEps * s[0]
	vs := mat.NewDense(cols, len(s), nil)
	for j, sv := range s {
		var recip float64
		if sv > tol {
			recip = 1 / sv
		}
		for i := 0; i < cols; i++ {
			vs.Set(i, j, v.At(i, j)*recip)
		}
	}
	var pinv mat.Dense
	pinv.Mul(vs, u.T())
	return &pinv, nil
}

// toComplex flattens a real matrix into a row-major complex128 slice.
func toComplex(a *mat.Dense) []complex128 {
	rows, cols := a.Dims()
	out := make([]complex128, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[i*cols+j] = complex(a.At(i, j), 0)
		}
	}
	return out
}
