package algodht

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func randomArray(rng *rand.Rand, rows, cols int) *Array2D {
	a := NewArray2D(rows, cols)
	for i := range a.data {
		a.data[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return a
}

func maxAbs(a *Array2D) float64 {
	m := 0.0
	for _, v := range a.data {
		if abs := cmplx.Abs(v); abs > m {
			m = abs
		}
	}
	return m
}

func assertArraysApproxTolf(t *testing.T, got, want *Array2D, tol float64, format string, args ...any) {
	t.Helper()

	if got.rows != want.rows || got.cols != want.cols {
		t.Fatalf(format+": shape (%d,%d) != (%d,%d)", append(args, got.rows, got.cols, want.rows, want.cols)...)
	}
	for i := 0; i < got.rows; i++ {
		for j := 0; j < got.cols; j++ {
			if d := cmplx.Abs(got.At(i, j) - want.At(i, j)); d > tol {
				t.Fatalf(format+": element (%d,%d) got %v want %v (diff=%v)",
					append(args, i, j, got.At(i, j), want.At(i, j), d)...)
			}
		}
	}
}
