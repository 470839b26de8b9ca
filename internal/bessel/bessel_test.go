package bessel

import (
	"math"
	"testing"
)

// Published zeros of J_m (Abramowitz & Stegun table 9.5, extended).
var knownZeros = map[int][]float64{
	0: {2.404825557695773, 5.520078110286311, 8.653727912911012, 11.791534439014281, 14.930917708487785},
	1: {3.831705970207512, 7.015586669815618, 10.173468135062722, 13.323691936314223},
	2: {5.135622301840683, 8.417244140399864, 11.619841172149059},
	5: {8.771483815959954, 12.338604197466944, 15.700174079711671},
}

func TestZerosAgainstPublishedValues(t *testing.T) {
	for m, want := range knownZeros {
		got := Zeros(m, len(want))
		if len(got) != len(want) {
			t.Fatalf("Zeros(%d, %d): got %d zeros", m, len(want), len(got))
		}
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-10 {
				t.Errorf("Zeros(%d)[%d]: got %.15f want %.15f", m, i, got[i], want[i])
			}
		}
	}
}

func TestZerosAreActualRoots(t *testing.T) {
	for m := 0; m <= 7; m++ {
		for i, z := range Zeros(m, 12) {
			if v := math.Abs(J(m, z)); v > 1e-12 {
				t.Errorf("J_%d at zero %d (%.12f): |J| = %g", m, i, z, v)
			}
		}
	}
}

func TestZerosStrictlyIncreasing(t *testing.T) {
	for m := 0; m <= 7; m++ {
		z := Zeros(m, 16)
		if z[0] <= 0 {
			t.Fatalf("m=%d: first zero %v not positive", m, z[0])
		}
		for i := 1; i < len(z); i++ {
			if z[i] <= z[i-1] {
				t.Fatalf("m=%d: zeros not increasing at %d: %v <= %v", m, i, z[i], z[i-1])
			}
		}
	}
}

func TestZerosInterlace(t *testing.T) {
	for m := 0; m <= 5; m++ {
		lower := Zeros(m, 9)
		upper := Zeros(m+1, 8)
		for i := range upper {
			if !(lower[i] < upper[i] && upper[i] < lower[i+1]) {
				t.Errorf("interlacing violated at m=%d, i=%d: %v, %v, %v",
					m, i, lower[i], upper[i], lower[i+1])
			}
		}
	}
}

func TestZerosEmpty(t *testing.T) {
	if z := Zeros(3, 0); z != nil {
		t.Fatalf("Zeros(3, 0) = %v, want nil", z)
	}
}
