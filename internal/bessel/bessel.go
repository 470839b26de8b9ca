// Package bessel evaluates Bessel functions of the first kind at integer
// order and locates their positive zeros, which define the non-uniform
// spectral sample points of the Hankel transform.
package bessel

import "math"

// J returns the Bessel function of the first kind of integer order n.
func J(n int, x float64) float64 {
	return math.Jn(n, x)
}

// Zeros returns the first k positive zeros of J_m in strictly increasing
// order. m must be non-negative.
//
// Order-0 zeros are seeded from McMahon's asymptotic expansion and polished
// by Newton iteration. For higher orders each zero j_{m,s} is bracketed by
// the interlacing property j_{m-1,s} < j_{m,s} < j_{m-1,s+1} and refined by
// bisection followed by Newton polishing, walking the order up from 0. This
// needs k+m zeros of J_0 to deliver k zeros of J_m.
func Zeros(m, k int) []float64 {
	if k < 1 {
		return nil
	}
	cur := zerosJ0(k + m)
	for ord := 1; ord <= m; ord++ {
		n := k + m - ord
		next := make([]float64, n)
		for s := 0; s < n; s++ {
			next[s] = bracketed(ord, cur[s], cur[s+1])
		}
		cur = next
	}
	return cur
}

// zerosJ0 returns the first n zeros of J_0. McMahon's expansion with two
// correction terms lands within ~1e-4 of every zero, well inside the Newton
// basin.
func zerosJ0(n int) []float64 {
	z := make([]float64, n)
	for s := 1; s <= n; s++ {
		b := (float64(s) - 0.25) * math.Pi
		x := b + 1/(8*b) - 124/(3*math.Pow(8*b, 3))
		z[s-1] = newton(0, x)
	}
	return z
}

// bracketed locates the single zero of J_n inside (lo, hi). J_n changes sign
// exactly once on the open interval, so bisection narrows the bracket and
// Newton finishes from its midpoint.
func bracketed(n int, lo, hi float64) float64 {
	flo := math.Jn(n, lo)
	for hi-lo > 1e-9 {
		mid := 0.5 * (lo + hi)
		fm := math.Jn(n, mid)
		if fm == 0 {
			return mid
		}
		if (fm > 0) == (flo > 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return newton(n, 0.5*(lo+hi))
}

// newton polishes a zero estimate of J_n using J_n' = (J_{n-1} - J_{n+1})/2
// (and J_0' = -J_1).
func newton(n int, x float64) float64 {
	for i := 0; i < 50; i++ {
		var deriv float64
		if n == 0 {
			deriv = -math.Jn(1, x)
		} else {
			deriv = 0.5 * (math.Jn(n-1, x) - math.Jn(n+1, x))
		}
		if deriv == 0 {
			break
		}
		dx := math.Jn(n, x) / deriv
		x -= dx
		if math.Abs(dx) < 1e-14*x {
			break
		}
	}
	return x
}
