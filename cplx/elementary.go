// Copyright 2026 Andrei Vekin. All rights reserved.

package cplx

import "math"

// Sqrt returns the principal square root of z, with the branch cut along
// the negative real axis. The sign of a zero imaginary part selects the
// branch: Sqrt of (-2, +0) is (0, +sqrt(2)), Sqrt of (-2, -0) is
// (0, -sqrt(2)).
func (z Complex) Sqrt() Complex {
	x, y := z.re, z.im
	switch {
	case z.IsNaN():
		return NaN
	case math.IsInf(y, 0):
		// sqrt(x ± i*inf) = +inf ± i*inf for every x, NaN included.
		return Complex{re: math.Inf(1), im: y}
	case math.IsInf(x, 1):
		if math.IsNaN(y) {
			return Complex{re: x, im: y}
		}
		return Complex{re: x, im: math.Copysign(0, y)}
	case math.IsInf(x, -1):
		if math.IsNaN(y) {
			// The imaginary infinity carries the sign bit of the NaN,
			// so conjugation commutes.
			return Complex{re: y, im: math.Copysign(math.Inf(1), y)}
		}
		return Complex{re: 0, im: math.NaN()}
	}
	if y == 0 {
		switch {
		case x == 0:
			return Complex{re: 0, im: y}
		case x < 0:
			return Complex{re: 0, im: math.Copysign(math.Sqrt(-x), y)}
		}
		return Complex{re: math.Sqrt(x), im: y}
	}
	if x == 0 {
		r := math.Sqrt(0.5 * math.Abs(y))
		return Complex{re: r, im: math.Copysign(r, y)}
	}
	// Rescale to avoid internal overflow and underflow.
	a, b := x, y
	var scale float64
	if math.Abs(a) > 4 || math.Abs(b) > 4 {
		a *= 0.25
		b *= 0.25
		scale = 2
	} else {
		a *= 1.8014398509481984e16 // 2**54
		b *= 1.8014398509481984e16
		scale = 7.450580596923828125e-9 // 2**-27
	}
	r := math.Hypot(a, b)
	var t float64
	if a > 0 {
		t = math.Sqrt(0.5*r + 0.5*a)
		r = scale * math.Abs(0.5*b/t)
		t *= scale
	} else {
		r = math.Sqrt(0.5*r - 0.5*a)
		t = scale * math.Abs(0.5*b/r)
		r *= scale
	}
	if b < 0 {
		return Complex{re: t, im: -r}
	}
	return Complex{re: t, im: r}
}

// Exp returns e**z.
func (z Complex) Exp() Complex {
	x, y := z.re, z.im
	switch {
	case math.IsInf(x, 0):
		switch {
		case x > 0 && y == 0:
			return z
		case math.IsInf(y, 0) || math.IsNaN(y):
			if x < 0 {
				return Complex{re: 0, im: math.Copysign(0, y)}
			}
			return Complex{re: math.Inf(1), im: math.NaN()}
		}
	case math.IsNaN(x):
		if y == 0 {
			return Complex{re: math.NaN(), im: y}
		}
	}
	r := math.Exp(x)
	s, c := math.Sincos(y)
	return Complex{re: r * c, im: r * s}
}

// Log returns the principal natural logarithm of z, with the imaginary
// part in (-pi, pi]. Log of (0, 0) is (-Inf, 0) and Log of (-0, 0) is
// (-Inf, pi); there is no error for any input.
func (z Complex) Log() Complex {
	return Complex{re: math.Log(z.Abs()), im: z.Arg()}
}

// Log10 returns the base-10 logarithm of the modulus plus i times the
// argument. Only the real part is rescaled; the imaginary part is the
// same as Log's, so the two share every special case.
func (z Complex) Log10() Complex {
	return Complex{re: math.Log10(z.Abs()), im: z.Arg()}
}

// Pow returns z**w computed as exp(w * log z).
// A zero base raised to an exponent with a positive real part and zero
// imaginary part is zero; a zero base with any other exponent is NaN.
func (z Complex) Pow(w Complex) Complex {
	if z.IsZero() {
		if w.re > 0 && w.im == 0 {
			return Zero
		}
		return NaN
	}
	return z.Log().Mul(w).Exp()
}

// PowReal returns z**p for a real exponent.
func (z Complex) PowReal(p float64) Complex {
	return z.Pow(Complex{re: p})
}
