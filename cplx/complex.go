// Copyright 2026 Andrei Vekin. All rights reserved.

// package cplx implements a double-precision complex number with the
// special-value semantics of ISO C99 Annex G.
// Unlike the builtin complex128 operators, multiplication and division
// recover infinities that a naive formula turns into NaN, so that
// inf * finite is always an infinity and overflow of a finite product
// is corrected to an infinity.
package cplx

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

var (
	// Zero is the complex number (0, 0).
	Zero Complex
	// One is the complex number (1, 0).
	One = Complex{re: 1}
	// I is the imaginary unit (0, 1).
	I = Complex{im: 1}
	// NaN is the complex number (NaN, NaN).
	NaN = Complex{re: math.NaN(), im: math.NaN()}
)

// Complex is an immutable complex number with float64 real and imaginary
// parts. Construction performs no normalization: signed zeros and any
// combination of finite, infinite and NaN components are valid, distinct
// values. The zero value is (0, 0) and ready to use.
type Complex struct {
	re, im float64
}

// New returns the complex number (re, im).
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromPolar returns the complex number with modulus r and argument theta.
// A negative or non-finite modulus yields NaN.
func FromPolar(r, theta float64) Complex {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return NaN
	}
	s, c := math.Sincos(theta)
	return Complex{re: r * c, im: r * s}
}

// Cis returns the point on the unit circle at angle theta, cos(theta) + i sin(theta).
func Cis(theta float64) Complex {
	s, c := math.Sincos(theta)
	return Complex{re: c, im: s}
}

// Real returns the real part.
func (z Complex) Real() float64 {
	return z.re
}

// Imag returns the imaginary part.
func (z Complex) Imag() float64 {
	return z.im
}

// IsInf reports whether either component is an infinity.
// A NaN component paired with an infinite one still counts as infinite.
func (z Complex) IsInf() bool {
	return math.IsInf(z.re, 0) || math.IsInf(z.im, 0)
}

// IsNaN reports whether z is NaN-classified: some component is NaN and
// no component is infinite. Exactly one of IsFinite, IsInf and IsNaN
// holds for every value.
func (z Complex) IsNaN() bool {
	if z.IsInf() {
		return false
	}
	return math.IsNaN(z.re) || math.IsNaN(z.im)
}

// IsFinite reports whether both components are finite.
func (z Complex) IsFinite() bool {
	return !math.IsInf(z.re, 0) && !math.IsNaN(z.re) &&
		!math.IsInf(z.im, 0) && !math.IsNaN(z.im)
}

// IsZero reports whether both components are zero, of either sign.
func (z Complex) IsZero() bool {
	return z.re == 0 && z.im == 0
}

// Eq reports whether both components are bit-level equal.
// Unlike ==, NaN components compare equal to themselves, and -0 is
// distinct from +0.
func (z Complex) Eq(other Complex) bool {
	return math.Float64bits(z.re) == math.Float64bits(other.re) &&
		math.Float64bits(z.im) == math.Float64bits(other.im)
}

// EqualWithinUlps reports whether the components of a and b are each within
// maxUlps units in the last place of one another.
// A negative tolerance is a programming error, and the function panics.
func EqualWithinUlps(a, b Complex, maxUlps int) bool {
	if maxUlps < 0 {
		panic("cplx: negative ulp tolerance")
	}
	return scalar.EqualWithinULP(a.re, b.re, uint(maxUlps)) &&
		scalar.EqualWithinULP(a.im, b.im, uint(maxUlps))
}

// Add returns z+w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z-w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Abs returns the modulus of z. The computation does not overflow for
// large finite components, and an infinite component dominates a NaN one:
// Abs of (inf, NaN) is +Inf.
func (z Complex) Abs() float64 {
	return math.Hypot(z.re, z.im)
}

// Arg returns the argument of z in (-pi, pi].
func (z Complex) Arg() float64 {
	return math.Atan2(z.im, z.re)
}

// Norm returns the squared modulus. Infinite values have an infinite norm
// even when the other component is NaN.
func (z Complex) Norm() float64 {
	if z.IsInf() {
		return math.Inf(1)
	}
	return z.re*z.re + z.im*z.im
}

// Proj returns the projection of z onto the Riemann sphere: z itself,
// unless z is infinite, in which case the result is (+Inf, ±0) with the
// sign of the zero matching the imaginary part.
func (z Complex) Proj() Complex {
	if z.IsInf() {
		return Complex{re: math.Inf(1), im: math.Copysign(0, z.im)}
	}
	return z
}

// Mul returns z*w.
//
// The naive product is computed first. If it comes out as (NaN, NaN) while
// the operands warrant a defined result, the recovery pass of ISO C99
// Annex G is applied: an infinity times a nonzero finite number or an
// infinity is an infinity, and a finite product that overflowed is
// corrected to an infinity. A zero times an infinity stays NaN, as does
// any product with a (NaN, NaN) operand.
func (z Complex) Mul(w Complex) Complex {
	a, b := z.re, z.im
	c, d := w.re, w.im
	ac := a * c
	bd := b * d
	ad := a * d
	bc := b * c
	x := ac - bd
	y := ad + bc
	if math.IsNaN(x) && math.IsNaN(y) {
		recalc := false
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			// z is infinite: box the infinity, kill NaNs in the other operand.
			a = boxInf(a)
			b = boxInf(b)
			c = nanToZero(c)
			d = nanToZero(d)
			recalc = true
		}
		if math.IsInf(c, 0) || math.IsInf(d, 0) {
			c = boxInf(c)
			d = boxInf(d)
			a = nanToZero(a)
			b = nanToZero(b)
			recalc = true
		}
		if !recalc && (math.IsInf(ac, 0) || math.IsInf(bd, 0) ||
			math.IsInf(ad, 0) || math.IsInf(bc, 0)) {
			// A partial product overflowed: recover the infinity.
			a = nanToZero(a)
			b = nanToZero(b)
			c = nanToZero(c)
			d = nanToZero(d)
			recalc = true
		}
		if recalc {
			x = math.Inf(1) * (a*c - b*d)
			y = math.Inf(1) * (a*d + b*c)
		}
	}
	return Complex{re: x, im: y}
}

// Div returns z/w.
//
// The divisor is scaled by its largest binary exponent before the textbook
// formula, then the Annex G recovery pass applies: a nonzero finite or
// infinite number divided by zero is an infinity, an infinity divided by a
// finite number is an infinity, and a finite number divided by an infinity
// is a signed zero. Inf/inf and division by a NaN component stay NaN.
func (z Complex) Div(w Complex) Complex {
	a, b := z.re, z.im
	c, d := w.re, w.im
	ilogbw := 0
	if m := math.Max(math.Abs(c), math.Abs(d)); m != 0 && isFinite(m) {
		// Frexp normalizes subnormals, so the divisor is scaled across
		// the whole exponent range.
		_, e := math.Frexp(m)
		ilogbw = e
		c = math.Ldexp(c, -e)
		d = math.Ldexp(d, -e)
	}
	denom := c*c + d*d
	x := math.Ldexp((a*c+b*d)/denom, -ilogbw)
	y := math.Ldexp((b*c-a*d)/denom, -ilogbw)
	if math.IsNaN(x) && math.IsNaN(y) {
		switch {
		case denom == 0 && (!math.IsNaN(a) || !math.IsNaN(b)):
			x = math.Copysign(math.Inf(1), c) * a
			y = math.Copysign(math.Inf(1), c) * b
		case (math.IsInf(a, 0) || math.IsInf(b, 0)) && isFinite(c) && isFinite(d):
			a = boxInf(a)
			b = boxInf(b)
			x = math.Inf(1) * (a*c + b*d)
			y = math.Inf(1) * (b*c - a*d)
		case (math.IsInf(c, 0) || math.IsInf(d, 0)) && isFinite(a) && isFinite(b):
			c = boxInf(c)
			d = boxInf(d)
			x = 0 * (a*c + b*d)
			y = 0 * (b*c - a*d)
		}
	}
	return Complex{re: x, im: y}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// boxInf maps an infinity to a unit of the same sign and everything else
// to a zero of the same sign.
func boxInf(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Copysign(1, x)
	}
	return math.Copysign(0, x)
}

func nanToZero(x float64) float64 {
	if math.IsNaN(x) {
		return math.Copysign(0, x)
	}
	return x
}
