// Copyright 2026 Andrei Vekin. All rights reserved.

package cplx

import "math"

// A component beyond this magnitude cannot be squared without overflow.
const squareOverflow = 0x1p508

// mulI returns i*z as an exact component rotation.
func (z Complex) mulI() Complex {
	return Complex{re: -z.im, im: z.re}
}

// mulNegI returns -i*z as an exact component rotation.
func (z Complex) mulNegI() Complex {
	return Complex{re: z.im, im: -z.re}
}

// Sin returns the sine of z, computed as -i*sinh(i*z).
// The rotations are exact component swaps, so the identity holds
// bit-for-bit against an explicit multiplication by i.
func (z Complex) Sin() Complex {
	return z.mulI().Sinh().mulNegI()
}

// Cos returns the cosine of z, computed as cosh(i*z).
func (z Complex) Cos() Complex {
	return z.mulI().Cosh()
}

// Tan returns the tangent of z, computed as -i*tanh(i*z).
func (z Complex) Tan() Complex {
	return z.mulI().Tanh().mulNegI()
}

// Asin returns the arcsine of z, computed as -i*asinh(i*z).
func (z Complex) Asin() Complex {
	return z.mulI().Asinh().mulNegI()
}

// Atan returns the arctangent of z, computed as -i*atanh(i*z).
func (z Complex) Atan() Complex {
	return z.mulI().Atanh().mulNegI()
}

// Sinh returns the hyperbolic sine of z.
func (z Complex) Sinh() Complex {
	x, y := z.re, z.im
	switch {
	case y == 0:
		return Complex{re: math.Sinh(x), im: y}
	case math.IsInf(x, 0):
		if math.IsInf(y, 0) || math.IsNaN(y) {
			return Complex{re: x, im: math.NaN()}
		}
		s, c := math.Sincos(y)
		return Complex{re: x * c, im: math.Abs(x) * s}
	case math.IsNaN(x):
		return NaN
	case math.IsInf(y, 0) || math.IsNaN(y):
		if x == 0 {
			return Complex{re: x, im: math.NaN()}
		}
		return NaN
	}
	s, c := math.Sincos(y)
	return Complex{re: math.Sinh(x) * c, im: math.Cosh(x) * s}
}

// Cosh returns the hyperbolic cosine of z.
func (z Complex) Cosh() Complex {
	x, y := z.re, z.im
	switch {
	case math.IsInf(x, 0):
		switch {
		case y == 0:
			// The imaginary zero keeps the sign of x*y.
			im := math.Copysign(0, y)
			if x < 0 {
				im = -im
			}
			return Complex{re: math.Inf(1), im: im}
		case math.IsInf(y, 0) || math.IsNaN(y):
			return Complex{re: math.Inf(1), im: math.NaN()}
		}
		s, c := math.Sincos(y)
		return Complex{re: math.Abs(x) * c, im: x * s}
	case y == 0:
		return Complex{re: math.Cosh(x), im: math.Copysign(0, x) * y}
	case x == 0 && (math.IsInf(y, 0) || math.IsNaN(y)):
		return Complex{re: math.NaN(), im: x}
	case math.IsNaN(x) || math.IsNaN(y) || math.IsInf(y, 0):
		return NaN
	}
	s, c := math.Sincos(y)
	return Complex{re: math.Cosh(x) * c, im: math.Sinh(x) * s}
}

// Tanh returns the hyperbolic tangent of z.
func (z Complex) Tanh() Complex {
	x, y := z.re, z.im
	switch {
	case math.IsInf(x, 0):
		s := 0.0
		if !math.IsInf(y, 0) && !math.IsNaN(y) {
			s = math.Sin(2 * y)
		}
		return Complex{re: math.Copysign(1, x), im: math.Copysign(0, s)}
	case y == 0:
		return Complex{re: math.Tanh(x), im: y}
	case math.IsNaN(x) || math.IsNaN(y) || math.IsInf(y, 0):
		return NaN
	}
	if math.Abs(x) > 22 {
		// cosh(2x) would overflow; tanh has saturated at ±1 long before.
		return Complex{re: math.Copysign(1, x), im: math.Copysign(0, math.Sin(2*y))}
	}
	d := math.Cosh(2*x) + math.Cos(2*y)
	if d == 0 {
		return Complex{re: math.Inf(1), im: math.Inf(1)}
	}
	return Complex{re: math.Sinh(2*x) / d, im: math.Sin(2*y) / d}
}

// Asinh returns the inverse hyperbolic sine of z, with branch cuts outside
// [-i, i] on the imaginary axis.
func (z Complex) Asinh() Complex {
	x, y := z.re, z.im
	switch {
	case math.IsInf(x, 0):
		switch {
		case math.IsNaN(y):
			return Complex{re: x, im: y}
		case math.IsInf(y, 0):
			return Complex{re: x, im: math.Copysign(math.Pi/4, y)}
		}
		return Complex{re: x, im: math.Copysign(0, y)}
	case math.IsNaN(x):
		switch {
		case y == 0:
			return Complex{re: x, im: y}
		case math.IsInf(y, 0):
			return Complex{re: math.Inf(1), im: x}
		}
		return NaN
	case math.IsInf(y, 0):
		return Complex{re: math.Copysign(math.Inf(1), x), im: math.Copysign(math.Pi/2, y)}
	case math.IsNaN(y):
		return NaN
	}
	if math.Signbit(x) {
		// asinh is odd; evaluating on the positive real half avoids the
		// cancellation in z + sqrt(z*z+1) when Re(z) is large negative.
		return z.Neg().Asinh().Neg()
	}
	if m := math.Max(x, math.Abs(y)); m > squareOverflow {
		// z + sqrt(z*z+1) overflows; at this magnitude asinh(z) is
		// log(2z) to working precision.
		return Complex{
			re: math.Ln2 + math.Log(m) + math.Log(math.Hypot(x/m, y/m)),
			im: math.Atan2(y, x),
		}
	}
	return z.Add(z.Mul(z).Add(One).Sqrt()).Log()
}

// Atanh returns the inverse hyperbolic tangent of z, with branch cuts
// outside [-1, 1] on the real axis.
func (z Complex) Atanh() Complex {
	x, y := z.re, z.im
	switch {
	case math.IsInf(y, 0):
		return Complex{re: math.Copysign(0, x), im: math.Copysign(math.Pi/2, y)}
	case math.IsInf(x, 0):
		if math.IsNaN(y) {
			return Complex{re: math.Copysign(0, x), im: y}
		}
		return Complex{re: math.Copysign(0, x), im: math.Copysign(math.Pi/2, y)}
	case math.IsNaN(x):
		return NaN
	case math.IsNaN(y):
		if x == 0 {
			return Complex{re: x, im: y}
		}
		return NaN
	case math.Abs(x) == 1 && y == 0:
		return Complex{re: math.Copysign(math.Inf(1), x), im: y}
	}
	if math.Signbit(x) {
		// atanh is odd; keep that exact for signed zeros.
		return z.Neg().Atanh().Neg()
	}
	if m := math.Max(x, math.Abs(y)); m > squareOverflow {
		// (1+z)/(1-z) collapses to -1 at this magnitude; only the 1/z
		// term survives next to the half-turn of the log.
		h := math.Hypot(x/m, y/m)
		return Complex{re: x / m / h / h / m, im: math.Copysign(math.Pi/2, y)}
	}
	w := One.Add(z).Div(One.Sub(z)).Log()
	return Complex{re: 0.5 * w.re, im: 0.5 * w.im}
}

// Acos returns the arccosine of z, with real part in [0, pi].
func (z Complex) Acos() Complex {
	x, y := z.re, z.im
	switch {
	case math.IsInf(x, 0):
		switch {
		case math.IsNaN(y):
			return Complex{re: y, im: x}
		case math.IsInf(y, 0):
			re := math.Pi / 4
			if x < 0 {
				re = 3 * math.Pi / 4
			}
			return Complex{re: re, im: -y}
		}
		if x < 0 {
			return Complex{re: math.Pi, im: -math.Copysign(math.Inf(1), y)}
		}
		return Complex{re: 0, im: -math.Copysign(math.Inf(1), y)}
	case math.IsNaN(x):
		if math.IsInf(y, 0) {
			return Complex{re: x, im: -y}
		}
		return NaN
	case math.IsInf(y, 0):
		return Complex{re: math.Pi / 2, im: -y}
	case math.IsNaN(y):
		if x == 0 {
			return Complex{re: math.Pi / 2, im: y}
		}
		return NaN
	case y == 0:
		// Real axis, including both sides of the branch cuts beyond ±1.
		// The sign of y selects the side of the cut.
		switch {
		case x > 1:
			return Complex{re: 0, im: math.Copysign(math.Acosh(x), -y)}
		case x < -1:
			return Complex{re: math.Pi, im: math.Copysign(math.Acosh(-x), -y)}
		}
		return Complex{re: math.Acos(x), im: -y}
	}
	if m := math.Max(math.Abs(x), math.Abs(y)); m > squareOverflow {
		// 1 - z*z overflows; acos(z) is -i*log(2z) above the real axis
		// and the conjugate below it.
		l := math.Ln2 + math.Log(m) + math.Log(math.Hypot(x/m, y/m))
		return Complex{re: math.Abs(math.Atan2(y, x)), im: -math.Copysign(l, y)}
	}
	// -i*log(z + i*sqrt(1 - z*z))
	return z.Add(One.Sub(z.Mul(z)).Sqrt().mulI()).Log().mulNegI()
}

// Acosh returns the inverse hyperbolic cosine of z, computed by rotating
// Acos so that the real part is nonnegative and the imaginary part keeps
// the sign of Im(z). A negative-signed imaginary zero therefore lands on
// the lower side of the branch cut: Acosh of (-Inf, -0) is (+Inf, -pi),
// not (+Inf, pi).
func (z Complex) Acosh() Complex {
	if z.IsNaN() {
		return NaN
	}
	w := z.Acos()
	return Complex{re: math.Abs(w.im), im: math.Copysign(w.re, z.im)}
}
