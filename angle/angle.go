// Copyright 2026 Andrei Vekin. All rights reserved.

// package angle provides reduction of radian angles into canonical
// intervals of length 2*pi around a caller-chosen center.
package angle

import "math"

// Commonly used multiples of pi, in radians.
const (
	Pi             = math.Pi
	MinusPi        = -math.Pi
	TwoPi          = 2 * math.Pi
	MinusTwoPi     = -2 * math.Pi
	PiOverTwo      = math.Pi / 2
	MinusPiOverTwo = -math.Pi / 2
	ThreePiOverTwo = 3 * math.Pi / 2
)

// Normalize returns the angle congruent to a modulo 2*pi that lies in
// [center-pi, center+pi]. The two interval bounds name the same angle;
// the upper one maps to the lower one, so Normalize(center+pi, center)
// is center-pi. A NaN or infinite input propagates NaN.
func Normalize(a, center float64) float64 {
	return a - TwoPi*math.Floor((a+Pi-center)/TwoPi)
}

// NormalizeBetweenMinusPiAndPi reduces a into [-pi, pi); pi itself maps to -pi.
func NormalizeBetweenMinusPiAndPi(a float64) float64 {
	return Normalize(a, 0)
}

// NormalizeBetweenZeroAndTwoPi reduces a into [0, 2*pi); 2*pi itself maps to 0.
func NormalizeBetweenZeroAndTwoPi(a float64) float64 {
	return Normalize(a, Pi)
}
