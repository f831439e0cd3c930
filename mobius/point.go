package mobius

import (
	"math"
	"math/cmplx"
)

// MaxRadius is the safe interior radius points are clamped to. Finite-depth
// cell centers never reach it; only floating-point edge effects can push a
// point this far out.
const MaxRadius = 0.999999

// Distance returns the hyperbolic distance between two points of the
// Poincaré disk:
//
//	d(z1, z2) = 2·atanh(|z1 − z2| / |1 − conj(z1)·z2|)
//
// The ratio is clamped just inside 1 so that boundary-grazing inputs
// produce a large finite distance rather than ±Inf.
func Distance(z1, z2 complex128) float64 {
	num := cmplx.Abs(z1 - z2)
	den := cmplx.Abs(1 - cmplx.Conj(z1)*z2)
	if den < 1e-15 {
		return math.MaxFloat64
	}
	ratio := num / den
	if ratio > MaxRadius {
		ratio = MaxRadius
	}
	return 2 * math.Atanh(ratio)
}

// ClampToDisk returns z unchanged while |z| < MaxRadius, otherwise z
// rescaled onto that radius. Transforms are undefined on and beyond the
// unit circle, so every point taken from an external source passes
// through here before being transformed.
func ClampToDisk(z complex128) complex128 {
	r := cmplx.Abs(z)
	if r < MaxRadius {
		return z
	}
	return z * complex(MaxRadius/r, 0)
}
