package mobius

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Mobius is a disk automorphism in SU(1,1) form:
//
//	T(z) = (A·z + B) / (conj(B)·z + conj(A))
//
// Invariant: |A|² − |B|² = 1. The zero value is NOT a valid transform;
// use Identity, Translation, or derive new values via Compose/Inverse.
type Mobius struct {
	A, B complex128
}

// Identity returns the identity transform T(z) = z.
func Identity() Mobius {
	return Mobius{A: 1, B: 0}
}

// Translation returns the pure hyperbolic translation that moves the
// origin a hyperbolic distance d along direction theta (radians):
//
//	A = cosh(d/2),  B = sinh(d/2)·e^{iθ}
//
// Its inverse is the translation by d along theta+π.
func Translation(d, theta float64) Mobius {
	return Mobius{
		A: complex(math.Cosh(d/2), 0),
		B: cmplx.Rect(math.Sinh(d/2), theta),
	}
}

// Rotation returns the rotation about the disk center by theta radians:
// T(z) = e^{iθ}·z, encoded as A = e^{iθ/2}, B = 0.
func Rotation(theta float64) Mobius {
	return Mobius{A: cmplx.Rect(1, theta/2), B: 0}
}

// Apply maps a point of the open unit disk through the transform.
func (m Mobius) Apply(z complex128) complex128 {
	num := m.A*z + m.B
	den := cmplx.Conj(m.B)*z + cmplx.Conj(m.A)
	return num / den
}

// Compose returns the transform equivalent to applying n first, then m:
// m.Compose(n).Apply(z) == m.Apply(n.Apply(z)). This is the SU(1,1)
// matrix product m·n. The composition order is fixed and relied upon by
// the address-reduction layer; do not swap it.
//
// The result is renormalized, so chains of compositions stay on the
// |A|²−|B|²=1 constraint surface.
func (m Mobius) Compose(n Mobius) Mobius {
	return Mobius{
		A: m.A*n.A + m.B*cmplx.Conj(n.B),
		B: m.A*n.B + m.B*cmplx.Conj(n.A),
	}.Normalized()
}

// Inverse returns the exact algebraic inverse {conj(A), −B}.
func (m Mobius) Inverse() Mobius {
	return Mobius{A: cmplx.Conj(m.A), B: -m.B}
}

// Det returns |A|² − |B|², which is 1 for a normalized transform.
func (m Mobius) Det() float64 {
	ra, ia := real(m.A), imag(m.A)
	rb, ib := real(m.B), imag(m.B)
	return ra*ra + ia*ia - rb*rb - ib*ib
}

// Normalized re-projects the transform onto the constraint surface by
// uniform rescaling of (A, B).
//
// A non-positive determinant means the value is not a disk automorphism
// at all — numerical collapse, impossible to reach through this package's
// operations. That is a programming-invariant violation, so Normalized
// panics with the determinant instead of masking it.
func (m Mobius) Normalized() Mobius {
	det := m.Det()
	if det <= 0 {
		panic(fmt.Sprintf("mobius: determinant collapsed to %g (|A|²−|B|² must stay positive)", det))
	}
	s := complex(1/math.Sqrt(det), 0)
	return Mobius{A: m.A * s, B: m.B * s}
}

// ApproxEq reports whether m and n represent the same automorphism within
// tolerance eps (inclusive, so exact matches pass at eps 0), accounting
// for the ±(A,B) sign ambiguity of SU(1,1).
func (m Mobius) ApproxEq(n Mobius, eps float64) bool {
	plus := cmplx.Abs(m.A-n.A) + cmplx.Abs(m.B-n.B)
	minus := cmplx.Abs(m.A+n.A) + cmplx.Abs(m.B+n.B)
	return plus <= eps || minus <= eps
}

// IsIdentity reports whether m is the identity map within eps.
func (m Mobius) IsIdentity(eps float64) bool {
	return m.ApproxEq(Identity(), eps)
}
