package polygon

import (
	"math"
	"math/cmplx"

	"github.com/lpriccio/octofact/mobius"
)

// CellRotation reports whether m is a rotation about the disk center by a
// multiple of the cell's own symmetry angle 2π/Sides, returning the
// exponent k in [0, Sides) with m ≈ R^k.
//
// Two placement transforms describe the same cell exactly when they
// differ by such a rotation: the square is carried onto itself, only the
// frame turns. The address reducer leans on this to detect closed walks
// (a vertex loop closes on the cell while the frame picks up a quarter
// turn of holonomy).
func CellRotation(m mobius.Mobius, eps float64) (int, bool) {
	if cmplx.Abs(m.B) > eps {
		return 0, false
	}
	// A rotation by angle φ has A = ±e^{iφ/2}; squaring removes the
	// SU(1,1) sign ambiguity, leaving a2 = e^{iφ}.
	a2 := m.A * m.A
	sector := 2 * math.Pi / Sides
	k := int(math.Round(cmplx.Phase(a2)/sector)) % Sides
	if k < 0 {
		k += Sides
	}
	if !m.ApproxEq(mobius.Rotation(float64(k)*sector), eps) {
		return 0, false
	}
	return k, true
}

// SameCell reports whether two placement transforms describe the same
// cell, returning the frame shift k with t2 ≈ t1∘R^k.
func SameCell(t1, t2 mobius.Mobius, eps float64) (int, bool) {
	return CellRotation(t1.Inverse().Compose(t2), eps)
}
