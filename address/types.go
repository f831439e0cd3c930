package address

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lpriccio/octofact/polygon"
)

// Sentinel errors for address operations.
var (
	// ErrDirectionRange indicates a raw path letter outside [0, Sides).
	ErrDirectionRange = errors.New("address: direction outside [0,4)")

	// ErrRelatorDerivation indicates the vertex-relator walk failed to
	// close — broken geometry constants, not bad input.
	ErrRelatorDerivation = errors.New("address: vertex relator derivation failed")
)

// Direction identifies one edge of a cell, in [0, polygon.Sides). It
// doubles as "which edge was crossed" and, via polygon.Back, "which edge
// of the entered cell leads back".
type Direction uint8

// Address is the canonical identity of one cell: the reduced sequence of
// directions walking from the origin cell. The empty Address is the
// origin. Addresses produced by a Reducer compare structurally equal
// exactly when they designate the same cell.
type Address []Direction

// Key returns the Address as a compact string usable as a map key.
func (a Address) Key() string { return string(directionBytes(a)) }

// FromKey reconstructs an Address from a Key value.
func FromKey(k string) Address {
	a := make(Address, len(k))
	for i := 0; i < len(k); i++ {
		a[i] = Direction(k[i])
	}
	return a
}

// Depth returns the BFS depth of the cell: the reduced walk length.
func (a Address) Depth() int { return len(a) }

// Equal reports structural equality.
func (a Address) Equal(b Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (a Address) Clone() Address {
	out := make(Address, len(a))
	copy(out, a)
	return out
}

// String formats the Address for display: "O" for the origin, the digit
// run for short addresses, and "..NNNNN" (last five steps) for long ones.
func (a Address) String() string {
	if len(a) == 0 {
		return "O"
	}
	var sb strings.Builder
	tail := a
	if len(a) > 5 {
		sb.WriteString("..")
		tail = a[len(a)-5:]
	}
	for _, d := range tail {
		sb.WriteString(strconv.Itoa(int(d)))
	}
	return sb.String()
}

// directionBytes reinterprets a direction slice as raw bytes.
func directionBytes(a []Direction) []byte {
	b := make([]byte, len(a))
	for i, d := range a {
		b[i] = byte(d)
	}
	return b
}

// validate rejects letters outside the alphabet.
func validate(path []Direction) error {
	for _, d := range path {
		if int(d) >= polygon.Sides {
			return ErrDirectionRange
		}
	}
	return nil
}
