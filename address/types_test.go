package address_test

import (
	"testing"

	"github.com/lpriccio/octofact/address"
)

// TestAddressString covers the three display shapes.
func TestAddressString(t *testing.T) {
	cases := []struct {
		in   address.Address
		want string
	}{
		{nil, "O"},
		{address.Address{}, "O"},
		{address.Address{2}, "2"},
		{address.Address{0, 1, 2, 3, 0}, "01230"},
		{address.Address{3, 0, 1, 2, 3, 0, 1}, "..12301"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("%v.String() = %q; want %q", []address.Direction(c.in), got, c.want)
		}
	}
}

// TestKeyRoundTrip: FromKey inverts Key.
func TestKeyRoundTrip(t *testing.T) {
	a := address.Address{0, 3, 1, 2, 2}
	if got := address.FromKey(a.Key()); !got.Equal(a) {
		t.Errorf("FromKey(Key) = %v; want %v", got, a)
	}
	if !address.FromKey("").Equal(address.Address{}) {
		t.Error("empty key must round-trip to the origin")
	}
}

// TestEqualAndClone: Clone is independent of the original.
func TestEqualAndClone(t *testing.T) {
	a := address.Address{1, 2, 3}
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone not equal")
	}
	b[0] = 0
	if a.Equal(b) {
		t.Error("mutating a clone leaked into the original")
	}
	if a.Equal(address.Address{1, 2}) {
		t.Error("length mismatch must not compare equal")
	}
	if a.Depth() != 3 {
		t.Errorf("Depth = %d; want 3", a.Depth())
	}
}
