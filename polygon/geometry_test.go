package polygon_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/lpriccio/octofact/mobius"
	"github.com/lpriccio/octofact/polygon"
)

const eps = 1e-10

// TestRejectsEuclideanAndSpherical: q < 5 does not tile the hyperbolic plane.
func TestRejectsEuclideanAndSpherical(t *testing.T) {
	for _, q := range []int{-1, 0, 3, 4} {
		if _, err := polygon.New(q); !errors.Is(err, polygon.ErrNotHyperbolic) {
			t.Errorf("New(%d): want ErrNotHyperbolic, got %v", q, err)
		}
	}
}

// TestConstantsQ5 pins the {4,5} constants to their closed forms.
func TestConstantsQ5(t *testing.T) {
	g, err := polygon.New(5)
	if err != nil {
		t.Fatalf("New(5): %v", err)
	}
	// cosh(χ) = cot(π/4)·cot(π/5), circumradius = tanh(χ/2) ≈ 0.39798.
	if got := g.CircumRadius(); math.Abs(got-0.3980) > 1e-3 {
		t.Errorf("circumradius %g; want ≈0.3980", got)
	}
	// D from cosh(D) = 2·cosh²(ψ)−1 ≈ 1.061275.
	if got := g.StepDistance(); math.Abs(got-1.061275) > 1e-5 {
		t.Errorf("step distance %g; want ≈1.061275", got)
	}
	// Inradius is the half-way point of a step: tanh(D/4).
	if got := g.InRadius(); !close(got, math.Tanh(g.StepDistance()/4)) {
		t.Errorf("inradius %g inconsistent with step distance", got)
	}
}

// TestConstantsQ6 pins the {4,6} step distance.
func TestConstantsQ6(t *testing.T) {
	g, err := polygon.New(6)
	if err != nil {
		t.Fatalf("New(6): %v", err)
	}
	if got := g.StepDistance(); math.Abs(got-1.316958) > 1e-5 {
		t.Errorf("step distance %g; want ≈1.316958", got)
	}
	if got := g.CircumRadius(); math.Abs(got-0.517638) > 1e-5 {
		t.Errorf("circumradius %g; want ≈0.517638", got)
	}
}

func close(a, b float64) bool { return math.Abs(a-b) < eps }

// TestStepsMoveCorrectDistance: every step carries the center exactly D.
func TestStepsMoveCorrectDistance(t *testing.T) {
	for _, q := range []int{5, 6, 7, 9} {
		g, err := polygon.New(q)
		if err != nil {
			t.Fatalf("New(%d): %v", q, err)
		}
		for d := 0; d < polygon.Sides; d++ {
			c := g.Step(d).Apply(0)
			if got := mobius.Distance(0, c); !close(got, g.StepDistance()) {
				t.Errorf("q=%d step %d moved %g; want %g", q, d, got, g.StepDistance())
			}
			if cmplx.Abs(c) >= 1 {
				t.Errorf("q=%d step %d center outside disk", q, d)
			}
		}
	}
}

// TestStepCentersDistinct: the four neighbor centers never coincide.
func TestStepCentersDistinct(t *testing.T) {
	g, _ := polygon.New(5)
	var centers [polygon.Sides]complex128
	for d := range centers {
		centers[d] = g.Step(d).Apply(0)
	}
	for i := 0; i < polygon.Sides; i++ {
		for j := i + 1; j < polygon.Sides; j++ {
			if cmplx.Abs(centers[i]-centers[j]) < 0.01 {
				t.Errorf("neighbor centers %d and %d too close", i, j)
			}
		}
	}
}

// TestBackTable: crossing an edge and crossing back is the identity — the
// direct test of both the constants and the composition rule.
func TestBackTable(t *testing.T) {
	for _, q := range []int{5, 6, 8, 11} {
		g, err := polygon.New(q)
		if err != nil {
			t.Fatalf("New(%d): %v", q, err)
		}
		for d := 0; d < polygon.Sides; d++ {
			back := g.Back(d)
			if back == d {
				t.Errorf("q=%d: Back(%d) = %d, an edge cannot invert itself", q, d, back)
			}
			if g.Back(back) != d {
				t.Errorf("q=%d: Back is not an involution at %d", q, d)
			}
			if !g.Step(d).Compose(g.Step(back)).IsIdentity(1e-9) {
				t.Errorf("q=%d: Step(%d)∘Step(Back(%d)) is not identity", q, d, d)
			}
		}
	}
}

// TestVertices: corners sit on the circumcircle, evenly spaced, between
// the edge directions.
func TestVertices(t *testing.T) {
	g, _ := polygon.New(5)
	r := g.CircumRadius()
	for k := 0; k < polygon.Sides; k++ {
		v := g.VertexPoint(k)
		if got := cmplx.Abs(v); !close(got, r) {
			t.Errorf("vertex %d radius %g; want %g", k, got, r)
		}
	}
	// Equal edge lengths.
	first := cmplx.Abs(g.VertexPoint(0) - g.VertexPoint(1))
	for k := 0; k < polygon.Sides; k++ {
		d := cmplx.Abs(g.VertexPoint(k) - g.VertexPoint((k+1)%polygon.Sides))
		if !close(d, first) {
			t.Errorf("edge %d length %g != %g", k, d, first)
		}
	}
	// Euclidean view matches the disk points.
	coords := g.Vertices()
	for k, c := range coords {
		if !close(c.X, real(g.VertexPoint(k))) || !close(c.Y, imag(g.VertexPoint(k))) {
			t.Errorf("Vertices()[%d] = %+v disagrees with VertexPoint", k, c)
		}
	}
}

func TestDiskToBowl(t *testing.T) {
	// Origin maps to the bowl bottom.
	if b := polygon.DiskToBowl(0); b != [3]float64{0, 0, 0} {
		t.Errorf("origin → %v; want bowl bottom", b)
	}
	// Height grows with distance but stays bounded below 0.4.
	prev := -1.0
	for _, r := range []float64{0.1, 0.3, 0.5, 0.8, 0.95} {
		b := polygon.DiskToBowl(complex(r, 0))
		if b[1] <= prev {
			t.Errorf("bowl height not increasing at r=%g", r)
		}
		if b[1] >= 0.4 {
			t.Errorf("bowl height %g ≥ 0.4 at r=%g", b[1], r)
		}
		if b[0] != r || b[2] != 0 {
			t.Errorf("X/Z must be the disk coordinates, got %v", b)
		}
		prev = b[1]
	}
}
