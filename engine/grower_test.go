package engine

import (
	"testing"

	"github.com/paulmach/orb"
)

func uniformRasters(slopeVal, aspectVal float64, size int) Rasters {
	mk := func(v float64) Grid {
		vals := make([]float64, size*size)
		for i := range vals {
			vals[i] = v
		}
		return NewGrid(0, float64(size), 1, 1, size, size, vals)
	}
	return Rasters{Slope: mk(slopeVal), Aspect: mk(aspectVal)}
}

func TestGrowHachureTerminatesOnFlat(t *testing.T) {
	r := uniformRasters(0, 0, 20)

	h := growHachure(r, orb.Point{10, 10}, 1, 10, 0, 0)
	if h != nil {
		t.Errorf("expected no hachure on flat ground, got one of length %v", h.Length())
	}
}

func TestGrowHachureTerminatesWithinFuse(t *testing.T) {
	// 360 is mathematically north, same as 0, but avoids colliding with
	// the out-of-bounds sentinel value.
	r := uniformRasters(30, 360, 400)

	h := growHachure(r, orb.Point{200, 200}, 1, 10, 0, 0)
	if h == nil {
		t.Fatal("expected a hachure to grow on a uniform slope")
	}
	if len(h.Geometry) > maxGrowSteps+1 {
		t.Errorf("grew %d points, want at most %d", len(h.Geometry), maxGrowSteps+1)
	}
	if h.Length() > float64(maxGrowSteps)*1+1e-6 {
		t.Errorf("length %v exceeds maxGrowSteps*step", h.Length())
	}
}

func TestGrowHachureStopsAtExtent(t *testing.T) {
	r := uniformRasters(30, 360, 10)

	// Aspect 360 (== 0, north) makes the walk head south, so a seed
	// near the south edge should step out of bounds almost immediately.
	h := growHachure(r, orb.Point{5, 0.5}, 1, 10, 0, 0)
	if h != nil && len(h.Geometry) > 3 {
		t.Errorf("expected growth to stop quickly at the grid edge, got %d points", len(h.Geometry))
	}
}

func TestZigZagGuard(t *testing.T) {
	r := uniformRasters(30, 360, 400)
	g := newGrowState(r, orb.Point{200, 200}, 1, 10)

	// Force an artificial oscillation: the last point sits back on the
	// point two steps before it, within the zig-zag distance.
	g.pts = orb.LineString{{200, 200}, {200, 199}, {200, 198.4}, {200, 199}}
	before := len(g.pts)
	if g.next() {
		t.Fatal("expected zig-zag guard to stop the walk")
	}
	if len(g.pts) != before-2 {
		t.Errorf("expected the last two points dropped, got %d points (had %d)", len(g.pts), before)
	}
}

func TestAspectStepWalksAgainstAspect(t *testing.T) {
	// A north-facing cell (aspect 0) must step south, up the slope;
	// a south-facing cell (aspect 180) must step north.
	south := aspectStep(orb.Point{0, 0}, 0, 1)
	if south[1] >= -0.999 {
		t.Errorf("expected a southward step for aspect 0, got %v", south)
	}
	north := aspectStep(orb.Point{0, 0}, 180, 1)
	if north[1] <= 0.999 {
		t.Errorf("expected a northward step for aspect 180, got %v", north)
	}
}
