package engine

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestDensify(t *testing.T) {
	ls := orb.LineString{{0, 0}, {10, 0}}
	dense := densify(ls, 3)

	if len(dense) < 4 {
		t.Fatalf("densify produced %d points, want at least 4", len(dense))
	}
	for i := 1; i < len(dense); i++ {
		d := distance(dense[i-1], dense[i])
		if d > 3+1e-9 {
			t.Errorf("segment %d has length %v, want <= 3", i, d)
		}
	}
	if dense[0] != ls[0] || dense[len(dense)-1] != ls[len(ls)-1] {
		t.Error("densify must preserve the original endpoints")
	}
}

func TestLineStringLength(t *testing.T) {
	ls := orb.LineString{{0, 0}, {3, 0}, {3, 4}}
	if got := lineStringLength(ls); !approxEqual(got, 7, 1e-9) {
		t.Errorf("lineStringLength() = %v, want 7", got)
	}
}

func TestPointAtDistance(t *testing.T) {
	ls := orb.LineString{{0, 0}, {10, 0}}

	distanceTests := []struct {
		d    float64
		want orb.Point
	}{
		{0, orb.Point{0, 0}},
		{5, orb.Point{5, 0}},
		{10, orb.Point{10, 0}},
		{100, orb.Point{10, 0}},
	}
	for _, tt := range distanceTests {
		if got := pointAtDistance(ls, tt.d); got != tt.want {
			t.Errorf("pointAtDistance(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestSubstring(t *testing.T) {
	ls := orb.LineString{{0, 0}, {10, 0}}
	sub := substring(ls, 2, 8)

	if len(sub) < 2 {
		t.Fatalf("substring produced %d points, want at least 2", len(sub))
	}
	if sub[0] != (orb.Point{2, 0}) || sub[len(sub)-1] != (orb.Point{8, 0}) {
		t.Errorf("substring(2,8) = %v, want endpoints (2,0) and (8,0)", sub)
	}
}

func TestDifferenceLineStringCutsAtMask(t *testing.T) {
	// above covers x > 5; a line climbing into it from the left keeps
	// its seed-side run and is cut at the boundary.
	above := orb.MultiPolygon{{{
		{5, -10}, {20, -10}, {20, 10}, {5, 10}, {5, -10},
	}}}
	ls := orb.LineString{{0, 0}, {10, 0}}

	clipped := differenceLineString(ls, above)
	if len(clipped) < 2 {
		t.Fatalf("expected a clipped line, got %v", clipped)
	}
	if clipped[0] != (orb.Point{0, 0}) {
		t.Errorf("clipped line should start at the original seed point, got %v", clipped[0])
	}
	if clipped[len(clipped)-1][0] > 5.01 {
		t.Errorf("clipped line should not extend past x=5, got %v", clipped[len(clipped)-1])
	}
}

func TestDifferenceLineStringUntouchedOutsideMask(t *testing.T) {
	above := orb.MultiPolygon{{{
		{50, -10}, {60, -10}, {60, 10}, {50, 10}, {50, -10},
	}}}
	ls := orb.LineString{{0, 0}, {10, 0}}

	clipped := differenceLineString(ls, above)
	if len(clipped) != len(ls) {
		t.Fatalf("expected the line untouched away from the mask, got %v", clipped)
	}
}

func TestDifferenceLineStringEmptyWhenSeedInside(t *testing.T) {
	above := orb.MultiPolygon{{{
		{-10, -10}, {15, -10}, {15, 10}, {-10, 10}, {-10, -10},
	}}}
	ls := orb.LineString{{0, 0}, {10, 0}}

	if clipped := differenceLineString(ls, above); clipped != nil {
		t.Errorf("expected nil when the seed already lies inside above, got %v", clipped)
	}
}

func TestIntersectRingWithHachure(t *testing.T) {
	// A vertical hachure through x=0 crosses the bottom and top edges of
	// this square ring, at (0,0) and (0,5).
	ring := orb.Ring{{-5, 0}, {5, 0}, {5, 5}, {-5, 5}, {-5, 0}}
	h := &Hachure{Geometry: orb.LineString{{0, -5}, {0, 10}}}

	cuts := intersectRingWithHachure(ring, h)
	if len(cuts) != 2 {
		t.Fatalf("expected 2 intersections, got %d: %v", len(cuts), cuts)
	}

	var sawBottom, sawTop bool
	for _, c := range cuts {
		switch c.point {
		case orb.Point{0, 0}:
			sawBottom = true
		case orb.Point{0, 5}:
			sawTop = true
		}
	}
	if !sawBottom || !sawTop {
		t.Errorf("expected intersections at (0,0) and (0,5), got %v", cuts)
	}
}
