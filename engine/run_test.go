package engine

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestRunUniformSlopeTwoContours(t *testing.T) {
	size := 20
	vals := make([]float64, size*size)
	for i := range vals {
		vals[i] = 30
	}
	slope := NewGrid(0, float64(size), 1, 1, size, size, vals)
	aspectVals := make([]float64, size*size)
	for i := range aspectVals {
		// Terrain rises northward here, so every cell faces south and
		// the grower walks north, into the above-masks.
		aspectVals[i] = 180
	}
	aspectGrid := NewGrid(0, float64(size), 1, 1, size, size, aspectVals)

	rasters := Rasters{Slope: slope, Aspect: aspectGrid}
	extent := slope.Bound()

	cfg := Config{MinSpacing: 2, MaxSpacing: 4, SlopeMin: 5, SlopeMax: 40}

	bands := []FilledBand{
		{Elev: 0, Polygon: orb.Polygon{boxRingT(0, 0, 20, 5)}},
		{Elev: 1, Polygon: orb.Polygon{boxRingT(0, 5, 20, 10)}},
	}

	ctx := NewContext(false)
	contours := PrepareContours(ctx, bands, nil, extent)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}

	res := Run(ctx, cfg, rasters, contours)
	if len(res.Hachures) == 0 {
		t.Fatal("expected hachures on a uniform slope across two contours")
	}
	for _, h := range res.Hachures {
		if len(h.Geometry) < 2 {
			t.Errorf("retained hachure too short: %v", h.Geometry)
		}
	}
}

func TestRunFlatYieldsWarning(t *testing.T) {
	size := 10
	slope := NewGrid(0, float64(size), 1, 1, size, size, make([]float64, size*size))
	aspect := NewGrid(0, float64(size), 1, 1, size, size, make([]float64, size*size))
	rasters := Rasters{Slope: slope, Aspect: aspect}
	extent := slope.Bound()

	cfg := Config{MinSpacing: 2, MaxSpacing: 4, SlopeMin: 5, SlopeMax: 40}
	bands := []FilledBand{{Elev: 0, Polygon: orb.Polygon{boxRingT(0, 0, 10, 10)}}}

	ctx := NewContext(true)
	contours := PrepareContours(ctx, bands, nil, extent)
	res := Run(ctx, cfg, rasters, contours)

	if len(res.Hachures) != 0 || res.Warning != WarnNoHachuresProduced {
		t.Errorf("got %d hachures, warning %v; want 0 hachures and WarnNoHachuresProduced", len(res.Hachures), res.Warning)
	}
}
