// Package demo builds synthetic raster/contour inputs for the six
// literal end-to-end scenarios used to exercise the spacing engine:
// a flat plate, a uniform slope, a conical peak, a step edge, a linear
// ridge, and a re-entrant bowl.
package demo

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/arl/go-hachure/engine"
)

// Scenario bundles a named synthetic input with the configuration it is
// meant to be run under.
type Scenario struct {
	Name    string
	Rasters engine.Rasters
	Bands   []engine.FilledBand
	Config  engine.Config
}

// All returns every bundled scenario.
func All() []Scenario {
	return []Scenario{
		FlatPlate(),
		UniformSlope(),
		ConePeak(),
		StepEdge(),
		Ridge(),
		Bowl(),
	}
}

func baseConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.SlopeMin = 5
	cfg.SlopeMax = 40
	cfg.MinSpacing = 2
	cfg.MaxSpacing = 4
	return cfg
}

func makeGrid(rows, cols int, cell float64, f func(row, col int) float64) engine.Grid {
	values := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			values[r*cols+c] = f(r, c)
		}
	}
	return engine.NewGrid(0, float64(rows)*cell, cell, cell, rows, cols, values)
}

// bearing converts a direction vector to degrees clockwise from north,
// in (0, 360]: due north maps to 360 rather than 0, since a raw 0
// doubles as the rasters' out-of-bounds sentinel.
func bearing(dx, dy float64) float64 {
	b := math.Mod(math.Atan2(dx, dy)*180/math.Pi+360, 360)
	if b == 0 {
		return 360
	}
	return b
}

func boxRing(xMin, yMin, xMax, yMax float64) orb.Ring {
	return orb.Ring{
		{xMin, yMin}, {xMax, yMin}, {xMax, yMax}, {xMin, yMax}, {xMin, yMin},
	}
}

// circleRing approximates a circle of the given radius centered at
// (cx, cy) with an n-gon, enough to drive geometric boolean ops without
// a real curve representation.
func circleRing(cx, cy, radius float64, n int) orb.Ring {
	ring := make(orb.Ring, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, orb.Point{cx + radius*math.Cos(theta), cy + radius*math.Sin(theta)})
	}
	return ring
}

// annulusPolygon is the disjoint ring-shaped slice between innerRadius
// and outerRadius, expressed as an outer boundary with an inner hole;
// one band of a radially symmetric elevation field.
func annulusPolygon(cx, cy, innerRadius, outerRadius float64, n int) orb.Polygon {
	outer := circleRing(cx, cy, outerRadius, n)
	if innerRadius <= 0 {
		return orb.Polygon{outer}
	}
	return orb.Polygon{outer, circleRing(cx, cy, innerRadius, n)}
}

// FlatPlate is entirely flat terrain, expected to yield zero hachures
// and the empty-output warning.
func FlatPlate() Scenario {
	rows, cols, cell := 10, 10, 1.0
	slope := makeGrid(rows, cols, cell, func(r, c int) float64 { return 0 })
	aspect := makeGrid(rows, cols, cell, func(r, c int) float64 { return 0 })

	extent := slope.Bound()
	band := engine.FilledBand{Elev: 0, Polygon: orb.Polygon{boxRing(extent.Min[0], extent.Min[1], extent.Max[0], extent.Max[1])}}

	return Scenario{
		Name:    "flat-plate",
		Rasters: engine.Rasters{Slope: slope, Aspect: aspect},
		Bands:   []engine.FilledBand{band},
		Config:  baseConfig(),
	}
}

// UniformSlope is a uniform 30-degree north-facing slope, elevation
// rising toward the south edge, expected to produce straight
// north-south hachures at roughly even spacing. Each band is a single
// east-west strip one row thick, so bands are disjoint and the terrain
// "above" a given elevation is everything south of that row.
func UniformSlope() Scenario {
	rows, cols, cell := 20, 20, 1.0
	slope := makeGrid(rows, cols, cell, func(r, c int) float64 { return 30 })
	// 360 is mathematically north, same as 0, but avoids colliding
	// with the out-of-bounds sentinel: every cell faces north (downhill
	// is toward the top of the grid), so the grower walks south, up the
	// slope and into the above-masks.
	aspect := makeGrid(rows, cols, cell, func(r, c int) float64 { return 360 })

	extent := slope.Bound()
	cfg := baseConfig()
	cfg.ContourInterval = 1

	var bands []engine.FilledBand
	for k := 0; k < rows-1; k++ {
		yHi := extent.Max[1] - float64(k)*cell
		yLo := yHi - cell
		bands = append(bands, engine.FilledBand{
			Elev:    float64(k),
			Polygon: orb.Polygon{boxRing(extent.Min[0], yLo, extent.Max[0], yHi)},
		})
	}

	return Scenario{
		Name:    "uniform-slope",
		Rasters: engine.Rasters{Slope: slope, Aspect: aspect},
		Bands:   bands,
		Config:  cfg,
	}
}

// ConePeak is a conical peak with radial slope and outward-facing
// aspect, expected to radiate hachures from the peak with count
// decreasing as contour perimeter shrinks toward it.
// Bands are disjoint annuli, widest (lowest elevation) at the base and
// narrowing toward the summit.
func ConePeak() Scenario {
	rows, cols, cell := 50, 50, 1.0
	cx, cy := float64(cols)*cell/2, float64(rows)*cell/2
	maxRadius := math.Min(cx, cy)

	slope := makeGrid(rows, cols, cell, func(r, c int) float64 { return 30 })
	aspect := makeGrid(rows, cols, cell, func(r, c int) float64 {
		x, y := float64(c)*cell+cell/2, float64(rows)*cell-(float64(r)*cell+cell/2)
		dx, dy := x-cx, y-cy
		if dx == 0 && dy == 0 {
			return 0
		}
		// Every cell faces outward, away from the peak, so the
		// grower walks inward, climbing toward the summit until the
		// zig-zag guard cuts it off near the apex.
		return bearing(dx, dy)
	})

	cfg := baseConfig()
	cfg.ContourInterval = 1

	const nBands = 12
	var bands []engine.FilledBand
	for k := 0; k < nBands; k++ {
		outer := maxRadius * (1 - float64(k)/float64(nBands))
		inner := maxRadius * (1 - float64(k+1)/float64(nBands))
		bands = append(bands, engine.FilledBand{
			Elev:    float64(k),
			Polygon: annulusPolygon(cx, cy, inner, outer, 48),
		})
	}

	return Scenario{
		Name:    "cone-peak",
		Rasters: engine.Rasters{Slope: slope, Aspect: aspect},
		Bands:   bands,
		Config:  cfg,
	}
}

// StepEdge is half the grid flat, half at 30 degrees, expected to
// produce hachures only on the steep half with a clean boundary along
// the slope_min contour. The single band covers
// the flat half, so "above" it, the only region the spacing engine
// ever sees, is exactly the steep half.
func StepEdge() Scenario {
	rows, cols, cell := 20, 20, 1.0
	half := cols / 2
	slope := makeGrid(rows, cols, cell, func(r, c int) float64 {
		if c < half {
			return 0
		}
		return 30
	})
	// The steep half rises eastward, so it faces west; the grower
	// walks east, up the slope.
	aspect := makeGrid(rows, cols, cell, func(r, c int) float64 { return 270 })

	extent := slope.Bound()
	cfg := baseConfig()

	steepXMin := extent.Min[0] + float64(half)*cell
	band := engine.FilledBand{
		Elev:    0,
		Polygon: orb.Polygon{boxRing(extent.Min[0], extent.Min[1], steepXMin, extent.Max[1])},
	}

	return Scenario{
		Name:    "step-edge",
		Rasters: engine.Rasters{Slope: slope, Aspect: aspect},
		Bands:   []engine.FilledBand{band},
		Config:  cfg,
	}
}

// Ridge is a linear ridge with symmetric 25-degree slopes on both
// sides, expected to dress both flanks symmetrically with no stroke
// crossing the crest. Each elevation
// step contributes two disjoint bands, one on each flank, both bands
// sharing the same Elev so PrepareContours folds them into adjacent
// iterations at the same nominal height.
func Ridge() Scenario {
	rows, cols, cell := 20, 20, 1.0
	crestCol := cols / 2
	slope := makeGrid(rows, cols, cell, func(r, c int) float64 { return 25 })
	aspect := makeGrid(rows, cols, cell, func(r, c int) float64 {
		// Each flank faces away from the crest, so the grower climbs
		// toward it from both sides and the zig-zag guard stops any
		// walk that tries to bounce across.
		if c < crestCol {
			return 270 // west flank faces west; the walk heads east
		}
		return 90 // east flank faces east; the walk heads west
	})

	extent := slope.Bound()
	cfg := baseConfig()
	cfg.ContourInterval = 1

	crestX := extent.Min[0] + float64(crestCol)*cell
	const nBands = 8
	halfWidth := crestX - extent.Min[0]
	var bands []engine.FilledBand
	for k := 0; k < nBands; k++ {
		loFrac, hiFrac := float64(k)/float64(nBands), float64(k+1)/float64(nBands)

		// West flank: a vertical strip between two offsets from the
		// grid edge, elevation rising toward the crest.
		westLo := extent.Min[0] + loFrac*halfWidth
		westHi := extent.Min[0] + hiFrac*halfWidth
		bands = append(bands, engine.FilledBand{
			Elev:    float64(k),
			Polygon: orb.Polygon{boxRing(westLo, extent.Min[1], westHi, extent.Max[1])},
		})

		// East flank: the mirrored strip.
		eastLo := extent.Max[0] - hiFrac*halfWidth
		eastHi := extent.Max[0] - loFrac*halfWidth
		bands = append(bands, engine.FilledBand{
			Elev:    float64(k),
			Polygon: orb.Polygon{boxRing(eastLo, extent.Min[1], eastHi, extent.Max[1])},
		})
	}

	return Scenario{
		Name:    "ridge",
		Rasters: engine.Rasters{Slope: slope, Aspect: aspect},
		Bands:   bands,
		Config:  cfg,
	}
}

// Bowl is a re-entrant sink with 20-degree slopes, expected to
// terminate growers at the rim, the grid edge or via the zig-zag
// guard, never exceeding 150*J in length. Bands are
// disjoint annuli widening outward as elevation rises, the mirror
// image of ConePeak.
func Bowl() Scenario {
	rows, cols, cell := 30, 30, 1.0
	cx, cy := float64(cols)*cell/2, float64(rows)*cell/2
	maxRadius := math.Min(cx, cy)

	slope := makeGrid(rows, cols, cell, func(r, c int) float64 { return 20 })
	aspect := makeGrid(rows, cols, cell, func(r, c int) float64 {
		x, y := float64(c)*cell+cell/2, float64(rows)*cell-(float64(r)*cell+cell/2)
		dx, dy := x-cx, y-cy
		if dx == 0 && dy == 0 {
			return 0
		}
		// The bowl descends toward the sink, so every cell faces
		// inward; the grower climbs outward toward the rim.
		return bearing(-dx, -dy)
	})

	cfg := baseConfig()
	cfg.ContourInterval = 1

	const nBands = 10
	var bands []engine.FilledBand
	for k := 0; k < nBands; k++ {
		inner := maxRadius * float64(k) / float64(nBands)
		outer := maxRadius * float64(k+1) / float64(nBands)
		bands = append(bands, engine.FilledBand{
			Elev:    float64(k),
			Polygon: annulusPolygon(cx, cy, inner, outer, 48),
		})
	}

	return Scenario{
		Name:    "bowl",
		Rasters: engine.Rasters{Slope: slope, Aspect: aspect},
		Bands:   bands,
		Config:  cfg,
	}
}
