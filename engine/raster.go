// Package engine implements the contour-hachure spacing engine: the
// iterative loop that walks contours bottom-up, maintaining a live set of
// hachure polylines. Each file holds one component: raster sampling
// (raster.go), geometry glue (geom.go), contour preparation (contour.go),
// segment classification (spacing.go), dash planning (dash.go), hachure
// growing (grower.go), the spatial index (spatial.go) and the loop itself
// (run.go).
package engine

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Grid is read-only access to a rectangular raster of scalar values,
// indexed by map-unit (x, y) coordinates. Two co-registered Grids back
// the slope and aspect inputs; a third may back a DEM purely to report
// its extent.
type Grid struct {
	// XMin, YMax is the origin (top-left corner) of the grid.
	XMin, YMax float64
	// Cw, Ch are the cell width and height, in map units.
	Cw, Ch float64
	// Rows, Cols are the grid dimensions.
	Rows, Cols int
	// Values holds Rows*Cols scalars in row-major order.
	Values []float64
}

// NewGrid builds a Grid, panicking if values does not have rows*cols
// elements (a programmer error, not a runtime condition).
func NewGrid(xMin, yMax, cw, ch float64, rows, cols int, values []float64) Grid {
	if len(values) != rows*cols {
		panic(fmt.Sprintf("engine: grid has %d values, want %d (%dx%d)", len(values), rows*cols, rows, cols))
	}
	return Grid{XMin: xMin, YMax: yMax, Cw: cw, Ch: ch, Rows: rows, Cols: cols, Values: values}
}

// AvgPixel returns (Cw+Ch)/2, the interval segment-slope sampling
// densifies at.
func (g Grid) AvgPixel() float64 {
	return (g.Cw + g.Ch) / 2
}

// Bound returns the grid's extent in map units.
func (g Grid) Bound() orb.Bound {
	xMax := g.XMin + float64(g.Cols)*g.Cw
	yMin := g.YMax - float64(g.Rows)*g.Ch
	return orb.Bound{Min: orb.Point{g.XMin, yMin}, Max: orb.Point{xMax, g.YMax}}
}

// rowCol converts a map-unit point to a (row, col) cell index.
func (g Grid) rowCol(p orb.Point) (row, col int, inBounds bool) {
	col = int(math.RoundToEven((p[0]-g.XMin)/g.Cw - 0.5))
	row = int(math.RoundToEven((g.YMax-p[1])/g.Ch - 0.5))
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return row, col, false
	}
	return row, col, true
}

// Sample returns the value of the cell containing p, or 0 if p falls
// outside the grid.
func (g Grid) Sample(p orb.Point) float64 {
	row, col, ok := g.rowCol(p)
	if !ok {
		return 0
	}
	return g.Values[row*g.Cols+col]
}

// CoRegistered reports whether g and other share the same extent, cell
// size and dimensions, which the slope/aspect grid pair must.
func (g Grid) CoRegistered(other Grid) bool {
	const eps = 1e-9
	return g.Rows == other.Rows && g.Cols == other.Cols &&
		math.Abs(g.XMin-other.XMin) < eps && math.Abs(g.YMax-other.YMax) < eps &&
		math.Abs(g.Cw-other.Cw) < eps && math.Abs(g.Ch-other.Ch) < eps
}

// MaxValue returns the largest sampled value in the grid. Generate does
// not call it; a host can pass it to Config.Validate to check
// Config.SlopeMax against the observed slope maximum.
func (g Grid) MaxValue() float64 {
	max := 0.0
	for _, v := range g.Values {
		if v > max {
			max = v
		}
	}
	return max
}

// Rasters bundles the co-registered slope and aspect grids the core
// consumes as opaque read-only input.
type Rasters struct {
	Slope  Grid
	Aspect Grid
}

// SampleSlope samples the slope grid at p, in degrees.
func (r Rasters) SampleSlope(p orb.Point) float64 { return r.Slope.Sample(p) }

// SampleAspect samples the aspect grid at p, in degrees clockwise from
// north. A sample of 0 doubles as the out-of-bounds sentinel; flat
// cells also report 0, which conveniently is where hachures should
// terminate anyway.
func (r Rasters) SampleAspect(p orb.Point) float64 { return r.Aspect.Sample(p) }
