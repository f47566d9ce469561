package engine

import (
	"math"

	"github.com/paulmach/orb"
)

// maxGrowSteps is the grower's safety fuse: a hachure that has not
// terminated naturally after this many integration steps is cut short
// rather than run forever on a degenerate aspect field.
const maxGrowSteps = 150

// zigZagDistFactor is the multiple of the integration step J used by
// the zig-zag guard: once the walk's latest point comes back within
// this distance of the point two steps before it, growth has started
// oscillating near a saddle or sink and is cut short.
const zigZagDistFactor = 1.5

// growState is a pull iterator over one hachure's growth, advancing one
// integration step per call rather than materializing the whole path at
// once, with explicit state: the points so far and the step count.
//
// The walk starts at a seed on a contour ring and climbs the fall line:
// aspect faces down the slope, so stepping against it moves toward
// higher ground, where later contours can find and cut the hachure. The
// finished stroke still traces the line of steepest descent.
type growState struct {
	rasters  Rasters
	step     float64
	slopeMin float64

	pts    orb.LineString
	done   bool
	nsteps int
}

// newGrowState begins growing a hachure from seed, taking the first
// step immediately. If seed itself samples out of bounds, the walk
// starts and ends empty.
func newGrowState(rasters Rasters, seed orb.Point, step float64, slopeMin float64) *growState {
	g := &growState{rasters: rasters, step: step, slopeMin: slopeMin}
	a := rasters.SampleAspect(seed)
	if a == 0 {
		g.done = true
		return g
	}
	g.pts = orb.LineString{seed, aspectStep(seed, a, step)}
	g.nsteps = 1
	return g
}

// aspectStep advances p one integration step along the fall line:
// aspect is the bearing the slope faces, so the +180 turns the walk
// against it, up the slope.
func aspectStep(p orb.Point, aspectDeg, step float64) orb.Point {
	rad := (aspectDeg + 180) * math.Pi / 180
	return orb.Point{p[0] + math.Sin(rad)*step, p[1] + math.Cos(rad)*step}
}

// next advances the walk by one integration step, appending a vertex to
// the live geometry, and reports whether the walk may continue. Once it
// returns false the hachure has terminated: callers should stop calling
// next and read Geometry for the final result.
func (g *growState) next() bool {
	if g.done {
		return false
	}
	if g.nsteps >= maxGrowSteps {
		g.done = true
		return false
	}

	p := g.pts[len(g.pts)-1]
	a := g.rasters.SampleAspect(p)
	sigma := g.rasters.SampleSlope(p)

	if a == 0 {
		// Out of bounds: the point we just arrived at carries no
		// aspect to continue from.
		g.pts = g.pts[:len(g.pts)-1]
		g.done = true
		return false
	}
	if sigma < g.slopeMin {
		// Reached ground flatter than the configured threshold: drop
		// the point that landed here.
		g.pts = g.pts[:len(g.pts)-1]
		g.done = true
		return false
	}

	q := aspectStep(p, a, g.step)
	if g.visited(q) {
		g.done = true
		return false
	}

	if len(g.pts) > 3 && distance(g.pts[len(g.pts)-1], g.pts[len(g.pts)-3]) < zigZagDistFactor*g.step {
		g.pts = g.pts[:len(g.pts)-2]
		g.done = true
		return false
	}

	g.pts = append(g.pts, q)
	g.nsteps++
	return true
}

// visited reports whether q already appears among the walk's recorded
// points, the stop condition for a walk that has looped back onto
// itself.
func (g *growState) visited(q orb.Point) bool {
	for _, p := range g.pts {
		if p == q {
			return true
		}
	}
	return false
}

// Geometry returns the hachure's geometry so far.
func (g *growState) Geometry() orb.LineString {
	return g.pts
}

// growHachure runs a growState to completion and returns the finished
// Hachure, or nil if the resulting geometry never reached two vertices:
// a seed that could not take even one valid step produces nothing.
func growHachure(rasters Rasters, seed orb.Point, step float64, slopeMin float64, seedArcLen float64, ringIndex int) *Hachure {
	g := newGrowState(rasters, seed, step, slopeMin)
	for g.next() {
	}
	geom := g.Geometry()
	if len(geom) < 2 {
		return nil
	}
	return &Hachure{Geometry: geom, SeedArcLen: seedArcLen, BornAtRingIndex: ringIndex}
}
