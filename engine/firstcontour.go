package engine

import "github.com/paulmach/orb"

// firstContour seeds the live set H from scratch: every ring is
// uniformly subdivided, each non-BelowSlope piece is dash-planned, and
// a hachure is grown from every resulting dash's midpoint.
func firstContour(ctx *Context, cfg Config, rasters Rasters, step float64, c Contour, ringBase int, H *liveSet) {
	for ringIdx, ring := range c.Rings {
		ringLS := orb.LineString(ring)
		pieces := subdivideSegmentGeometry(ringLS, cfg.MaxSpacing*3)

		segs := make([]Segment, len(pieces))
		runParallel(len(pieces), func(i int) {
			segs[i] = classifySegment(pieces[i], rasters.Slope, rasters.Slope.AvgPixel(), cfg, [2]*Hachure{})
		})

		var born []bornHachure
		results := make([][]*Hachure, len(segs))
		runParallel(len(segs), func(i int) {
			seg := segs[i]
			if seg.Status == BelowSlope {
				return
			}
			for _, dash := range planDash(seg) {
				mid := pointAtDistance(dash, lineStringLength(dash)/2)
				seedArc := arcLenOfPointOnRing(ringLS, mid)
				h := growHachure(rasters, mid, step, cfg.SlopeMin, seedArc, ringBase*100000+ringIdx)
				if h != nil {
					results[i] = append(results[i], h)
				}
			}
		})
		for _, hs := range results {
			for _, h := range hs {
				born = append(born, bornHachure{ringIndex: ringBase*100000 + ringIdx, h: h})
			}
		}
		sortBorn(born)
		assertMonotoneInsert(born)
		for _, b := range born {
			H.Insert(b.h)
		}
		ctx.Progressf("ring %d: seeded %d hachures", ringIdx, len(born))
	}
}

// arcLenOfPointOnRing returns the arc-length along ring's own geometry
// closest to p; used only for seed ordering, not for geometric
// accuracy, so a cheap nearest-vertex walk is sufficient: the ordering
// key needs only a consistent, deterministic number.
func arcLenOfPointOnRing(ring orb.LineString, p orb.Point) float64 {
	best := 0.0
	bestDist := -1.0
	acc := 0.0
	for i := 1; i < len(ring); i++ {
		a, b := ring[i-1], ring[i]
		segLen := distance(a, b)
		d := distance(p, a)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = acc
		}
		acc += segLen
	}
	return best
}
