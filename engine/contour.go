package engine

import (
	"sort"

	"github.com/aurelien-rainone/assertgo"
	"github.com/paulmach/orb"
)

// FilledBand is one externally-supplied filled-contour polygon band: a
// polygon covering the slice of terrain whose elevation falls in [Elev,
// next band's Elev), Elev being the band's ELEV_MIN attribute. Bands at
// different elevations are disjoint; their union up to and including
// index i is exactly the terrain below the next band's elevation, which
// is what PrepareContours's chained differences rely on.
type FilledBand struct {
	Elev    float64
	Polygon orb.Polygon
}

// LineContour is an optional externally-supplied line contour, used in
// place of a filled band's ring polylines where available for geometric
// precision.
type LineContour struct {
	Elev float64
	Ring orb.Ring
}

// Contour pairs a set of ring polylines with the polygon mask of all
// terrain strictly above that elevation.
type Contour struct {
	Elev  float64
	Rings []orb.Ring
	Above orb.MultiPolygon
}

// PrepareContours transforms externally-supplied filled-contour bands
// (and, optionally, matching line contours) into the ordered list of
// Contour objects the spacing engine walks bottom-up.
//
// bands need not be pre-sorted; lines may be nil or a partial match by
// elevation. extent is the raster working extent (Grid.Bound), used as
// the starting "everything" region that bands are progressively
// subtracted from.
func PrepareContours(ctx *Context, bands []FilledBand, lines []LineContour, extent orb.Bound) []Contour {
	ctx.StartTimer(TimerContourPrep)
	defer ctx.StopTimer(TimerContourPrep)

	sorted := append([]FilledBand(nil), bands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Elev < sorted[j].Elev })

	lineByElev := make(map[float64]orb.Ring, len(lines))
	for _, lc := range lines {
		lineByElev[lc.Elev] = lc.Ring
	}

	boundary := boundRing(extent)
	subtracted := orb.MultiPolygon{{boundary}}

	contours := make([]Contour, 0, len(sorted))
	for i, band := range sorted {
		above := differenceMultiPolygon(subtracted, orb.MultiPolygon{band.Polygon})

		// Drop elevation bands whose "above" mask has degenerated to
		// nothing: the band sits at or beyond the DEM's maximum, and an
		// empty Contour would give the loop nothing to cut or seed.
		if multiPolygonEmpty(above) {
			ctx.Progressf("contour %d (elev %.3f): empty above-mask, dropped", i, band.Elev)
			continue
		}

		assert.True(multiPolygonArea(above) <= multiPolygonArea(subtracted)+1e-6,
			"above[i] must not exceed the previous iteration's region")

		rings := extractRings(above, lineByElev[band.Elev])
		contours = append(contours, Contour{Elev: band.Elev, Rings: rings, Above: above})

		subtracted = above
	}

	ctx.Progressf("prepared %d contours from %d bands", len(contours), len(sorted))
	return contours
}

func boundRing(b orb.Bound) orb.Ring {
	return orb.Ring{
		{b.Min[0], b.Min[1]},
		{b.Max[0], b.Min[1]},
		{b.Max[0], b.Max[1]},
		{b.Min[0], b.Max[1]},
		{b.Min[0], b.Min[1]},
	}
}

func multiPolygonEmpty(mp orb.MultiPolygon) bool {
	for _, p := range mp {
		if len(p) > 0 && len(p[0]) >= 4 {
			return false
		}
	}
	return true
}

func multiPolygonArea(mp orb.MultiPolygon) float64 {
	var total float64
	for _, poly := range mp {
		total += polygonArea(poly)
	}
	return total
}

func polygonArea(poly orb.Polygon) float64 {
	if len(poly) == 0 {
		return 0
	}
	area := ringArea(poly[0])
	for _, hole := range poly[1:] {
		area -= ringArea(hole)
	}
	if area < 0 {
		return -area
	}
	return area
}

// ringArea computes the signed shoelace area of a ring.
func ringArea(r orb.Ring) float64 {
	var sum float64
	for i := 0; i < len(r)-1; i++ {
		sum += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}
	return sum / 2
}

// extractRings returns the ring polylines for a contour: the supplied
// line contour when available (for geometric precision), otherwise
// every ring of the above-mask's polygons.
func extractRings(above orb.MultiPolygon, line orb.Ring) []orb.Ring {
	if line != nil {
		return []orb.Ring{line}
	}
	var rings []orb.Ring
	for _, poly := range above {
		rings = append(rings, poly...)
	}
	return rings
}
