package engine

import (
	"math"

	"github.com/go-clipper/clipper2"
	"github.com/mikenye/geom2d/linesegment"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// clipperScale converts map-unit float64 coordinates to clipper's
// fixed-precision int64 coordinates and back. 1e6 gives sub-millimeter
// precision for map units expressed in meters, which is ample for the
// difference operations this package performs (hachure vs. contour mask).
const clipperScale = 1e6

func toPoint64(p orb.Point) clipper.Point64 {
	return clipper.Point64{X: int64(math.Round(p[0] * clipperScale)), Y: int64(math.Round(p[1] * clipperScale))}
}

func fromPoint64(p clipper.Point64) orb.Point {
	return orb.Point{float64(p.X) / clipperScale, float64(p.Y) / clipperScale}
}

func ringToPath64(r orb.Ring) clipper.Path64 {
	path := make(clipper.Path64, len(r))
	for i, p := range r {
		path[i] = toPoint64(p)
	}
	return path
}

func polygonToPaths64(poly orb.Polygon) clipper.Paths64 {
	paths := make(clipper.Paths64, len(poly))
	for i, r := range poly {
		paths[i] = ringToPath64(r)
	}
	return paths
}

func multiPolygonToPaths64(mp orb.MultiPolygon) clipper.Paths64 {
	var paths clipper.Paths64
	for _, poly := range mp {
		paths = append(paths, polygonToPaths64(poly)...)
	}
	return paths
}

func paths64ToMultiPolygon(paths clipper.Paths64) orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(paths))
	for _, p := range paths {
		ring := make(orb.Ring, len(p))
		for i, pt := range p {
			ring[i] = fromPoint64(pt)
		}
		mp = append(mp, orb.Polygon{ring})
	}
	return mp
}

// differenceMultiPolygon returns subject minus clip, both expressed as
// (possibly multi-part) polygon sets, via clipper's Vatti-algorithm
// boolean ops.
//
// A degenerate input (self-intersecting or empty ring) is not fatal: the
// spacing engine treats a failed difference as producing no geometry,
// so errors are swallowed here and reported as an empty result.
func differenceMultiPolygon(subject, clip orb.MultiPolygon) orb.MultiPolygon {
	sol, err := clipper.Difference64(multiPolygonToPaths64(subject), multiPolygonToPaths64(clip), clipper.NonZero)
	if err != nil {
		return nil
	}
	return paths64ToMultiPolygon(sol)
}

// differenceLineString subtracts a contour's "above" mask from a
// hachure's geometry, cutting off the portion that has climbed past the
// contour and keeping the run between the seed and the crossing.
//
// A full polygon/polyline boolean difference (as clipper performs for
// the area masks in contour.go) is more generality than this needs: a
// hachure climbs monotonically from its seed, so containment in "above"
// is false for a leading run of vertices and true from the first entry
// onward. Finding that one crossing with a point-in-polygon walk,
// bisecting the segment where containment flips, covers the monotone
// case and avoids round-tripping an open polyline through a boolean-ops
// library built around closed paths.
func differenceLineString(ls orb.LineString, above orb.MultiPolygon) orb.LineString {
	if len(ls) < 2 {
		return nil
	}
	if multiPolygonContains(above, ls[0]) {
		// Even the seed end lies past the contour: the difference is
		// empty and the hachure is dropped whole.
		return nil
	}
	out := orb.LineString{ls[0]}
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		if !multiPolygonContains(above, b) {
			out = append(out, b)
			continue
		}
		out = append(out, bisectEntry(above, a, b))
		return out
	}
	return out
}

// bisectEntry finds the point along [a,b] where containment in above
// flips from false to true, to within a fixed number of bisection steps.
func bisectEntry(above orb.MultiPolygon, outside, inside orb.Point) orb.Point {
	lo, hi := outside, inside
	for i := 0; i < 24; i++ {
		mid := lerp(lo, hi, 0.5)
		if multiPolygonContains(above, mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// multiPolygonContains reports whether p falls within any polygon of mp,
// honoring holes via orb's even-odd ring containment test.
func multiPolygonContains(mp orb.MultiPolygon, p orb.Point) bool {
	for _, poly := range mp {
		if polygonContains(poly, p) {
			return true
		}
	}
	return false
}

func polygonContains(poly orb.Polygon, p orb.Point) bool {
	if len(poly) == 0 || !planar.RingContains(poly[0], p) {
		return false
	}
	for _, hole := range poly[1:] {
		if planar.RingContains(hole, p) {
			return false
		}
	}
	return true
}

// lineStringLength returns the summed length of ls's segments.
func lineStringLength(ls orb.LineString) float64 {
	return planar.Length(ls)
}

// distance returns the Euclidean distance between a and b.
func distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// densify returns ls with extra vertices inserted so no two consecutive
// vertices are farther apart than interval, used by the segment slope
// sampler.
func densify(ls orb.LineString, interval float64) orb.LineString {
	if len(ls) < 2 || interval <= 0 {
		return ls
	}
	out := orb.LineString{ls[0]}
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		segLen := distance(a, b)
		if segLen <= interval {
			out = append(out, b)
			continue
		}
		n := int(math.Ceil(segLen / interval))
		for k := 1; k < n; k++ {
			t := float64(k) / float64(n)
			out = append(out, lerp(a, b, t))
		}
		out = append(out, b)
	}
	return out
}

func lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

// pointAtDistance returns the point reached after walking d map units
// along ls from its start. If d exceeds the line's length, the last
// vertex is returned.
func pointAtDistance(ls orb.LineString, d float64) orb.Point {
	if len(ls) == 0 {
		return orb.Point{}
	}
	if d <= 0 {
		return ls[0]
	}
	remaining := d
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		segLen := distance(a, b)
		if remaining <= segLen {
			if segLen == 0 {
				return a
			}
			return lerp(a, b, remaining/segLen)
		}
		remaining -= segLen
	}
	return ls[len(ls)-1]
}

// substring returns the portion of ls between arc-length offsets from
// and to (0 <= from <= to <= length(ls)), re-densifying the cut points
// into the result exactly.
func substring(ls orb.LineString, from, to float64) orb.LineString {
	if to <= from || len(ls) < 2 {
		return nil
	}
	var out orb.LineString
	acc := 0.0
	started := false
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		segLen := distance(a, b)
		segStart, segEnd := acc, acc+segLen

		if !started && from >= segStart && from <= segEnd {
			t := 0.0
			if segLen > 0 {
				t = (from - segStart) / segLen
			}
			out = append(out, lerp(a, b, t))
			started = true
		}
		if started && to <= segEnd {
			t := 1.0
			if segLen > 0 {
				t = (to - segStart) / segLen
			}
			out = append(out, lerp(a, b, t))
			return out
		}
		if started && segEnd > from {
			out = append(out, b)
		}
		acc = segEnd
	}
	return out
}

// cutPoint is a single intersection of a ring with a hachure, annotated
// with the arc-length along the ring where it occurs.
type cutPoint struct {
	arcLen  float64
	point   orb.Point
	hachure *Hachure
}

// intersectRingWithHachure finds every point where h's geometry crosses
// ring, using mikenye/geom2d's segment-segment intersection test. Only a
// clean single-point intersection is recorded; overlapping-segment and
// degenerate multipoint results are skipped.
func intersectRingWithHachure(ring orb.Ring, h *Hachure) []cutPoint {
	var cuts []cutPoint
	acc := 0.0
	for i := 1; i < len(ring); i++ {
		a, b := ring[i-1], ring[i]
		ringSeg := linesegment.New(a[0], a[1], b[0], b[1])

		for j := 1; j < len(h.Geometry); j++ {
			c, d := h.Geometry[j-1], h.Geometry[j]
			hSeg := linesegment.New(c[0], c[1], d[0], d[1])

			result := ringSeg.Intersection(hSeg)
			if result.IntersectionType != linesegment.IntersectionPoint {
				// Overlapping-segment and no-intersection results
				// are degeneracies, skipped rather than cut at.
				continue
			}
			pt := orb.Point{result.IntersectionPoint.X(), result.IntersectionPoint.Y()}
			cuts = append(cuts, cutPoint{
				arcLen:  acc + distance(a, pt),
				point:   pt,
				hachure: h,
			})
		}
		acc += distance(a, b)
	}
	return cuts
}
