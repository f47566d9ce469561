package engine

import (
	"sort"

	"github.com/paulmach/orb"
)

// subsequentContour runs one contour through the cut/classify/terminate/
// birth pipeline, against the live set H built up by earlier contours.
func subsequentContour(ctx *Context, cfg Config, rasters Rasters, step float64, c Contour, ringBase int, H *liveSet) {
	avgPixel := rasters.Slope.AvgPixel()

	for ringIdx, ring := range c.Rings {
		segs := splitRingByHachures(ring, H, rasters.Slope, avgPixel, cfg)

		clipSet := map[*Hachure]bool{}
		for _, seg := range segs {
			switch seg.Status {
			case BelowSlope:
				for _, h := range seg.distinctEndpointHachures() {
					clipSet[h] = true
				}
			case TooShort:
				distinct := seg.distinctEndpointHachures()
				if len(distinct) == 2 {
					clipSet[pickClipCandidate(distinct[0], distinct[1])] = true
				}
			}
		}

		// Clip in a deterministic order so the live set's layout, and
		// with it the final output, is identical across reruns.
		toClip := make([]*Hachure, 0, len(clipSet))
		for h := range clipSet {
			toClip = append(toClip, h)
		}
		sort.Slice(toClip, func(i, j int) bool {
			if toClip[i].BornAtRingIndex != toClip[j].BornAtRingIndex {
				return toClip[i].BornAtRingIndex < toClip[j].BornAtRingIndex
			}
			return toClip[i].SeedArcLen < toClip[j].SeedArcLen
		})

		minLen := minRetainedFactor * step
		for _, h := range toClip {
			H.Remove(h)
			clipped := differenceLineString(h.Geometry, c.Above)
			if len(clipped) < 2 || lineStringLength(clipped) < minLen {
				continue
			}
			h.Geometry = clipped
			H.Insert(h)
		}

		var born []bornHachure
		for _, seg := range segs {
			if seg.Status != TooLong {
				continue
			}
			for _, dash := range planDash(seg) {
				mid := pointAtDistance(dash, lineStringLength(dash)/2)
				seedArc := arcLenOfPointOnRing(orb.LineString(ring), mid)
				h := growHachure(rasters, mid, step, cfg.SlopeMin, seedArc, ringBase*100000+ringIdx)
				if h != nil {
					born = append(born, bornHachure{ringIndex: ringBase*100000 + ringIdx, h: h})
				}
			}
		}
		sortBorn(born)
		assertMonotoneInsert(born)
		for _, b := range born {
			H.Insert(b.h)
		}
		ctx.Progressf("ring %d: clipped %d, born %d", ringIdx, len(clipSet), len(born))
	}
}

// pickClipCandidate chooses which of two hachures bracketing a TooShort
// segment gets clipped: the shorter of the two, so the longer, more
// established hachure is kept. Ties break to the lower seed arc-length,
// keeping reruns reproducible.
func pickClipCandidate(a, b *Hachure) *Hachure {
	la, lb := lineStringLength(a.Geometry), lineStringLength(b.Geometry)
	if la != lb {
		if la < lb {
			return a
		}
		return b
	}
	if a.SeedArcLen <= b.SeedArcLen {
		return a
	}
	return b
}

// splitRingByHachures intersects ring with every hachure the spatial
// index reports as a bounding-box candidate, cuts the ring at the
// resulting points, and further subdivides any piece longer than
// 3*max_spacing so slope statistics stay local, returning fully
// classified Segments.
func splitRingByHachures(ring orb.Ring, H *liveSet, slope Grid, avgPixel float64, cfg Config) []Segment {
	var cuts []cutPoint
	for _, h := range H.index.QueryRing(ring) {
		cuts = append(cuts, intersectRingWithHachure(ring, h)...)
	}

	ringLS := orb.LineString(ring)
	maxLen := cfg.MaxSpacing * 3

	if len(cuts) == 0 {
		var segs []Segment
		for _, piece := range subdivideSegmentGeometry(ringLS, maxLen) {
			segs = append(segs, classifySegment(piece, slope, avgPixel, cfg, [2]*Hachure{}))
		}
		return segs
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].arcLen < cuts[j].arcLen })
	total := lineStringLength(ringLS)

	var segs []Segment
	n := len(cuts)
	for i := 0; i < n; i++ {
		cur := cuts[i]
		next := cuts[(i+1)%n]

		var geom orb.LineString
		if i == n-1 {
			head := substring(ringLS, cur.arcLen, total)
			tail := substring(ringLS, 0, next.arcLen)
			if len(tail) > 0 {
				tail = tail[1:]
			}
			geom = append(head, tail...)
		} else {
			geom = substring(ringLS, cur.arcLen, next.arcLen)
		}
		if len(geom) < 2 {
			continue
		}

		pieces := subdivideSegmentGeometry(geom, maxLen)
		for pi, piece := range pieces {
			var endpoints [2]*Hachure
			if pi == 0 {
				endpoints[0] = cur.hachure
			}
			if pi == len(pieces)-1 {
				endpoints[1] = next.hachure
			}
			segs = append(segs, classifySegment(piece, slope, avgPixel, cfg, endpoints))
		}
	}
	return segs
}
