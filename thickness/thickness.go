// Package thickness implements the optional post-pass that tags
// finished hachures with local mean slope along evenly split
// sub-segments, for renderers that vary stroke width by steepness.
package thickness

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/arl/go-hachure/engine"
)

// SubSegment is one piece of a finished hachure, tagged with the mean
// slope sampled along it.
type SubSegment struct {
	Geometry orb.LineString
	Slope    float64
}

// Split divides every finished hachure into floor(length/subLen) equal
// sub-segments, each at least subLen and under 2*subLen long (a hachure
// shorter than subLen is kept whole), each tagged with its local mean
// slope: the same
// even-subdivision idea engine's dash planner applies at a
// slope-derived length, reused here at a fixed one.
func Split(hachures []*engine.Hachure, slope engine.Grid, avgPixel, subLen float64) []SubSegment {
	var out []SubSegment
	for _, h := range hachures {
		for _, piece := range evenSplit(h.Geometry, subLen) {
			out = append(out, SubSegment{
				Geometry: piece,
				Slope:    meanSlope(slope, piece, avgPixel),
			})
		}
	}
	return out
}

func evenSplit(ls orb.LineString, subLen float64) []orb.LineString {
	total := planar.Length(ls)
	if total <= 0 || subLen <= 0 {
		return nil
	}
	n := int(total / subLen)
	if n < 1 {
		return []orb.LineString{ls}
	}
	step := total / float64(n)

	var out []orb.LineString
	for i := 0; i < n; i++ {
		piece := substring(ls, float64(i)*step, float64(i+1)*step)
		if len(piece) >= 2 {
			out = append(out, piece)
		}
	}
	return out
}

// substring returns the portion of ls between arc-length offsets from
// and to, mirroring engine's unexported helper of the same name (kept
// duplicated rather than exported across the package boundary, since
// it is the only piece of engine/geom.go this package needs).
func substring(ls orb.LineString, from, to float64) orb.LineString {
	if to <= from || len(ls) < 2 {
		return nil
	}
	var out orb.LineString
	acc := 0.0
	started := false
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		segLen := planar.Distance(a, b)
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

func lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

func meanSlope(slope engine.Grid, ls orb.LineString, avgPixel float64) float64 {
	if len(ls) == 0 {
		return 0
	}
	var sum float64
	var n int
	for i := 1; i < len(ls); i++ {
		a, b := ls[i-1], ls[i]
		segLen := planar.Distance(a, b)
		steps := int(segLen/avgPixel) + 1
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			sum += slope.Sample(lerp(a, b, t))
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
