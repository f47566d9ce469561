package engine

import (
	"math"

	"github.com/paulmach/orb"
)

// dashUnit is the nominal gap-dash-gap period, expressed as a multiple
// of the segment's locally ideal spacing s.
const dashUnit = 2.0

// planDash splits a TooLong (or initial) segment into evenly spaced
// dash sub-segments whose midpoints seed new hachures.
// seg.Ideal is the locally ideal spacing s computed for seg's slope
// during classification; the target period is 2*s, with the dash
// occupying the central half of each period and a gap on either side.
func planDash(seg Segment) []orb.LineString {
	total := seg.Length
	if total <= 0 || seg.Ideal <= 0 {
		return nil
	}

	unit := dashUnit * seg.Ideal
	n := int(math.Round(total / unit))
	if n == 0 {
		return nil
	}
	period := total / float64(n)
	dash := period / 2
	gap := dash / 2

	out := make([]orb.LineString, 0, n)
	for i := 0; i < n; i++ {
		from := float64(i)*period + gap
		to := from + dash
		if to > total {
			to = total
		}
		if from >= to {
			continue
		}
		piece := substring(seg.Geometry, from, to)
		if len(piece) >= 2 {
			out = append(out, piece)
		}
	}
	return out
}
