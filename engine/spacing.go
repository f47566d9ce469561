package engine

import (
	"math"

	"github.com/paulmach/orb"
)

// SegmentStatus classifies a Segment relative to the locally ideal
// hachure spacing.
type SegmentStatus int

// Segment statuses.
const (
	BelowSlope SegmentStatus = iota
	TooShort
	TooLong
	Ok
)

func (s SegmentStatus) String() string {
	switch s {
	case BelowSlope:
		return "BelowSlope"
	case TooShort:
		return "TooShort"
	case TooLong:
		return "TooLong"
	case Ok:
		return "Ok"
	default:
		return "Unknown"
	}
}

// Hysteresis bounds around the ideal spacing, chosen to avoid rapid
// add/remove oscillation across consecutive contours for segments near
// the ideal spacing.
const (
	tooShortFactor = 0.9
	tooLongFactor  = 2.2
)

// idealSpacing computes the locally ideal hachure spacing for slope
// slopeDeg: steeper means tighter, clamped to [MinSpacing, MaxSpacing].
// ok is false where slopeDeg < cfg.SlopeMin ("no hachures here").
func idealSpacing(cfg Config, slopeDeg float64) (spacing float64, ok bool) {
	if slopeDeg < cfg.SlopeMin {
		return 0, false
	}
	clamped := slopeDeg
	if clamped > cfg.SlopeMax {
		clamped = cfg.SlopeMax
	}
	frac := (clamped - cfg.SlopeMin) / (cfg.SlopeMax - cfg.SlopeMin)
	return cfg.MaxSpacing - frac*(cfg.MaxSpacing-cfg.MinSpacing), true
}

// segmentSlope returns the arithmetic mean slope sampled along ls,
// densified at avgPixel intervals. An empty sample set
// (an empty geometry) yields 0, which classify treats as
// BelowSlope.
func segmentSlope(slope Grid, ls orb.LineString, avgPixel float64) float64 {
	dense := densify(ls, avgPixel)
	if len(dense) == 0 {
		return 0
	}
	var sum float64
	for _, p := range dense {
		sum += slope.Sample(p)
	}
	return sum / float64(len(dense))
}

// Hachure is an ordered polyline tracing the fall line from a seed
// point on its birth contour toward higher ground. It is retained in
// the live set H only while len(Geometry) >= 2.
type Hachure struct {
	Geometry orb.LineString
	// SeedArcLen is the arc-length along its birth contour ring at which
	// this hachure's seed point was placed, used for deterministic
	// ordering and clip tiebreaks.
	SeedArcLen float64
	// BornAtRingIndex identifies the ring this hachure was seeded from:
	// the birth contour's index times 100000, plus the ring's index
	// within that contour's Rings slice.
	BornAtRingIndex int
}

// Length returns the hachure's current arc length.
func (h *Hachure) Length() float64 {
	return lineStringLength(h.Geometry)
}

// Bound returns the hachure geometry's bounding box, used by the
// spatial index (spatial.go).
func (h *Hachure) Bound() orb.Bound {
	return h.Geometry.Bound()
}

// Segment is a piece of a contour ring, either cut by existing hachures
// or produced by uniform subdivision for the first contour.
type Segment struct {
	Geometry orb.LineString
	Length   float64
	Slope    float64
	// Ideal is the locally ideal hachure spacing for Slope, zero when
	// Status is BelowSlope.
	Ideal  float64
	Status SegmentStatus

	// EndpointHachures holds up to two hachure references marking which
	// hachures produced this segment's two endpoints. A nil entry means
	// that endpoint comes from ring closure or the first contour, not a
	// cut.
	EndpointHachures [2]*Hachure
}

// classifySegment computes a Segment's slope and status from its
// geometry.
func classifySegment(geom orb.LineString, slope Grid, avgPixel float64, cfg Config, endpoints [2]*Hachure) Segment {
	length := lineStringLength(geom)
	sigma := segmentSlope(slope, geom, avgPixel)

	seg := Segment{Geometry: geom, Length: length, Slope: sigma, EndpointHachures: endpoints}

	ideal, ok := idealSpacing(cfg, sigma)
	switch {
	case !ok:
		seg.Status = BelowSlope
	case length < tooShortFactor*ideal:
		seg.Status = TooShort
	case length > tooLongFactor*ideal:
		seg.Status = TooLong
	default:
		seg.Status = Ok
	}
	if ok {
		seg.Ideal = ideal
	}
	return seg
}

// distinctEndpointHachures returns the segment's endpoint hachures with
// nils removed, deduplicated by pointer identity.
func (s Segment) distinctEndpointHachures() []*Hachure {
	var out []*Hachure
	for _, h := range s.EndpointHachures {
		if h == nil {
			continue
		}
		found := false
		for _, o := range out {
			if o == h {
				found = true
				break
			}
		}
		if !found {
			out = append(out, h)
		}
	}
	return out
}

// subdivideSegmentGeometry cuts ls into pieces no longer than maxLen,
// used both by first-contour uniform subdivision and by the further
// subdivision of over-long cut segments, so slope statistics stay
// local.
func subdivideSegmentGeometry(ls orb.LineString, maxLen float64) []orb.LineString {
	total := lineStringLength(ls)
	if total <= maxLen || maxLen <= 0 {
		return []orb.LineString{ls}
	}
	n := int(math.Ceil(total / maxLen))
	pieces := make([]orb.LineString, 0, n)
	step := total / float64(n)
	for i := 0; i < n; i++ {
		from, to := float64(i)*step, float64(i+1)*step
		if i == n-1 {
			to = total
		}
		piece := substring(ls, from, to)
		if len(piece) >= 2 {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}
