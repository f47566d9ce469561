package engine

import (
	"math"

	"github.com/paulmach/orb"
)

// cellCoord identifies one cell of the spatial hash.
type cellCoord struct{ x, y int32 }

// spatialIndex is a uniform-grid spatial hash over the bounding boxes
// of the live hachure set H, backed by a plain Go map rather than a
// fixed-capacity pool since the number of live hachures is not known
// ahead of time and shrinks as hachures are cut or retired.
type spatialIndex struct {
	cellSize    float64
	invCellSize float64
	buckets     map[cellCoord][]*Hachure
}

// newSpatialIndex returns an empty index with the given cell size,
// which should be on the order of the expected query radius: a few
// multiples of the max spacing.
func newSpatialIndex(cellSize float64) *spatialIndex {
	return &spatialIndex{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		buckets:     make(map[cellCoord][]*Hachure),
	}
}

func (idx *spatialIndex) cellOf(p orb.Point) cellCoord {
	return cellCoord{
		x: int32(math.Floor(p[0] * idx.invCellSize)),
		y: int32(math.Floor(p[1] * idx.invCellSize)),
	}
}

// Insert adds h to every cell its bounding box overlaps.
func (idx *spatialIndex) Insert(h *Hachure) {
	b := h.Bound()
	lo := idx.cellOf(b.Min)
	hi := idx.cellOf(b.Max)
	for y := lo.y; y <= hi.y; y++ {
		for x := lo.x; x <= hi.x; x++ {
			c := cellCoord{x, y}
			idx.buckets[c] = append(idx.buckets[c], h)
		}
	}
}

// Remove deletes h from every cell its bounding box overlaps. It is a
// no-op if h was never inserted or already removed.
func (idx *spatialIndex) Remove(h *Hachure) {
	b := h.Bound()
	lo := idx.cellOf(b.Min)
	hi := idx.cellOf(b.Max)
	for y := lo.y; y <= hi.y; y++ {
		for x := lo.x; x <= hi.x; x++ {
			c := cellCoord{x, y}
			bucket := idx.buckets[c]
			for i, cand := range bucket {
				if cand == h {
					bucket[i] = bucket[len(bucket)-1]
					idx.buckets[c] = bucket[:len(bucket)-1]
					break
				}
			}
			if len(idx.buckets[c]) == 0 {
				delete(idx.buckets, c)
			}
		}
	}
}

// Query returns every distinct hachure whose bounding box overlaps b,
// deduplicated across the cells it spans.
func (idx *spatialIndex) Query(b orb.Bound) []*Hachure {
	lo := idx.cellOf(b.Min)
	hi := idx.cellOf(b.Max)

	seen := make(map[*Hachure]bool)
	var out []*Hachure
	for y := lo.y; y <= hi.y; y++ {
		for x := lo.x; x <= hi.x; x++ {
			for _, h := range idx.buckets[cellCoord{x, y}] {
				if !seen[h] {
					seen[h] = true
					out = append(out, h)
				}
			}
		}
	}
	return out
}

// QueryRing returns every distinct hachure whose bounding box overlaps
// ring's bounding box, the coarse candidate set intersectRingWithHachure
// then narrows with exact segment tests.
func (idx *spatialIndex) QueryRing(ring orb.Ring) []*Hachure {
	return idx.Query(ring.Bound())
}
