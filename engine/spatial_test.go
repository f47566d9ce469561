package engine

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestSpatialIndexInsertQuery(t *testing.T) {
	idx := newSpatialIndex(5)
	h := &Hachure{Geometry: orb.LineString{{1, 1}, {2, 2}}}

	assert.Empty(t, idx.Query(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{3, 3}}), "index should start empty")

	idx.Insert(h)
	got := idx.Query(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{3, 3}})
	assert.Len(t, got, 1, "should find the inserted hachure")
	assert.Same(t, h, got[0])

	idx.Remove(h)
	assert.Empty(t, idx.Query(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{3, 3}}), "index should be empty after removal")
}

func TestSpatialIndexQueryDeduplicates(t *testing.T) {
	idx := newSpatialIndex(1)
	// A hachure spanning many cells must still be reported once.
	h := &Hachure{Geometry: orb.LineString{{0, 0}, {10, 10}}}
	idx.Insert(h)

	got := idx.Query(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}})
	assert.Len(t, got, 1)
}

func TestSpatialIndexQueryRing(t *testing.T) {
	idx := newSpatialIndex(5)
	near := &Hachure{Geometry: orb.LineString{{1, 1}, {2, 2}}}
	far := &Hachure{Geometry: orb.LineString{{100, 100}, {101, 101}}}
	idx.Insert(near)
	idx.Insert(far)

	ring := orb.Ring{{0, 0}, {3, 0}, {3, 3}, {0, 3}, {0, 0}}
	got := idx.QueryRing(ring)
	assert.Len(t, got, 1)
	assert.Same(t, near, got[0])
}
