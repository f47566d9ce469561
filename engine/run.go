package engine

import (
	"runtime"
	"sort"
	"strconv"
	"sync"

	"github.com/aurelien-rainone/assertgo"
	"github.com/paulmach/orb"
)

// minRetainedFactor sets the minimum retained hachure length, expressed
// as a multiple of the grower step J. It applies both to mid-loop clip
// survivors and to the final pruning pass.
const minRetainedFactor = 1.5

// Result is the spacing engine's output.
type Result struct {
	Hachures []*Hachure
	// Warning holds the end-of-run diagnostic (code 11) when the loop
	// produced zero hachures; zero value otherwise.
	Warning ErrorCode
}

// liveSet is the spacing engine's exclusively-owned working set H,
// backed by a spatial index for the per-contour ring/hachure
// intersection queries.
type liveSet struct {
	all   []*Hachure
	index *spatialIndex
}

func newLiveSet(cellSize float64) *liveSet {
	return &liveSet{index: newSpatialIndex(cellSize)}
}

func (s *liveSet) Insert(h *Hachure) {
	s.all = append(s.all, h)
	s.index.Insert(h)
}

func (s *liveSet) Remove(h *Hachure) {
	s.index.Remove(h)
	for i, cand := range s.all {
		if cand == h {
			s.all[i] = s.all[len(s.all)-1]
			s.all = s.all[:len(s.all)-1]
			break
		}
	}
}

func (s *liveSet) Len() int { return len(s.all) }

// Run executes the full spacing engine over contours already prepared
// by PrepareContours, seeding and growing hachures over rasters, and
// returns the final hachure set.
func Run(ctx *Context, cfg Config, rasters Rasters, contours []Contour) Result {
	ctx.StartTimer(TimerSpacingLoop)
	defer ctx.StopTimer(TimerSpacingLoop)

	avgPixel := rasters.Slope.AvgPixel()
	step := cfg.stepDistance(avgPixel)

	// The spatial index's cell size only affects query cost, not
	// results; a few multiples of max_spacing keeps buckets populated
	// without degenerating into one giant cell.
	H := newLiveSet(4 * cfg.MaxSpacing)

	for i, c := range contours {
		if H.Len() == 0 {
			firstContour(ctx, cfg, rasters, step, c, i, H)
		} else {
			subsequentContour(ctx, cfg, rasters, step, c, i, H)
		}
		ctx.Progressf("contour %d (elev %.3f): %d live hachures", i, c.Elev, H.Len())
	}

	minLen := minRetainedFactor * step
	final := make([]*Hachure, 0, H.Len())
	seen := make(map[string]bool)
	for _, h := range H.all {
		if lineStringLength(h.Geometry) < minLen {
			continue
		}
		key := hachureDedupeKey(h)
		if seen[key] {
			continue
		}
		seen[key] = true
		final = append(final, h)
	}

	res := Result{Hachures: final}
	if len(final) == 0 {
		ctx.Warningf("%s", WarnNoHachuresProduced)
		res.Warning = WarnNoHachuresProduced
	}
	return res
}

// hachureDedupeKey keys a hachure by its first and last vertex, so
// hachures with coincident endpoints, as a clip can leave behind,
// collapse into one; their interior vertices are not compared.
func hachureDedupeKey(h *Hachure) string {
	g := h.Geometry
	if len(g) == 0 {
		return ""
	}
	first, last := g[0], g[len(g)-1]
	return orbPointKey(first) + "|" + orbPointKey(last)
}

func orbPointKey(p orb.Point) string {
	const scale = 1e6
	return strconv.FormatInt(int64(p[0]*scale), 10) + "," + strconv.FormatInt(int64(p[1]*scale), 10)
}

// runParallel dispatches n independent units of work across a bounded
// worker pool and waits for all of them. Per-segment classify/dash/grow
// work within one contour iteration is independent; only the insertion
// into the live set needs serializing.
func runParallel(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < workers {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// bornHachure pairs a grown Hachure with its birth ordering key, so the
// parallel grow stage can produce results out of order and have them
// sorted back into a deterministic insertion order (contour ring index,
// then seed arc-length) so reruns produce identical output.
type bornHachure struct {
	ringIndex int
	h         *Hachure
}

func sortBorn(born []bornHachure) {
	sort.Slice(born, func(i, j int) bool {
		if born[i].ringIndex != born[j].ringIndex {
			return born[i].ringIndex < born[j].ringIndex
		}
		return born[i].h.SeedArcLen < born[j].h.SeedArcLen
	})
}

// assertMonotoneInsert checks the invariant that H only grows via this
// deterministic, sorted insertion order, guarding against an
// accidentally-racy caller.
func assertMonotoneInsert(born []bornHachure) {
	for i := 1; i < len(born); i++ {
		a, b := born[i-1], born[i]
		ok := a.ringIndex < b.ringIndex || (a.ringIndex == b.ringIndex && a.h.SeedArcLen <= b.h.SeedArcLen)
		assert.True(ok, "birth order must be sorted by ring index then seed arc-length")
	}
}
