package rectypoly_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/aoc2025/rectypoly"
	"github.com/stretchr/testify/assert"
)

// TestRectyPoly_ConcurrentQueries fans RectIsIn and IsInside out over many
// goroutines sharing one polygon. Run with -race to catch shared writes.
func TestRectyPoly_ConcurrentQueries(t *testing.T) {
	p := mustPoly(t, loopyTiles)
	v := p.Vertices()

	// Sequential answers first, then compare every concurrent result.
	want := make(map[[2]int]bool)
	for i := range v {
		for j := range v {
			want[[2]int{i, j}] = p.RectIsIn(v[i], v[j])
		}
	}

	const workers = 8
	var wg sync.WaitGroup
	got := make([]map[[2]int]bool, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			res := make(map[[2]int]bool, len(want))
			for i := range v {
				for j := range v {
					res[[2]int{i, j}] = p.RectIsIn(v[i], v[j])
					_ = p.IsInside(rectypoly.Tile{Col: v[i].Col, Row: v[j].Row})
				}
			}
			got[w] = res
		}(w)
	}
	wg.Wait()

	for w, res := range got {
		assert.Equal(t, want, res, "worker %d", w)
	}
	best, ok := p.BestRectInside()
	assert.True(t, ok)
	assert.Equal(t, int64(55), best.Area, "queries must not disturb the polygon")
}
