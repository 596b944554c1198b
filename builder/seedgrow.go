// Package builder - seed-and-grow construction.
//
// Algorithm:
//  1. Tiling: partition the board into a ⌈√m⌉×⌈√m⌉ array of rectangular
//     tiles (at least m tiles). In row-major tile order, the highest-value
//     cell of each tile becomes the next player's seed, until m seeds exist.
//  2. Seed claim: a seed is claimed only when its value fits the player's
//     capacity (upperBound − score).
//  3. Growth: one global max-heap frontier keyed by cell value serves the
//     best unclaimed frontier cell next, tagged with the adjacent player.
//     Stale entries (cell claimed since insertion) are discarded lazily on
//     extraction instead of via decrease-key bookkeeping.
//  4. Fallback: leftover cells go greedily, by value descending, to the
//     unsatisfied player with the tightest remaining capacity window. No
//     connectivity guarantee in this pass.
//
// Complexity: O(n²·log n): every cell enters the shared frontier at most
// four times (once per neighboring claim).
package builder

import (
	"container/heap"
	"math"
	"sort"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/problem"
)

// SeedGrow is the default construction strategy.
type SeedGrow struct{}

// frontierEntry is one (possibly stale) frontier candidate: an unclaimed cell
// adjacent to player's region at insertion time.
type frontierEntry struct {
	value  int
	r, c   int
	player int // 1-based label of the region this cell touches
	seq    int // insertion order; the deterministic tie-break
}

// frontierHeap is a max-heap on value; ties are served in insertion order so
// the growth trajectory is reproducible.
type frontierHeap []frontierEntry

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value > h[j].value
	}

	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x any) { *h = append(*h, x.(frontierEntry)) }
func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Build constructs the seed-and-grow initial assignment.
func (SeedGrow) Build(inst *problem.Instance) (Result, error) {
	if err := validate(inst); err != nil {
		return Result{}, err
	}

	var (
		g      = inst.Grid
		n      = g.N
		reqs   = inst.Requirements
		m      = len(reqs)
		bounds = problem.UpperBounds(reqs)
	)
	res := Result{
		Assignment: grid.NewAssignment(n),
		Scores:     make([]int, m),
		Seeds:      make([][2]int, m),
	}
	satisfied := make([]bool, m)
	for k := 0; k < m; k++ {
		res.Seeds[k] = [2]int{-1, -1}
		if reqs[k] == 0 {
			satisfied[k] = true
		}
	}

	// Stage 1+2 - seeds.
	seedCells := pickSeeds(g, m)

	var (
		frontier = make(frontierHeap, 0, 4*m)
		seq      int
		k        int
	)
	// push adds one frontier candidate; claimed targets are filtered lazily
	// at extraction, so pushing an already-claimed cell here is harmless.
	push := func(r, c, player int) {
		heap.Push(&frontier, frontierEntry{value: g.Cells[r][c], r: r, c: c, player: player, seq: seq})
		seq++
	}

	for k = 0; k < m; k++ {
		sr, sc := seedCells[k][0], seedCells[k][1]
		if sr < 0 {
			continue // empty tile (t > n); the player starts seedless
		}
		value := g.Cells[sr][sc]
		if value > bounds[k]-res.Scores[k] {
			continue // seed itself exceeds the capacity window; player starts seedless
		}
		res.Assignment[sr][sc] = k + 1
		res.Scores[k] += value
		res.Seeds[k] = [2]int{sr, sc}
		if res.Scores[k] >= reqs[k] {
			satisfied[k] = true
		}
	}

	// Frontier is seeded after all seed claims so one player's seed can never
	// be swallowed by another's growth.
	for k = 0; k < m; k++ {
		sr, sc := res.Seeds[k][0], res.Seeds[k][1]
		if sr < 0 {
			continue
		}
		for _, d := range grid.NeighborOffsets {
			nr, nc := sr+d[0], sc+d[1]
			if grid.InBounds(n, nr, nc) && res.Assignment[nr][nc] == grid.Unclaimed {
				push(nr, nc, k+1)
			}
		}
	}

	// Stage 3 - growth via the shared frontier.
	var e frontierEntry
	for frontier.Len() > 0 && !allSatisfied(satisfied) {
		e = heap.Pop(&frontier).(frontierEntry)
		if res.Assignment[e.r][e.c] != grid.Unclaimed {
			continue // stale entry - lazy deletion
		}
		k = e.player - 1
		if satisfied[k] {
			continue
		}
		if res.Scores[k]+e.value > bounds[k] {
			continue // would exceed the soft ceiling
		}
		res.Assignment[e.r][e.c] = e.player
		res.Scores[k] += e.value
		if res.Scores[k] >= reqs[k] {
			satisfied[k] = true
		}
		for _, d := range grid.NeighborOffsets {
			nr, nc := e.r+d[0], e.c+d[1]
			if grid.InBounds(n, nr, nc) && res.Assignment[nr][nc] == grid.Unclaimed {
				push(nr, nc, e.player)
			}
		}
	}

	// Stage 4 - fallback pass for boxed-in players.
	if !allSatisfied(satisfied) {
		res.FallbackCells = fallback(g, reqs, bounds, res.Assignment, res.Scores, satisfied)
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if res.Assignment[r][c] == grid.Unclaimed {
				res.Unclaimed++
			}
		}
	}

	return res, nil
}

// pickSeeds returns one seed cell per player: the highest-value cell of each
// tile, tiles visited row-major, first-in-row-major on value ties.
//
// Complexity: O(n²).
func pickSeeds(g *grid.Grid, m int) [][2]int {
	var (
		n     = g.N
		t     = int(math.Ceil(math.Sqrt(float64(m))))
		seeds = make([][2]int, 0, m)
	)
	for ti := 0; ti < t && len(seeds) < m; ti++ {
		for tj := 0; tj < t && len(seeds) < m; tj++ {
			// Balanced integer tile bounds: rows [ti·n/t, (ti+1)·n/t).
			var (
				r0, r1 = ti * n / t, (ti + 1) * n / t
				c0, c1 = tj * n / t, (tj + 1) * n / t
				best   = [2]int{-1, -1}
			)
			for r := r0; r < r1; r++ {
				for c := c0; c < c1; c++ {
					if best[0] < 0 || g.Cells[r][c] > g.Cells[best[0]][best[1]] {
						best = [2]int{r, c}
					}
				}
			}
			seeds = append(seeds, best)
		}
	}

	return seeds
}

// fallback assigns still-unclaimed cells, sorted by value descending (ties
// row-major), to the unsatisfied player with the tightest capacity window
// that can accept them. Returns the number of cells placed.
//
// Complexity: O(n²·(log n + m)).
func fallback(g *grid.Grid, reqs, bounds []int, a grid.Assignment, scores []int, satisfied []bool) int {
	n := g.N
	cells := make([][2]int, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if a[r][c] == grid.Unclaimed {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		vi, vj := g.Cells[cells[i][0]][cells[i][1]], g.Cells[cells[j][0]][cells[j][1]]
		if vi != vj {
			return vi > vj
		}
		if cells[i][0] != cells[j][0] {
			return cells[i][0] < cells[j][0]
		}

		return cells[i][1] < cells[j][1]
	})

	var placed int
	for _, cell := range cells {
		if allSatisfied(satisfied) {
			break
		}
		r, c := cell[0], cell[1]
		label := tightestEligible(g.Cells[r][c], reqs, bounds, scores, satisfied)
		if label == 0 {
			continue
		}
		a[r][c] = label
		scores[label-1] += g.Cells[r][c]
		if scores[label-1] >= reqs[label-1] {
			satisfied[label-1] = true
		}
		placed++
	}

	return placed
}
