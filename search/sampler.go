package search

import (
	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/prng"
)

// boundarySampler biases move proposals toward boundary cells (cells with at
// least one differently-labeled 4-neighbor), where almost all improving moves
// live. The list is refreshed by full rescan at a fixed cadence, so entries
// between rescans may be stale; staleness only skews proposals, never
// correctness, and the uniform fallback keeps exploration alive even when the
// list is empty or entirely stale.
type boundarySampler struct {
	n     int
	bias  float64
	cells [][2]int
}

func newBoundarySampler(n int, bias float64) *boundarySampler {
	return &boundarySampler{n: n, bias: bias}
}

// rebuild rescans the whole board and collects cells with a positive local
// boundary contribution.
//
// Complexity: O(n²); amortized across the rescan cadence this stays cheap
// relative to the move budget.
func (s *boundarySampler) rebuild(a grid.Assignment) {
	s.cells = s.cells[:0]
	for r := 0; r < s.n; r++ {
		for c := 0; c < s.n; c++ {
			if grid.LocalBoundary(a, r, c) > 0 {
				s.cells = append(s.cells, [2]int{r, c})
			}
		}
	}
}

// pick proposes one coordinate. Draw order is contractual: first the bias
// coin, then either one index draw (boundary hit) or two coordinate draws
// (uniform fallback, also taken whenever the boundary list is empty).
//
// Complexity: O(1).
func (s *boundarySampler) pick(src *prng.Source) (int, int) {
	if src.Float64() < s.bias && len(s.cells) > 0 {
		cell := s.cells[src.IntRange(0, len(s.cells)-1)]

		return cell[0], cell[1]
	}

	return src.IntRange(0, s.n-1), src.IntRange(0, s.n-1)
}
