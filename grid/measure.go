// Package grid - boundary and score diagnostics.
//
// LocalBoundary is the engine's O(1) hot-path primitive; EdgeDiff and
// PlayerScores are full O(n²) recomputations reserved for checkpoints and the
// end-of-run cross-check. The per-move loop must never call the full variants.
package grid

// LocalBoundary returns the local boundary contribution of cell (r,c): the
// number of existing 4-neighbors whose label differs from the cell's own
// label (0 to 4). Border cells simply have fewer neighbors.
//
// Complexity: O(1).
func LocalBoundary(a Assignment, r, c int) int {
	n := len(a)
	var (
		count  int
		nr, nc int
	)
	for _, d := range NeighborOffsets {
		nr, nc = r+d[0], c+d[1]
		if !InBounds(n, nr, nc) {
			continue
		}
		if a[nr][nc] != a[r][c] {
			count++
		}
	}

	return count
}

// EdgeDiff recomputes the total boundary-edge count: the number of
// horizontally and vertically adjacent cell pairs with differing labels.
// Checkpoint/diagnostic use only.
//
// Complexity: O(n²).
func EdgeDiff(a Assignment) int {
	n := len(a)
	var total int
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n && a[r][c] != a[r][c+1] {
				total++
			}
			if r+1 < n && a[r][c] != a[r+1][c] {
				total++
			}
		}
	}

	return total
}

// PlayerScores recomputes every player's total score from scratch: the sum of
// grid values over cells currently labeled with that player. Index k-1 of the
// result holds player k's total. Used as the end-of-run cross-check against
// the engine's incrementally maintained score vector.
//
// Returns ErrShapeMismatch when assignment and grid dimensions differ, and
// ErrLabelRange when a label falls outside {0..m}; both indicate caller-side
// contract violations.
//
// Complexity: O(n²).
func PlayerScores(g *Grid, a Assignment, m int) ([]int, error) {
	if g == nil || len(a) != g.N {
		return nil, ErrShapeMismatch
	}
	scores := make([]int, m)

	var label int
	for r := 0; r < g.N; r++ {
		if len(a[r]) != g.N {
			return nil, ErrShapeMismatch
		}
		for c := 0; c < g.N; c++ {
			label = a[r][c]
			if label < 0 || label > m {
				return nil, ErrLabelRange
			}
			if label == Unclaimed {
				continue
			}
			scores[label-1] += g.Cells[r][c]
		}
	}

	return scores, nil
}
