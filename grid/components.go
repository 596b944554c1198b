package grid

// RegionComponents counts, for each player, the 4-connected components of its
// claimed region. Index k-1 of the result holds player k's component count;
// a player with no cells has count 0.
//
// The search pipeline never guarantees per-player connectivity (the builder's
// fallback pass and the move loop can both fragment a region), so this
// diagnostic makes the approximation observable: 1 means the region is
// connected, higher values measure fragmentation.
//
// Returns ErrLabelRange when a label falls outside {0..m}.
//
// Time: O(n²). Memory: O(n²) for visited flags and the BFS queue.
func RegionComponents(a Assignment, m int) ([]int, error) {
	n := len(a)
	comps := make([]int, m)
	seen := make([]bool, n*n)

	var (
		label          int
		queue          []int
		u, ur, uc      int
		vr, vc, vi, qi int
	)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			label = a[r][c]
			if label < 0 || label > m {
				return nil, ErrLabelRange
			}
			if label == Unclaimed || seen[r*n+c] {
				continue
			}
			comps[label-1]++

			// BFS over same-label cells.
			queue = queue[:0]
			queue = append(queue, r*n+c)
			seen[r*n+c] = true
			for qi = 0; qi < len(queue); qi++ {
				u = queue[qi]
				ur, uc = u/n, u%n
				for _, d := range NeighborOffsets {
					vr, vc = ur+d[0], uc+d[1]
					if !InBounds(n, vr, vc) || a[vr][vc] != label {
						continue
					}
					vi = vr*n + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
		}
	}

	return comps, nil
}
