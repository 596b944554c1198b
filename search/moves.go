// Package search - move primitives.
//
// Both moves follow the same discipline, adapted from classic
// first-improvement local search:
//
//	oldEdge  = Σ LocalBoundary over touched cells (before mutation)
//	mutate labels in place
//	newEdge  = the same sum after mutation
//	delta    = (newEdge − oldEdge) + λ·deltaReq
//	accept ⇒ commit score updates; reject ⇒ restore labels exactly.
//
// Deltas never scan the board: LocalBoundary is O(1) and the violation term
// touches at most two players. The full EdgeDiff recount exists only at
// checkpoints.
package search

// violation is the requirement shortfall max(0, req − score).
func violation(req, score int) int {
	if score >= req {
		return 0
	}

	return req - score
}

// swapViolationDelta computes the requirement-penalty change of exchanging
// the two cells' values between players l1 and l2 (either may be Unclaimed).
func (e *engine) swapViolationDelta(l1, l2, v1, v2 int) int {
	var d int
	if l1 != 0 {
		s := e.scores[l1-1]
		d += violation(e.reqs[l1-1], s-v1+v2) - violation(e.reqs[l1-1], s)
	}
	if l2 != 0 {
		s := e.scores[l2-1]
		d += violation(e.reqs[l2-1], s-v2+v1) - violation(e.reqs[l2-1], s)
	}

	return d
}

// trySwap attempts Move A: exchange the labels of (r1,c1) and (r2,c2).
// Reports whether the move was accepted.
func (e *engine) trySwap(r1, c1, r2, c2 int, temp float64) bool {
	var (
		l1 = e.a[r1][c1]
		l2 = e.a[r2][c2]
		v1 = e.g.Cells[r1][c1]
		v2 = e.g.Cells[r2][c2]
	)

	oldEdge := localPair(e, r1, c1, r2, c2)

	var deltaReq int
	if e.lambda != 0 && l1 != l2 {
		deltaReq = e.swapViolationDelta(l1, l2, v1, v2)
	}

	e.a[r1][c1], e.a[r2][c2] = l2, l1
	newEdge := localPair(e, r1, c1, r2, c2)

	delta := float64(newEdge-oldEdge) + e.lambda*float64(deltaReq)
	if !e.policy.Accept(delta, temp, e.src) {
		// Restore both labels to their exact pre-swap values.
		e.a[r1][c1], e.a[r2][c2] = l1, l2

		return false
	}

	if l1 != l2 {
		if l1 != 0 {
			e.scores[l1-1] += v2 - v1
		}
		if l2 != 0 {
			e.scores[l2-1] += v1 - v2
		}
	}

	return true
}

// tryReassign attempts Move B: relabel (r,c) to newLabel. A no-op label is
// rejected trivially, without consuming randomness. Reports acceptance.
func (e *engine) tryReassign(r, c, newLabel int, temp float64) bool {
	old := e.a[r][c]
	if newLabel == old {
		return false
	}

	var (
		v       = e.g.Cells[r][c]
		oldEdge = localCell(e, r, c)
	)

	var deltaReq int
	if e.lambda != 0 {
		if old != 0 {
			s := e.scores[old-1]
			deltaReq += violation(e.reqs[old-1], s-v) - violation(e.reqs[old-1], s)
		}
		if newLabel != 0 {
			s := e.scores[newLabel-1]
			deltaReq += violation(e.reqs[newLabel-1], s+v) - violation(e.reqs[newLabel-1], s)
		}
	}

	e.a[r][c] = newLabel
	newEdge := localCell(e, r, c)

	delta := float64(newEdge-oldEdge) + e.lambda*float64(deltaReq)
	if !e.policy.Accept(delta, temp, e.src) {
		e.a[r][c] = old

		return false
	}

	if old != 0 {
		e.scores[old-1] -= v
	}
	if newLabel != 0 {
		e.scores[newLabel-1] += v
	}

	return true
}
