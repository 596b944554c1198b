// Package builder constructs the starting partition for the local-search
// engine. Construction is biased toward connected per-player regions, because
// connectivity cannot be hard-enforced later: the search loop only minimizes
// the global boundary-edge count.
//
// Two strategies implement one narrow interface (successive refinements of a
// single design, not independent features):
//
//   - SeedGrow (default): spread one seed per player across the grid, then
//     grow all regions from a shared best-first frontier. Cells claimed during
//     growth are reachable from their seed through same-player cells, so this
//     phase is connected by construction. A fallback pass then places leftover
//     value greedily and may break connectivity, an accepted approximation.
//   - GreedyDescending: the earlier refinement; plain descending-value greedy
//     with no connectivity bias.
//
// Construction is fully deterministic given the instance: ties break on
// row-major order and on player index, never on randomness.
package builder

import (
	"errors"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/problem"
)

// Sentinel errors for builder operations.
var (
	// ErrNilInstance indicates a nil instance or nil grid.
	ErrNilInstance = errors.New("builder: problem instance must be non-nil")
	// ErrNoRequirements indicates an empty requirement vector.
	ErrNoRequirements = errors.New("builder: requirement vector must be non-empty")
)

// Strategy builds an initial assignment for a problem instance.
type Strategy interface {
	// Build returns a complete initial partition: every cell is either claimed
	// or explicitly left Unclaimed when no player could legally take it.
	Build(inst *problem.Instance) (Result, error)
}

// Result is the outcome of initial construction.
type Result struct {
	// Assignment holds labels in {0..m}.
	Assignment grid.Assignment
	// Scores[k-1] is player k's total over its claimed cells; consistent with
	// Assignment by construction.
	Scores []int
	// Seeds[k-1] is player k's seed cell (row, col), or {-1,-1} when the seed
	// claim was rejected by the player's capacity. Only SeedGrow places seeds;
	// GreedyDescending leaves all entries at {-1,-1}.
	Seeds [][2]int
	// FallbackCells counts cells placed by the greedy fallback pass, i.e.
	// cells with no connectivity guarantee.
	FallbackCells int
	// Unclaimed counts cells left without an owner.
	Unclaimed int
}

// validate checks the caller-side contract shared by all strategies.
func validate(inst *problem.Instance) error {
	if inst == nil || inst.Grid == nil {
		return ErrNilInstance
	}
	if len(inst.Requirements) == 0 {
		return ErrNoRequirements
	}

	return nil
}

// allSatisfied reports whether every player meets its requirement.
func allSatisfied(satisfied []bool) bool {
	for _, s := range satisfied {
		if !s {
			return false
		}
	}

	return true
}

// tightestEligible picks the unsatisfied player with the smallest remaining
// capacity window (upperBound − score) that can still accept value without
// exceeding its bound. Returns the 1-based player label, or 0 when nobody is
// eligible. Ties break on the lower player index.
//
// Complexity: O(m).
func tightestEligible(value int, reqs, bounds, scores []int, satisfied []bool) int {
	var (
		chosen     int
		bestWindow int
		window     int
	)
	for k := range reqs {
		if satisfied[k] || reqs[k]-scores[k] <= 0 {
			continue
		}
		window = bounds[k] - scores[k]
		if value > window {
			continue
		}
		if chosen == 0 || window < bestWindow {
			chosen = k + 1
			bestWindow = window
		}
	}

	return chosen
}
