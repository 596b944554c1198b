// Package search implements the improvement loop of the module: incremental
// local search over a player-label assignment, with hill-climbing or
// simulated-annealing acceptance and boundary-biased move proposals.
//
// The engine owns the run state (assignment, live score vector, iteration
// counter, temperature) exclusively for the run's duration. There is exactly
// one mutator and no locking: the only outward interaction is one-directional
// reporting of deep-copied snapshots.
//
// Loop contract (per iteration, order fixed for determinism):
//  1. cancellation check
//  2. boundary-list rescan when due
//  3. one swap attempt   (two proposals from the sampler)
//  4. one reassign attempt (one proposal + one uniform label in {0..m})
//  5. progress report when due
//
// Failure to satisfy a player is a normal outcome, not an error: the loop
// runs to completion and the final report carries the true deficit.
package search

import (
	"time"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/prng"
	"github.com/QijunTong0/Connected-Subgraph-Problem/problem"
)

// engine is the exclusively-owned run state.
type engine struct {
	g      *grid.Grid
	a      grid.Assignment
	scores []int
	reqs   []int
	lambda float64
	src    *prng.Source
	policy AcceptancePolicy
}

// localCell is the single-cell boundary contribution.
func localCell(e *engine, r, c int) int {
	return grid.LocalBoundary(e.a, r, c)
}

// localPair sums the contributions of two (not necessarily distinct) cells.
func localPair(e *engine, r1, c1, r2, c2 int) int {
	return grid.LocalBoundary(e.a, r1, c1) + grid.LocalBoundary(e.a, r2, c2)
}

// ceilDiv returns ⌈a/b⌉ for positive b, never less than 1.
func ceilDiv(a, b int) int {
	out := (a + b - 1) / b
	if out < 1 {
		return 1
	}

	return out
}

// Run executes the local-search loop on a starting partition.
//
// Contracts:
//   - inst, src non-nil; initial and scores shaped to the instance
//     (len(scores) == len(inst.Requirements), initial is n×n). Shape
//     violations are caller bugs and surface as ErrShapeMismatch.
//   - initial and scores are cloned at entry: the caller's copies are never
//     mutated, and the returned Result owns its assignment outright.
//   - Determinism: identical (instance, initial state, options, source seed)
//     reproduce the exact move trajectory and final state.
//
// Complexity: O(maxIter) moves of O(1) each, plus O(n²) at every rescan and
// snapshot checkpoint.
func Run(inst *problem.Instance, initial grid.Assignment, scores []int, src *prng.Source, opts Options) (Result, error) {
	if inst == nil || inst.Grid == nil {
		return Result{}, ErrNilInstance
	}
	if src == nil {
		return Result{}, ErrNilSource
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var (
		n = inst.Grid.N
		m = len(inst.Requirements)
	)
	if len(initial) != n || len(scores) != m {
		return Result{}, ErrShapeMismatch
	}
	for r := 0; r < n; r++ {
		if len(initial[r]) != n {
			return Result{}, ErrShapeMismatch
		}
	}

	e := &engine{
		g:      inst.Grid,
		a:      initial.Clone(),
		scores: append([]int(nil), scores...),
		reqs:   inst.Requirements,
		lambda: opts.LambdaReq,
		src:    src,
		policy: policyFor(opts),
	}

	var (
		started     = time.Now()
		initialEdge = grid.EdgeDiff(e.a)
	)
	if opts.OnStart != nil {
		opts.OnStart(StartReport{
			Grid:         inst.Grid,
			Requirements: append([]int(nil), inst.Requirements...),
			EdgeDiff:     initialEdge,
		})
	}

	var (
		refreshEvery = opts.RefreshEvery
		snapEvery    = opts.SnapshotEvery
	)
	if refreshEvery == 0 {
		refreshEvery = ceilDiv(opts.MaxIter, 100)
	}
	if snapEvery == 0 {
		snapEvery = ceilDiv(opts.MaxIter, 10)
	}

	sampler := newBoundarySampler(n, opts.BoundaryBias)

	var (
		i        int
		r1, c1   int
		r2, c2   int
		r3, c3   int
		newLabel int
		temp     float64
	)
	for i = 0; i < opts.MaxIter; i++ {
		if opts.Ctx != nil {
			if err := opts.Ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		if i%refreshEvery == 0 {
			sampler.rebuild(e.a)
		}
		temp = temperature(opts, i)

		r1, c1 = sampler.pick(src)
		r2, c2 = sampler.pick(src)
		e.trySwap(r1, c1, r2, c2, temp)

		r3, c3 = sampler.pick(src)
		newLabel = src.IntRange(0, m)
		e.tryReassign(r3, c3, newLabel, temp)

		if (i+1)%snapEvery == 0 && opts.OnProgress != nil {
			opts.OnProgress(ProgressReport{
				Iteration:  i + 1,
				EdgeDiff:   grid.EdgeDiff(e.a),
				Assignment: e.a.Clone(),
			})
		}
	}

	return e.finish(inst, m, initialEdge, i, started)
}

// finish assembles the final report and cross-checks the central invariant:
// the live score vector must equal a from-scratch recomputation.
func (e *engine) finish(inst *problem.Instance, m, initialEdge, iters int, started time.Time) (Result, error) {
	recomputed, err := grid.PlayerScores(e.g, e.a, m)
	if err != nil {
		return Result{}, err
	}
	for k := 0; k < m; k++ {
		if recomputed[k] != e.scores[k] {
			return Result{}, ErrScoreDrift
		}
	}

	components, err := grid.RegionComponents(e.a, m)
	if err != nil {
		return Result{}, err
	}

	violations := make([]int, m)
	for k := 0; k < m; k++ {
		violations[k] = violation(e.reqs[k], e.scores[k])
	}

	return Result{
		Assignment:      e.a,
		EdgeDiff:        grid.EdgeDiff(e.a),
		InitialEdgeDiff: initialEdge,
		Scores:          e.scores,
		Requirements:    append([]int(nil), inst.Requirements...),
		Violations:      violations,
		Components:      components,
		Iterations:      iters,
		Elapsed:         time.Since(started),
	}, nil
}
