// Package search - option types, reports and sentinel errors.
//
// Design principles (shared with the rest of the module):
//   - Strict sentinels: no fmt.Errorf where a sentinel suffices.
//   - No logging, no panics on user input; internal contract violations
//     surface as sentinels too, since they indicate caller bugs.
//   - Options resolve once at Run entry; the loop never re-validates.
package search

import (
	"context"
	"errors"
	"time"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/prng"
)

// Sentinel errors for search operations.
var (
	// ErrNilInstance indicates a nil instance or nil grid.
	ErrNilInstance = errors.New("search: problem instance must be non-nil")
	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("search: random source must be non-nil")
	// ErrIterRange indicates a negative iteration budget.
	ErrIterRange = errors.New("search: iteration budget must be non-negative")
	// ErrLambdaRange indicates a negative requirement-penalty weight.
	ErrLambdaRange = errors.New("search: lambda must be non-negative")
	// ErrTempRange indicates a negative temperature, or a cooling floor that
	// is non-positive or above the initial temperature.
	ErrTempRange = errors.New("search: invalid temperature schedule")
	// ErrBiasRange indicates a boundary bias outside [0,1].
	ErrBiasRange = errors.New("search: boundary bias must be in [0,1]")
	// ErrShapeMismatch indicates initial assignment or score vector shapes
	// that do not match the instance. Caller-side contract violation.
	ErrShapeMismatch = errors.New("search: initial state shape mismatch")
	// ErrScoreDrift indicates the incrementally maintained score vector
	// diverged from a full recomputation. This is a programming error in the
	// engine, never a business condition.
	ErrScoreDrift = errors.New("search: incremental scores diverged from recomputation")
)

// AcceptancePolicy decides whether a proposed move is applied. delta is the
// composite loss change (edge delta + λ·violation delta); temp is the current
// temperature. Implementations must be deterministic given src.
type AcceptancePolicy interface {
	Accept(delta, temp float64, src *prng.Source) bool
}

// Options configures one search run. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// MaxIter is the exact number of loop iterations; each performs one swap
	// attempt and one reassign attempt. 0 runs no moves at all.
	MaxIter int

	// LambdaReq weighs the requirement-violation penalty; 0 disables it.
	LambdaReq float64

	// InitTemp is the initial annealing temperature T0; 0 disables annealing
	// and reduces acceptance to strict hill-climbing.
	InitTemp float64

	// TempFloor is the geometric-cooling floor Tmin, reached after MaxIter
	// steps: T(i) = T0·(Tmin/T0)^(i/MaxIter). Ignored when InitTemp is 0.
	TempFloor float64

	// BoundaryBias is the probability of proposing a boundary cell instead of
	// a uniform one. Almost all improving moves occur at existing boundaries;
	// the uniform remainder preserves exploration.
	BoundaryBias float64

	// RefreshEvery is the boundary-list rescan period in iterations;
	// 0 derives ⌈MaxIter/100⌉.
	RefreshEvery int

	// SnapshotEvery is the progress-report period in iterations;
	// 0 derives ⌈MaxIter/10⌉.
	SnapshotEvery int

	// Policy overrides the acceptance policy. nil derives it from InitTemp:
	// Metropolis when InitTemp > 0, HillClimb otherwise.
	Policy AcceptancePolicy

	// Ctx cancels a run between iterations; nil means never. Cancellation
	// discards the run's state and returns the context error.
	Ctx context.Context

	// OnStart and OnProgress receive reports during the run. Reports carry
	// deep copies, so callbacks may retain them; their execution cost is the
	// caller's concern. Either may be nil.
	OnStart    func(StartReport)
	OnProgress func(ProgressReport)
}

// DefaultOptions returns the baseline configuration: 10 000 hill-climbing
// iterations with the standard 0.8 boundary bias and no requirement penalty.
func DefaultOptions() Options {
	return Options{
		MaxIter:      10_000,
		TempFloor:    1e-3,
		BoundaryBias: 0.8,
	}
}

// validate checks option consistency; called once at Run entry.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.MaxIter < 0 {
		return ErrIterRange
	}
	if o.LambdaReq < 0 {
		return ErrLambdaRange
	}
	if o.InitTemp < 0 {
		return ErrTempRange
	}
	if o.InitTemp > 0 && (o.TempFloor <= 0 || o.TempFloor > o.InitTemp) {
		return ErrTempRange
	}
	if o.BoundaryBias < 0 || o.BoundaryBias > 1 {
		return ErrBiasRange
	}
	if o.RefreshEvery < 0 || o.SnapshotEvery < 0 {
		return ErrIterRange
	}

	return nil
}

// StartReport is emitted once before iteration 0.
type StartReport struct {
	// Grid is the immutable problem grid (safe to share).
	Grid *grid.Grid
	// Requirements is a copy of the requirement vector.
	Requirements []int
	// EdgeDiff is the boundary-edge count of the initial assignment.
	EdgeDiff int
}

// ProgressReport is emitted roughly ten times over a run.
type ProgressReport struct {
	// Iteration is the 1-based index of the just-finished iteration.
	Iteration int
	// EdgeDiff is a full recomputation at this checkpoint.
	EdgeDiff int
	// Assignment is a deep copy of the current partition.
	Assignment grid.Assignment
}

// Result is the final state of a run.
type Result struct {
	// Assignment is the final partition, owned by the caller from now on.
	Assignment grid.Assignment
	// EdgeDiff and InitialEdgeDiff are full recomputations at end and start.
	EdgeDiff        int
	InitialEdgeDiff int
	// Scores is the engine's live per-player score vector, cross-checked
	// against a full recomputation before Run returns.
	Scores []int
	// Requirements is a copy of the requirement vector.
	Requirements []int
	// Violations[k-1] is max(0, R_k − score_k); a positive entry means player
	// k could not be satisfied. That is a reported outcome, not an error.
	Violations []int
	// Components[k-1] counts the 4-connected components of player k's region;
	// values above 1 expose the accepted connectivity approximation.
	Components []int
	// Iterations is the number of loop iterations performed.
	Iterations int
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}
