// Package problem generates reproducible problem instances: the scored grid
// and the per-player requirement vector.
//
// Draw order is contractual. Given one prng.Source, Generate draws all n²
// cell values in row-major order (one draw each), then the m requirements.
// Reordering the draws would silently change every downstream trajectory, so
// it must never happen.
package problem

import (
	"errors"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/prng"
)

// Sentinel errors for parameter validation.
var (
	// ErrDimensionRange indicates n outside [5,20].
	ErrDimensionRange = errors.New("problem: grid dimension must be in [5,20]")
	// ErrPlayerRange indicates m outside [2,15].
	ErrPlayerRange = errors.New("problem: player count must be in [2,15]")
	// ErrCellValueRange indicates an invalid cell-value range.
	ErrCellValueRange = errors.New("problem: cell-value range must satisfy 1 ≤ min ≤ max")
	// ErrRequirementRange indicates an invalid requirement range.
	ErrRequirementRange = errors.New("problem: requirement range must satisfy 0 ≤ min ≤ max")
)

// Params describes one problem instance to generate.
type Params struct {
	// N is the grid dimension (n×n board).
	N int
	// M is the number of players.
	M int
	// CellValueMin/Max bound the uniform cell-score draw, inclusive.
	CellValueMin int
	CellValueMax int
	// ReqMin/Max bound the uniform per-player requirement draw, inclusive.
	ReqMin int
	ReqMax int
}

// Validate checks the documented parameter domains. The CLI re-checks its
// flags, but the library is usable directly, so the boundary validation also
// lives here. Downstream code assumes these domains hold.
//
// Complexity: O(1).
func (p Params) Validate() error {
	if p.N < 5 || p.N > 20 {
		return ErrDimensionRange
	}
	if p.M < 2 || p.M > 15 {
		return ErrPlayerRange
	}
	if p.CellValueMin < 1 || p.CellValueMin > p.CellValueMax {
		return ErrCellValueRange
	}
	if p.ReqMin < 0 || p.ReqMin > p.ReqMax {
		return ErrRequirementRange
	}

	return nil
}

// Instance is a generated problem: the immutable grid and requirement vector.
type Instance struct {
	Grid *grid.Grid
	// Requirements[k-1] is player k's minimum score.
	Requirements []int
}

// Generate produces a problem instance from validated params and a source.
//
// Contract: cell values first (row-major, uniform in [CellValueMin,
// CellValueMax]), then requirements (uniform in [ReqMin, ReqMax]).
//
// Complexity: O(n² + m).
func Generate(p Params, src *prng.Source) (*Instance, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	values := make([][]int, p.N)
	var r, c int
	for r = 0; r < p.N; r++ {
		values[r] = make([]int, p.N)
		for c = 0; c < p.N; c++ {
			values[r][c] = src.IntRange(p.CellValueMin, p.CellValueMax)
		}
	}
	g, err := grid.NewGrid(values)
	if err != nil {
		return nil, err
	}

	reqs := make([]int, p.M)
	var k int
	for k = 0; k < p.M; k++ {
		reqs[k] = src.IntRange(p.ReqMin, p.ReqMax)
	}

	return &Instance{Grid: g, Requirements: reqs}, nil
}

// UpperBounds derives the soft per-player score ceiling ⌊1.2·R_k⌋, computed
// in exact integer arithmetic (R·6/5) so the determinism contract does not
// depend on floating-point rounding. The ceiling discourages, but under
// annealing does not strictly forbid, over-allocating one player.
//
// Complexity: O(m).
func UpperBounds(requirements []int) []int {
	bounds := make([]int, len(requirements))
	for k, req := range requirements {
		bounds[k] = req * 6 / 5
	}

	return bounds
}
