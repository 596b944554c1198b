// Package grid defines the data model shared by the whole module: the scored
// grid, the player-label assignment matrix, and sentinel errors.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonSquare indicates the input is not an n×n matrix.
	ErrNonSquare = errors.New("grid: input must be square")
	// ErrNegativeValue indicates a negative cell score.
	ErrNegativeValue = errors.New("grid: cell scores must be non-negative")
	// ErrShapeMismatch indicates grid and assignment dimensions differ.
	// This is a caller-side contract violation, not a runtime condition.
	ErrShapeMismatch = errors.New("grid: grid and assignment shapes differ")
	// ErrLabelRange indicates an assignment label outside {0..m}.
	ErrLabelRange = errors.New("grid: assignment label out of range")
)

// Unclaimed is the label of a cell no player owns.
const Unclaimed = 0

// NeighborOffsets lists the 4-neighborhood in fixed (row, col) order:
// up, right, down, left. The order is shared by every traversal in the module
// so that frontier insertion order (and with it the whole trajectory) is
// reproducible.
var NeighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an n×n matrix of non-negative integer cell scores, immutable for
// the lifetime of a run. Cells[r][c] is the score of row r, column c.
type Grid struct {
	N     int
	Cells [][]int
}

// Assignment is an n×n matrix of player labels in {0..m}; Unclaimed (0) means
// no owner. A cell holds exactly one label by construction. The local-search
// engine mutates an Assignment in place for the duration of a run.
type Assignment [][]int
