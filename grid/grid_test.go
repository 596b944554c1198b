package grid_test

import (
	"errors"
	"testing"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
)

//----------------------------------------------------------------------------//
// NewGrid and Assignment basics
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged and negative inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
		err    error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"Ragged", [][]int{{1, 2}, {3}}, grid.ErrNonSquare},
		{"Rectangular", [][]int{{1, 2, 3}, {4, 5, 6}}, grid.ErrNonSquare},
		{"Negative", [][]int{{1, 2}, {-3, 4}}, grid.ErrNegativeValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.values)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.values, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy verifies later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := grid.NewGrid(values)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	values[0][0] = 99
	if g.Cells[0][0] != 1 {
		t.Errorf("grid shares storage with input: Cells[0][0]=%d", g.Cells[0][0])
	}
}

// TestAssignmentCloneIndependence verifies Clone yields detached storage.
func TestAssignmentCloneIndependence(t *testing.T) {
	a := grid.NewAssignment(3)
	a[1][1] = 2
	b := a.Clone()
	b[1][1] = 5
	if a[1][1] != 2 {
		t.Errorf("Clone shares storage: a[1][1]=%d", a[1][1])
	}
	if !a.Equal(a.Clone()) {
		t.Error("Equal(Clone()) = false; want true")
	}
	if a.Equal(b) {
		t.Error("Equal reported divergent assignments as equal")
	}
}

//----------------------------------------------------------------------------//
// Boundary measures
//----------------------------------------------------------------------------//

// TestLocalBoundary checks corner, edge and interior cells on a fixed board.
func TestLocalBoundary(t *testing.T) {
	// 1 1 2
	// 1 2 2
	// 0 1 2
	a := grid.Assignment{
		{1, 1, 2},
		{1, 2, 2},
		{0, 1, 2},
	}
	cases := []struct {
		r, c, want int
	}{
		{0, 0, 0}, // corner, both neighbors same
		{0, 2, 1}, // corner, one differing neighbor
		{1, 1, 3}, // interior, three differing neighbors
		{2, 0, 2}, // corner, both neighbors differ
		{2, 1, 3}, // edge cell, all three differ
	}
	for _, tc := range cases {
		if got := grid.LocalBoundary(a, tc.r, tc.c); got != tc.want {
			t.Errorf("LocalBoundary(%d,%d)=%d; want %d", tc.r, tc.c, got, tc.want)
		}
	}
}

// TestEdgeDiff cross-checks the full recount against hand-counted boards and
// against the sum-of-local identity 2·EdgeDiff == Σ LocalBoundary.
func TestEdgeDiff(t *testing.T) {
	cases := []struct {
		name string
		a    grid.Assignment
		want int
	}{
		{"Uniform", grid.Assignment{{1, 1}, {1, 1}}, 0},
		{"Checker", grid.Assignment{{1, 2}, {2, 1}}, 4},
		{"Split", grid.Assignment{{1, 1, 2}, {1, 1, 2}, {1, 1, 2}}, 3},
		{"Mixed", grid.Assignment{{1, 1, 2}, {1, 2, 2}, {0, 1, 2}}, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grid.EdgeDiff(tc.a); got != tc.want {
				t.Errorf("EdgeDiff=%d; want %d", got, tc.want)
			}
			var localSum int
			for r := range tc.a {
				for c := range tc.a[r] {
					localSum += grid.LocalBoundary(tc.a, r, c)
				}
			}
			if localSum != 2*tc.want {
				t.Errorf("Σ LocalBoundary=%d; want %d", localSum, 2*tc.want)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Score recomputation
//----------------------------------------------------------------------------//

// TestPlayerScores recomputes totals on a fixed instance.
func TestPlayerScores(t *testing.T) {
	g, err := grid.NewGrid([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	a := grid.Assignment{
		{1, 1, 0},
		{2, 2, 1},
		{0, 2, 2},
	}
	scores, err := grid.PlayerScores(g, a, 2)
	if err != nil {
		t.Fatalf("PlayerScores error: %v", err)
	}
	if scores[0] != 1+2+6 {
		t.Errorf("player 1 score=%d; want %d", scores[0], 9)
	}
	if scores[1] != 4+5+8+9 {
		t.Errorf("player 2 score=%d; want %d", scores[1], 26)
	}
}

// TestPlayerScores_Errors verifies shape and label contract violations surface
// as sentinels.
func TestPlayerScores_Errors(t *testing.T) {
	g, _ := grid.NewGrid([][]int{{1, 2}, {3, 4}})

	if _, err := grid.PlayerScores(g, grid.NewAssignment(3), 2); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("shape mismatch error = %v; want ErrShapeMismatch", err)
	}
	bad := grid.Assignment{{0, 3}, {0, 0}}
	if _, err := grid.PlayerScores(g, bad, 2); !errors.Is(err, grid.ErrLabelRange) {
		t.Errorf("label range error = %v; want ErrLabelRange", err)
	}
}

//----------------------------------------------------------------------------//
// RegionComponents
//----------------------------------------------------------------------------//

// TestRegionComponents counts connected regions per player.
func TestRegionComponents(t *testing.T) {
	// Player 1: an L-shaped region plus an isolated cell. Player 2: two separated cells.
	a := grid.Assignment{
		{1, 1, 2},
		{1, 0, 0},
		{2, 0, 1},
	}
	comps, err := grid.RegionComponents(a, 2)
	if err != nil {
		t.Fatalf("RegionComponents error: %v", err)
	}
	if comps[0] != 2 {
		t.Errorf("player 1 components=%d; want 2", comps[0])
	}
	if comps[1] != 2 {
		t.Errorf("player 2 components=%d; want 2", comps[1])
	}

	empty := grid.NewAssignment(4)
	comps, err = grid.RegionComponents(empty, 3)
	if err != nil {
		t.Fatalf("RegionComponents error: %v", err)
	}
	for k, c := range comps {
		if c != 0 {
			t.Errorf("player %d components=%d on empty board; want 0", k+1, c)
		}
	}
}
