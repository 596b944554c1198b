package grid

// NewGrid constructs a Grid from a non-empty, square 2D slice of non-negative
// scores. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonSquare or ErrNegativeValue on invalid input.
//
// Complexity: O(n²) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(values)
	for _, row := range values {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	cells := make([][]int, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if values[r][c] < 0 {
				return nil, ErrNegativeValue
			}
		}
		cells[r] = make([]int, n)
		copy(cells[r], values[r])
	}

	return &Grid{N: n, Cells: cells}, nil
}

// InBounds reports whether (r,c) lies within an n×n board.
// Complexity: O(1).
func InBounds(n, r, c int) bool {
	return r >= 0 && r < n && c >= 0 && c < n
}

// NewAssignment returns an n×n assignment with every cell Unclaimed.
// Complexity: O(n²).
func NewAssignment(n int) Assignment {
	a := make(Assignment, n)
	for r := 0; r < n; r++ {
		a[r] = make([]int, n)
	}

	return a
}

// N returns the board dimension.
func (a Assignment) N() int { return len(a) }

// Clone returns a deep copy of the assignment. Snapshots handed across the
// reporting boundary must be clones so consumers never observe in-progress
// mutation.
//
// Complexity: O(n²).
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for r := range a {
		out[r] = make([]int, len(a[r]))
		copy(out[r], a[r])
	}

	return out
}

// Equal reports whether two assignments hold identical labels cell for cell.
// Complexity: O(n²).
func (a Assignment) Equal(b Assignment) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}

	return true
}
