package builder

import (
	"sort"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/problem"
)

// GreedyDescending is the plain greedy construction strategy: every cell, in
// descending value order, goes to the unsatisfied player with the tightest
// remaining capacity window that can accept it. No connectivity bias; kept as
// the baseline the seed-and-grow strategy refined, and useful when region
// shape does not matter.
type GreedyDescending struct{}

// Build constructs the greedy initial assignment.
//
// Complexity: O(n²·(log n + m)).
func (GreedyDescending) Build(inst *problem.Instance) (Result, error) {
	if err := validate(inst); err != nil {
		return Result{}, err
	}

	var (
		g      = inst.Grid
		n      = g.N
		reqs   = inst.Requirements
		m      = len(reqs)
		bounds = problem.UpperBounds(reqs)
	)
	res := Result{
		Assignment: grid.NewAssignment(n),
		Scores:     make([]int, m),
		Seeds:      make([][2]int, m),
	}
	satisfied := make([]bool, m)
	for k := 0; k < m; k++ {
		res.Seeds[k] = [2]int{-1, -1}
		if reqs[k] == 0 {
			satisfied[k] = true
		}
	}

	cells := make([][2]int, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells = append(cells, [2]int{r, c})
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		vi, vj := g.Cells[cells[i][0]][cells[i][1]], g.Cells[cells[j][0]][cells[j][1]]
		if vi != vj {
			return vi > vj
		}
		if cells[i][0] != cells[j][0] {
			return cells[i][0] < cells[j][0]
		}

		return cells[i][1] < cells[j][1]
	})

	for _, cell := range cells {
		if allSatisfied(satisfied) {
			break
		}
		r, c := cell[0], cell[1]
		label := tightestEligible(g.Cells[r][c], reqs, bounds, res.Scores, satisfied)
		if label == 0 {
			continue
		}
		res.Assignment[r][c] = label
		res.Scores[label-1] += g.Cells[r][c]
		if res.Scores[label-1] >= reqs[label-1] {
			satisfied[label-1] = true
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if res.Assignment[r][c] == grid.Unclaimed {
				res.Unclaimed++
			}
		}
	}

	return res, nil
}
