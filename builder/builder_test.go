// Package builder_test exercises both construction strategies via the public
// API: capacity windows, satisfaction, fallback accounting, and the
// structural connectivity guarantee of the growth phase.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/QijunTong0/Connected-Subgraph-Problem/builder"
	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/prng"
	"github.com/QijunTong0/Connected-Subgraph-Problem/problem"
)

// mustInstance generates a deterministic instance for tests.
func mustInstance(t *testing.T, p problem.Params, seed uint32) *problem.Instance {
	t.Helper()
	inst, err := problem.Generate(p, prng.New(seed))
	require.NoError(t, err)

	return inst
}

// regionReachable runs a BFS from player k's seed over same-label cells and
// reports whether it covers every cell labeled k.
func regionReachable(a grid.Assignment, seed [2]int, label int) bool {
	n := a.N()
	if seed[0] < 0 {
		// Seedless player: connected iff it owns no cells at all.
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if a[r][c] == label {
					return false
				}
			}
		}

		return true
	}

	seen := make(map[[2]int]bool)
	queue := [][2]int{seed}
	seen[seed] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range grid.NeighborOffsets {
			v := [2]int{u[0] + d[0], u[1] + d[1]}
			if !grid.InBounds(n, v[0], v[1]) || a[v[0]][v[1]] != label || seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if a[r][c] == label && !seen[[2]int{r, c}] {
				return false
			}
		}
	}

	return true
}

// TestBuild_ContractErrors verifies the shared caller-side contract.
func TestBuild_ContractErrors(t *testing.T) {
	for _, s := range []builder.Strategy{builder.SeedGrow{}, builder.GreedyDescending{}} {
		_, err := s.Build(nil)
		require.ErrorIs(t, err, builder.ErrNilInstance)

		g, gerr := grid.NewGrid([][]int{{1, 1}, {1, 1}})
		require.NoError(t, gerr)
		_, err = s.Build(&problem.Instance{Grid: g, Requirements: nil})
		require.ErrorIs(t, err, builder.ErrNoRequirements)
	}
}

// TestSeedGrow_UniformSmall is the pinned scenario: n=5, m=2, all cell values
// 1, requirements 3 each. Growth alone satisfies both players; no fallback.
func TestSeedGrow_UniformSmall(t *testing.T) {
	inst := mustInstance(t, problem.Params{
		N: 5, M: 2,
		CellValueMin: 1, CellValueMax: 1,
		ReqMin: 3, ReqMax: 3,
	}, 42)

	res, err := builder.SeedGrow{}.Build(inst)
	require.NoError(t, err)

	require.Zero(t, res.FallbackCells, "uniform instance must be satisfiable by growth alone")
	require.Equal(t, []int{3, 3}, res.Scores)
	require.Equal(t, 25-6, res.Unclaimed, "each player claims exactly 3 unit cells")
	for k := 1; k <= 2; k++ {
		require.True(t, regionReachable(res.Assignment, res.Seeds[k-1], k),
			"player %d region must be connected to its seed", k)
	}
}

// TestSeedGrow_GrowthConnectivity checks the structural guarantee on larger
// random instances whenever the fallback pass did not run.
func TestSeedGrow_GrowthConnectivity(t *testing.T) {
	for seed := uint32(1); seed <= 8; seed++ {
		inst := mustInstance(t, problem.Params{
			N: 12, M: 5,
			CellValueMin: 1, CellValueMax: 9,
			ReqMin: 20, ReqMax: 40,
		}, seed)

		res, err := builder.SeedGrow{}.Build(inst)
		require.NoError(t, err)
		if res.FallbackCells > 0 {
			continue // only the growth phase guarantees connectivity
		}
		for k := 1; k <= 5; k++ {
			require.True(t, regionReachable(res.Assignment, res.Seeds[k-1], k),
				"seed=%d player %d region disconnected without fallback", seed, k)
		}
	}
}

// TestBuild_Invariants checks score consistency, label domain and the soft
// ceiling for both strategies across several instances.
func TestBuild_Invariants(t *testing.T) {
	strategies := map[string]builder.Strategy{
		"SeedGrow": builder.SeedGrow{},
		"Greedy":   builder.GreedyDescending{},
	}
	params := problem.Params{
		N: 10, M: 4,
		CellValueMin: 1, CellValueMax: 30,
		ReqMin: 50, ReqMax: 90,
	}
	for name, s := range strategies {
		t.Run(name, func(t *testing.T) {
			for seed := uint32(1); seed <= 5; seed++ {
				inst := mustInstance(t, params, seed)
				res, err := s.Build(inst)
				require.NoError(t, err)

				bounds := problem.UpperBounds(inst.Requirements)
				recomputed, err := grid.PlayerScores(inst.Grid, res.Assignment, params.M)
				require.NoError(t, err)
				require.Equal(t, recomputed, res.Scores, "live scores must match recomputation")
				for k := 0; k < params.M; k++ {
					require.LessOrEqual(t, res.Scores[k], bounds[k],
						"construction must respect the upper bound")
				}
			}
		})
	}
}

// TestBuild_Determinism verifies identical instances yield identical results.
func TestBuild_Determinism(t *testing.T) {
	params := problem.Params{
		N: 9, M: 3,
		CellValueMin: 1, CellValueMax: 9,
		ReqMin: 15, ReqMax: 30,
	}
	for _, s := range []builder.Strategy{builder.SeedGrow{}, builder.GreedyDescending{}} {
		a, err := s.Build(mustInstance(t, params, 77))
		require.NoError(t, err)
		b, err := s.Build(mustInstance(t, params, 77))
		require.NoError(t, err)

		require.True(t, a.Assignment.Equal(b.Assignment))
		require.Equal(t, a.Scores, b.Scores)
		require.Equal(t, a.Seeds, b.Seeds)
	}
}

// TestSeedGrow_SeedsSpread verifies one distinct seed per player on an
// instance where every seed claim fits.
func TestSeedGrow_SeedsSpread(t *testing.T) {
	inst := mustInstance(t, problem.Params{
		N: 12, M: 9,
		CellValueMin: 1, CellValueMax: 5,
		ReqMin: 10, ReqMax: 15,
	}, 3)

	res, err := builder.SeedGrow{}.Build(inst)
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for k, seed := range res.Seeds {
		require.GreaterOrEqual(t, seed[0], 0, "player %d should hold a seed", k+1)
		require.False(t, seen[seed], "seed %v claimed twice", seed)
		seen[seed] = true
	}
}

// TestGreedy_TightestWindow pins the tie-break on a crafted instance: the
// player with the smaller remaining window receives the first (highest) cell.
func TestGreedy_TightestWindow(t *testing.T) {
	g, err := grid.NewGrid([][]int{
		{5, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)
	// Bounds: player 1 → 12, player 2 → 10 (tighter window). Value 5 fits both.
	inst := &problem.Instance{Grid: g, Requirements: []int{10, 9}}

	res, err := builder.GreedyDescending{}.Build(inst)
	require.NoError(t, err)
	require.Equal(t, 2, res.Assignment[0][0], "tighter-window player must win the best cell")
}
