package search

import (
	"math"

	"github.com/QijunTong0/Connected-Subgraph-Problem/prng"
)

// HillClimb accepts strictly improving moves only. It never consumes a random
// draw, so the move trajectory under HillClimb differs from Metropolis.
type HillClimb struct{}

// Accept reports delta < 0.
func (HillClimb) Accept(delta, _ float64, _ *prng.Source) bool {
	return delta < 0
}

// Metropolis accepts improving moves unconditionally and non-improving moves
// with probability exp(-delta/temp), the simulated-annealing criterion. With
// temp == 0 it degenerates to hill-climbing without consuming a draw.
type Metropolis struct{}

// Accept implements the Metropolis criterion. Exactly one Float64 draw is
// consumed when delta ≥ 0 and temp > 0; none otherwise.
func (Metropolis) Accept(delta, temp float64, src *prng.Source) bool {
	if delta < 0 {
		return true
	}
	if temp <= 0 {
		return false
	}

	return src.Float64() < math.Exp(-delta/temp)
}

// policyFor resolves the effective acceptance policy for the options.
func policyFor(o Options) AcceptancePolicy {
	if o.Policy != nil {
		return o.Policy
	}
	if o.InitTemp > 0 {
		return Metropolis{}
	}

	return HillClimb{}
}

// temperature returns the geometric-cooling temperature for iteration i:
// T(i) = T0·(Tmin/T0)^(i/maxIter). A zero initial temperature disables
// annealing entirely.
//
// Complexity: O(1), one Pow per iteration.
func temperature(o Options, i int) float64 {
	if o.InitTemp <= 0 {
		return 0
	}
	if o.MaxIter <= 0 {
		return o.InitTemp
	}

	return o.InitTemp * math.Pow(o.TempFloor/o.InitTemp, float64(i)/float64(o.MaxIter))
}
