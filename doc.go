// Package claimgrid solves an approximate grid-partition assignment problem:
// m players claim cells of an n×n scored grid, every player must collect at
// least its required score, and player regions should stay compact: few
// boundary edges shared with other players or unclaimed cells.
//
// Exact per-player connectivity is intractable at this scale, so the engine
// minimizes a connectivity proxy (the boundary-edge count) instead and makes a
// best effort on connectivity during construction. The result is a local
// optimum, not a certified one.
//
// Pipeline:
//
//	seed → problem.Generate → builder (seed-and-grow) → search.Run → Result
//
// Everything is organized under five subpackages:
//
//	prng/    - deterministic seeded random source; the only entropy in the module
//	grid/    - Grid, Assignment, boundary/score diagnostics
//	problem/ - reproducible grid + requirement generation
//	builder/ - initial-assignment strategies (seed-and-grow, greedy)
//	search/  - incremental local search with hill-climbing or annealing
//
// Determinism is a contract: identical parameters and seed reproduce the grid,
// the requirement vector, the move trajectory, and the final assignment bit
// for bit. A small CLI under cmd/claimgrid drives the pipeline, logs progress
// and renders assignment heatmaps.
//
//	go get github.com/QijunTong0/Connected-Subgraph-Problem
package claimgrid
