package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/QijunTong0/Connected-Subgraph-Problem/builder"
	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
	"github.com/QijunTong0/Connected-Subgraph-Problem/prng"
	"github.com/QijunTong0/Connected-Subgraph-Problem/problem"
	"github.com/QijunTong0/Connected-Subgraph-Problem/search"
)

// Iteration-budget domain enforced here; the library packages assume
// validated input.
const (
	minIterBudget = 1_000
	maxIterBudget = 500_000
)

var configFile string

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate an instance and run the local search",
		RunE:  runSolve,
	}

	solveCmd.Flags().Uint32("seed", 42, "Determinism key for the whole run")
	solveCmd.Flags().Int("n", 12, "Grid dimension (5-20)")
	solveCmd.Flags().Int("m", 10, "Player count (2-15)")
	solveCmd.Flags().Int("cell-min", 1, "Minimum cell score (≥1)")
	solveCmd.Flags().Int("cell-max", 30, "Maximum cell score")
	solveCmd.Flags().Int("req-min", 150, "Minimum player requirement (≥0)")
	solveCmd.Flags().Int("req-max", 200, "Maximum player requirement")
	solveCmd.Flags().Int("max-iter", 100_000, "Iteration budget (1000-500000)")
	solveCmd.Flags().Float64("lambda", 0, "Requirement-penalty weight (0 disables)")
	solveCmd.Flags().Float64("temp", 0, "Initial annealing temperature (0 disables)")
	solveCmd.Flags().Float64("temp-floor", 1e-3, "Geometric-cooling floor")
	solveCmd.Flags().String("strategy", "seedgrow", "Initial construction: seedgrow|greedy")
	solveCmd.Flags().String("out", "output", "Output directory for JSON and PNG artifacts")
	solveCmd.Flags().Bool("plot", true, "Render heatmap and convergence PNGs")
	solveCmd.Flags().StringVar(&configFile, "config", "", "Optional config file providing flag defaults")

	rootCmd.AddCommand(solveCmd)
}

// settings is the resolved flag/config view of one run.
type settings struct {
	seed                    uint32
	params                  problem.Params
	maxIter                 int
	lambda, temp, tempFloor float64
	strategy, outDir        string
	plot                    bool
}

// resolveSettings merges the config file (if any) under the flags.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return settings{}, err
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("reading config: %w", err)
		}
	}

	st := settings{
		seed: v.GetUint32("seed"),
		params: problem.Params{
			N: v.GetInt("n"), M: v.GetInt("m"),
			CellValueMin: v.GetInt("cell-min"), CellValueMax: v.GetInt("cell-max"),
			ReqMin: v.GetInt("req-min"), ReqMax: v.GetInt("req-max"),
		},
		maxIter:   v.GetInt("max-iter"),
		lambda:    v.GetFloat64("lambda"),
		temp:      v.GetFloat64("temp"),
		tempFloor: v.GetFloat64("temp-floor"),
		strategy:  v.GetString("strategy"),
		outDir:    v.GetString("out"),
		plot:      v.GetBool("plot"),
	}

	if err := st.params.Validate(); err != nil {
		return settings{}, err
	}
	if st.maxIter < minIterBudget || st.maxIter > maxIterBudget {
		return settings{}, fmt.Errorf("max-iter %d outside [%d,%d]", st.maxIter, minIterBudget, maxIterBudget)
	}
	if st.lambda < 0 || st.temp < 0 {
		return settings{}, fmt.Errorf("lambda and temp must be non-negative")
	}

	return st, nil
}

// resultDump is the JSON artifact schema.
type resultDump struct {
	RunID           string          `json:"run_id"`
	Seed            uint32          `json:"seed"`
	Grid            [][]int         `json:"grid"`
	Requirements    []int           `json:"requirements"`
	Assignment      grid.Assignment `json:"assignment"`
	Scores          []int           `json:"scores"`
	Violations      []int           `json:"violations"`
	Components      []int           `json:"components"`
	InitialEdgeDiff int             `json:"initial_edge_diff"`
	FinalEdgeDiff   int             `json:"final_edge_diff"`
	Iterations      int             `json:"iterations"`
	ElapsedMS       int64           `json:"elapsed_ms"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	rlog := log.WithFields(logrus.Fields{"run": runID[:8], "seed": st.seed})

	src := prng.New(st.seed)
	inst, err := problem.Generate(st.params, src)
	if err != nil {
		return err
	}
	rlog.WithFields(logrus.Fields{
		"n": st.params.N, "m": st.params.M,
	}).Info("instance generated")

	var strategy builder.Strategy
	switch st.strategy {
	case "seedgrow":
		strategy = builder.SeedGrow{}
	case "greedy":
		strategy = builder.GreedyDescending{}
	default:
		return fmt.Errorf("unknown strategy %q (want seedgrow or greedy)", st.strategy)
	}
	init, err := strategy.Build(inst)
	if err != nil {
		return err
	}
	rlog.WithFields(logrus.Fields{
		"fallback_cells": init.FallbackCells,
		"unclaimed":      init.Unclaimed,
	}).Info("initial assignment built")

	opts := search.DefaultOptions()
	opts.MaxIter = st.maxIter
	opts.LambdaReq = st.lambda
	opts.InitTemp = st.temp
	opts.TempFloor = st.tempFloor
	opts.Ctx = cmd.Context()

	var curve []progressPoint
	started := time.Now()
	opts.OnStart = func(r search.StartReport) {
		curve = append(curve, progressPoint{iteration: 0, edgeDiff: r.EdgeDiff})
		rlog.WithField("edge_diff", r.EdgeDiff).Info("search started")
	}
	opts.OnProgress = func(p search.ProgressReport) {
		curve = append(curve, progressPoint{iteration: p.Iteration, edgeDiff: p.EdgeDiff})
		rlog.WithFields(logrus.Fields{
			"iter":      p.Iteration,
			"edge_diff": p.EdgeDiff,
			"elapsed":   time.Since(started).Round(time.Millisecond),
		}).Info("progress")
	}

	res, err := search.Run(inst, init.Assignment, init.Scores, src, opts)
	if err != nil {
		return err
	}
	rlog.WithFields(logrus.Fields{
		"edge_diff": res.EdgeDiff,
		"improved":  res.InitialEdgeDiff - res.EdgeDiff,
		"elapsed":   res.Elapsed.Round(time.Millisecond),
	}).Info("search finished")
	for k := range res.Violations {
		if res.Violations[k] > 0 {
			rlog.WithFields(logrus.Fields{
				"player":  k + 1,
				"deficit": res.Violations[k],
			}).Warn("player requirement not met")
		}
	}
	for k := range res.Components {
		if res.Components[k] > 1 {
			rlog.WithFields(logrus.Fields{
				"player":     k + 1,
				"components": res.Components[k],
			}).Info("player region fragmented")
		}
	}

	if err = os.MkdirAll(st.outDir, 0o755); err != nil {
		return err
	}
	base := filepath.Join(st.outDir, "run-"+runID[:8])

	dump := resultDump{
		RunID:           runID,
		Seed:            st.seed,
		Grid:            inst.Grid.Cells,
		Requirements:    res.Requirements,
		Assignment:      res.Assignment,
		Scores:          res.Scores,
		Violations:      res.Violations,
		Components:      res.Components,
		InitialEdgeDiff: res.InitialEdgeDiff,
		FinalEdgeDiff:   res.EdgeDiff,
		Iterations:      res.Iterations,
		ElapsedMS:       res.Elapsed.Milliseconds(),
	}
	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}
	if err = os.WriteFile(base+".json", data, 0o644); err != nil {
		return err
	}
	rlog.WithField("path", base+".json").Info("result written")

	if st.plot {
		if err = renderHeatmap(res.Assignment, st.params.M, base+"-assignment.png"); err != nil {
			return fmt.Errorf("rendering heatmap: %w", err)
		}
		if err = renderConvergence(curve, base+"-convergence.png"); err != nil {
			return fmt.Errorf("rendering convergence: %w", err)
		}
		rlog.WithField("dir", st.outDir).Info("charts written")
	}

	return nil
}
