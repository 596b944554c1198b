package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/QijunTong0/Connected-Subgraph-Problem/grid"
)

// labelGrid adapts an assignment to plotter.GridXYZ. Rows are flipped so row
// 0 renders at the top, matching the row-major mental model of the board.
type labelGrid struct {
	a grid.Assignment
}

func (g labelGrid) Dims() (int, int)   { return g.a.N(), g.a.N() }
func (g labelGrid) X(c int) float64    { return float64(c) }
func (g labelGrid) Y(r int) float64    { return float64(r) }
func (g labelGrid) Z(c, r int) float64 { return float64(g.a[g.a.N()-1-r][c]) }

// renderHeatmap writes the final assignment as a heatmap PNG: one color band
// per label, unclaimed cells at the cold end.
func renderHeatmap(a grid.Assignment, m int, path string) error {
	p := plot.New()
	p.Title.Text = "Assignment"
	p.HideAxes()

	h := plotter.NewHeatMap(labelGrid{a: a}, palette.Heat(m+1, 1))
	p.Add(h)

	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}

// progressPoint is one sampled (iteration, edge count) pair.
type progressPoint struct {
	iteration int
	edgeDiff  int
}

// renderConvergence writes the boundary-edge count over iterations.
func renderConvergence(curve []progressPoint, path string) error {
	p := plot.New()
	p.Title.Text = "Boundary edges over iterations"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Edge count"

	pts := make(plotter.XYs, len(curve))
	for i, cp := range curve {
		pts[i].X = float64(cp.iteration)
		pts[i].Y = float64(cp.edgeDiff)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add("edge_diff", line)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
