package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// spyCmd renders the sparsity pattern of a matrix as a scatter plot
var spyCmd = &cobra.Command{
	Use:   "spy [m.txt] [out.png]",
	Short: "Plot the sparsity pattern of a matrix to an image file",
	Long: `Renders one point per non-zero entry, with columns on the X axis and
rows on the Y axis (row 0 at the top, as in printed matrix notation).
The output format follows the file extension (.png, .svg, .pdf, ...).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("sparsity %dx%d, %d entries", m.Rows(), m.Cols(), m.Len())
		p.X.Label.Text = "col"
		p.Y.Label.Text = "row"
		p.X.Min, p.X.Max = -0.5, float64(m.Cols())-0.5
		p.Y.Min, p.Y.Max = -0.5, float64(m.Rows())-0.5

		pts := make(plotter.XYs, 0, m.Len())
		for _, e := range m.NonZero() {
			// Flip rows so row 0 renders at the top.
			pts = append(pts, plotter.XY{X: float64(e.Col), Y: float64(m.Rows() - 1 - e.Row)})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("build scatter: %w", err)
		}
		scatter.GlyphStyle.Radius = vg.Points(2)
		p.Add(scatter)

		if err = p.Save(6*vg.Inch, 6*vg.Inch, args[1]); err != nil {
			return fmt.Errorf("save %s: %w", args[1], err)
		}
		logger.Info("sparsity plot written",
			zap.String("path", args[1]),
			zap.Int("entries", m.Len()))

		return nil
	},
}
