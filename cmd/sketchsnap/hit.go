package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/sketch"
	"github.com/chazu/sketchsnap/pkg/snap"
)

var (
	hitX, hitY float64
	hitTol     float64
	hitRegion  bool
)

var hitCmd = &cobra.Command{
	Use:   "hit [file]",
	Short: "List entities under a cursor position",
	Long: `List every entity whose outline passes within --tol of (--x, --y).
With --region, also list the closed entities whose interior contains the point.`,
	Args: cobra.ExactArgs(1),
	RunE: runHit,
}

func init() {
	rootCmd.AddCommand(hitCmd)
	hitCmd.Flags().Float64Var(&hitX, "x", 0, "Cursor X")
	hitCmd.Flags().Float64Var(&hitY, "y", 0, "Cursor Y")
	hitCmd.Flags().Float64Var(&hitTol, "tol", 5, "Hit tolerance")
	hitCmd.Flags().BoolVar(&hitRegion, "region", false, "Also test closed-entity interiors")
}

type hitOutput struct {
	Query  geom.Point2D      `json:"query"`
	Hits   []HitData         `json:"hits"`
	Inside []sketch.EntityID `json:"inside,omitempty"`
}

func runHit(cmd *cobra.Command, args []string) error {
	app := NewApp(snap.DefaultSettings())
	res, err := loadSketch(cmd, app, args[0])
	if err != nil {
		return err
	}

	p := geom.Point2D{X: hitX, Y: hitY}
	out := hitOutput{Query: p, Hits: app.Hits(res.Sketch, p, hitTol)}
	if hitRegion {
		out.Inside, err = app.Inside(res.Sketch, p)
		if err != nil {
			return err
		}
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
