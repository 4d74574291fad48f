package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/snap"
)

var (
	pickX, pickY float64
	pickTol      float64
)

var pickCmd = &cobra.Command{
	Use:   "pick [file]",
	Short: "Pick the entity a click would select",
	Args:  cobra.ExactArgs(1),
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
	pickCmd.Flags().Float64Var(&pickX, "x", 0, "Click X")
	pickCmd.Flags().Float64Var(&pickY, "y", 0, "Click Y")
	pickCmd.Flags().Float64Var(&pickTol, "tol", 5, "Hit tolerance")
}

type pickOutput struct {
	Query  geom.Point2D `json:"query"`
	Picked *HitData     `json:"picked"`
}

func runPick(cmd *cobra.Command, args []string) error {
	app := NewApp(snap.DefaultSettings())
	res, err := loadSketch(cmd, app, args[0])
	if err != nil {
		return err
	}

	p := geom.Point2D{X: pickX, Y: pickY}
	out := pickOutput{Query: p}
	if hit, ok := app.Pick(res.Sketch, p, pickTol); ok {
		out.Picked = &hit
	}
	return writeJSON(cmd.OutOrStdout(), out)
}
