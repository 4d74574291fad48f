package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/sketchsnap/pkg/flatten"
	"github.com/chazu/sketchsnap/pkg/snap"
)

var (
	flattenSegments    int
	flattenNoConstruct bool
)

var boundsCmd = &cobra.Command{
	Use:   "bounds [file]",
	Short: "Print the bounding box of a sketch and its entities",
	Args:  cobra.ExactArgs(1),
	RunE:  runBounds,
}

var intersectCmd = &cobra.Command{
	Use:   "intersect [file]",
	Short: "List every pairwise intersection in a sketch",
	Args:  cobra.ExactArgs(1),
	RunE:  runIntersect,
}

var flattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Flatten every entity into a colored polyline",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlatten,
}

func init() {
	rootCmd.AddCommand(boundsCmd)
	rootCmd.AddCommand(intersectCmd)
	rootCmd.AddCommand(flattenCmd)
	flattenCmd.Flags().IntVar(&flattenSegments, "segments", flatten.DefaultOptions().CurveSegments, "Segments per full curve")
	flattenCmd.Flags().BoolVar(&flattenNoConstruct, "skip-construction", false, "Leave construction geometry out")
}

func runBounds(cmd *cobra.Command, args []string) error {
	app := NewApp(snap.DefaultSettings())
	res, err := loadSketch(cmd, app, args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), app.Bounds(res.Sketch))
}

func runIntersect(cmd *cobra.Command, args []string) error {
	app := NewApp(snap.DefaultSettings())
	res, err := loadSketch(cmd, app, args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), app.Intersections(res.Sketch))
}

func runFlatten(cmd *cobra.Command, args []string) error {
	app := NewApp(snap.DefaultSettings())
	res, err := loadSketch(cmd, app, args[0])
	if err != nil {
		return err
	}
	outlines, err := app.Outlines(res.Sketch, flatten.Options{
		CurveSegments:    flattenSegments,
		SkipConstruction: flattenNoConstruct,
	})
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), outlines)
}
