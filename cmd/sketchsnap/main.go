package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/sketchsnap/pkg/snap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sketchsnap",
	Short: "Evaluate 2D sketches and query snap, hit and intersection results",
	Long: `sketchsnap evaluates a sketch script and answers the questions an
interactive sketch editor asks: where the cursor snaps, which entity is
under it, where entities cross and how the sketch is bounded.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			snap.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log snap resolution to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// loadSketch evaluates the script at path. Evaluation errors are printed
// as JSON and reported as errSketchInvalid.
func loadSketch(cmd *cobra.Command, app *App, path string) (EvalResult, error) {
	res, err := app.Load(path)
	if err != nil {
		return res, err
	}
	if !res.OK() {
		if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
			return res, err
		}
		return res, errSketchInvalid
	}
	return res, nil
}
