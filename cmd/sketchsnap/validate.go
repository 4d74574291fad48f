package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/sketchsnap/pkg/snap"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Evaluate a sketch and report errors and warnings",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	app := NewApp(snap.DefaultSettings())
	res, err := app.Load(args[0])
	if err != nil {
		return err
	}
	if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if !res.OK() {
		return errSketchInvalid
	}
	return nil
}
