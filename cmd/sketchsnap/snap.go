package main

import (
	"github.com/spf13/cobra"

	"github.com/chazu/sketchsnap/pkg/geom"
	"github.com/chazu/sketchsnap/pkg/snap"
)

var (
	snapX, snapY   float64
	snapGrid       float64
	snapDistance   float64
	snapSettings   string
	snapNoGrid     bool
	snapNoEndpoint bool
)

var snapCmd = &cobra.Command{
	Use:   "snap [file]",
	Short: "Resolve the snap target for a cursor position",
	Long: `Evaluate the sketch and resolve where a cursor at (--x, --y) snaps.
Settings come from --settings (TOML) when given; flags override them.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnap,
}

func init() {
	rootCmd.AddCommand(snapCmd)
	snapCmd.Flags().Float64Var(&snapX, "x", 0, "Cursor X")
	snapCmd.Flags().Float64Var(&snapY, "y", 0, "Cursor Y")
	snapCmd.Flags().Float64Var(&snapGrid, "grid", 10, "Grid spacing")
	snapCmd.Flags().Float64Var(&snapDistance, "distance", snap.DefaultSnapDistance, "Snap tolerance")
	snapCmd.Flags().StringVar(&snapSettings, "settings", "", "TOML snap settings file")
	snapCmd.Flags().BoolVar(&snapNoGrid, "no-grid", false, "Disable grid snapping")
	snapCmd.Flags().BoolVar(&snapNoEndpoint, "no-endpoint", false, "Disable endpoint snapping")
}

// snapSettingsFromFlags loads the settings file, if any, and applies the
// flags the user set explicitly.
func snapSettingsFromFlags(cmd *cobra.Command) (snap.Settings, error) {
	settings := snap.DefaultSettings()
	if snapSettings != "" {
		loaded, err := snap.LoadSettings(snapSettings)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("distance") {
		settings.SnapDistance = snapDistance
	}
	if flags.Changed("no-grid") {
		settings.Grid = !snapNoGrid
	}
	if flags.Changed("no-endpoint") {
		settings.Endpoint = !snapNoEndpoint
	}
	return settings, settings.Validate()
}

func runSnap(cmd *cobra.Command, args []string) error {
	settings, err := snapSettingsFromFlags(cmd)
	if err != nil {
		return err
	}

	app := NewApp(settings)
	if _, err := loadSketch(cmd, app, args[0]); err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), app.Snap(geom.Point2D{X: snapX, Y: snapY}, snapGrid))
}
