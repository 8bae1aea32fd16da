package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
)

// TUIConfig holds the services the TUI command needs.
type TUIConfig struct {
	MapService   driving.MapService
	PlaceService driving.PlaceService

	// Categories is the marker filter cycle.
	Categories []string

	// CenterLat and CenterLng seed the viewport before the map loads.
	// Both zero means the built-in default.
	CenterLat float64
	CenterLng float64
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive map",
	Long: `Launch the interactive terminal map.

Browse your placemarks, place new ones, and read or review place
details stored on your pod.

Controls:
  ↑/k ↓/j ←/h →/l - Move the cursor
  Enter           - Confirm position / open marker
  p               - Toggle placing mode
  f               - Cycle category filter
  Esc             - Back
  q               - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if tuiConfig == nil {
		return fmt.Errorf("tui: not configured")
	}

	app, err := tui.NewApp(tui.NewPorts(tuiConfig.MapService, tuiConfig.PlaceService))
	if err != nil {
		return fmt.Errorf("starting tui: %w", err)
	}
	app.WithContext(cmd.Context()).
		WithCategories(tuiConfig.Categories).
		WithCenter(tuiConfig.CenterLat, tuiConfig.CenterLng)

	return app.Run()
}
