// Package cli implements the lomap command-line interface using cobra.
// Commands receive their services through Set*Config injection points
// so main stays the single composition root.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lomap-labs/lomap-cli/internal/logger"
)

// version is injected at build time via SetVersion.
var version = "dev"

// verboseFlag enables debug logging.
var verboseFlag bool

// rootCmd is the base command for lomap.
var rootCmd = &cobra.Command{
	Use:   "lomap",
	Short: "Personal places on your own pod",
	Long: `LoMap keeps a map of your places in a container you own.

Placemarks and place details are stored on your pod; this machine only
holds configuration and a local catalog for the serving surface.

Run 'lomap tui' for the interactive map, or 'lomap serve' to expose the
place catalog over HTTP.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	// Bare "lomap" launches the map.
	RunE: runTUI,
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}
