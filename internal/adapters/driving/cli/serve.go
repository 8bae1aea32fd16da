package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/rest"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
)

// defaultListenAddr is used when no address is configured.
const defaultListenAddr = ":8080"

// ServeConfig holds the services the serve command needs.
type ServeConfig struct {
	Catalog driving.CatalogService

	// Addr is the listen address, host:port.
	Addr string
}

// serveConfig holds the current serve configuration.
var serveConfig *ServeConfig

// serveAddrFlag overrides the configured listen address.
var serveAddrFlag string

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the place catalog over HTTP",
	Long: `Serve the local place catalog as a small JSON API.

Endpoints:
  GET /places   - all catalogued places
  GET /healthz  - liveness probe`,
	RunE: runServe,
}

// SetServeConfig sets the configuration for the serve command.
func SetServeConfig(config *ServeConfig) {
	serveConfig = config
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "listen address (host:port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveConfig == nil {
		return fmt.Errorf("serve: not configured")
	}

	addr := serveConfig.Addr
	if serveAddrFlag != "" {
		addr = serveAddrFlag
	}
	if addr == "" {
		addr = defaultListenAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := rest.NewServer(addr, serveConfig.Catalog)
	return server.Start(ctx)
}
