package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driven/config/file"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
)

// AuthConfig holds the stores the auth commands need.
type AuthConfig struct {
	Config driven.ConfigStore
}

// authConfig holds the current auth configuration.
var authConfig *AuthConfig

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage pod credentials",
	Long: `Configure the pod this machine writes to.

The token is stored in the local config file with restricted
permissions and sent as a bearer token on every container request.

Examples:
  # Interactive token entry
  lomap auth login --server https://pod.example --webid https://pod.example/profile/card#me

  # Show the configured identity
  lomap auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store pod server, WebID and access token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured pod identity",
	RunE:  runAuthStatus,
}

// Flags for auth login.
var (
	authLoginServer string
	authLoginWebID  string
	authLoginToken  string
)

// SetAuthConfig sets the configuration for the auth commands.
func SetAuthConfig(config *AuthConfig) {
	authConfig = config
}

func init() {
	authLoginCmd.Flags().StringVar(&authLoginServer, "server", "", "pod server URL")
	authLoginCmd.Flags().StringVar(&authLoginWebID, "webid", "", "WebID URL")
	authLoginCmd.Flags().StringVar(&authLoginToken, "token", "", "access token (omit to enter interactively)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if authConfig == nil {
		return fmt.Errorf("auth: not configured")
	}

	server := strings.TrimSpace(authLoginServer)
	if server == "" {
		return fmt.Errorf("auth: --server is required")
	}
	webID := strings.TrimSpace(authLoginWebID)
	if webID == "" {
		return fmt.Errorf("auth: --webid is required")
	}

	token := authLoginToken
	if token == "" {
		// Read the token without echoing it.
		cmd.Print("Access token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return fmt.Errorf("auth: token must not be empty")
	}

	if err := authConfig.Config.Set(file.KeyPodServer, server); err != nil {
		return fmt.Errorf("saving server: %w", err)
	}
	if err := authConfig.Config.Set(file.KeyWebID, webID); err != nil {
		return fmt.Errorf("saving webid: %w", err)
	}
	if err := authConfig.Config.Set(file.KeyToken, token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	cmd.Printf("Configured pod %s for %s\n", server, webID)
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if authConfig == nil {
		return fmt.Errorf("auth: not configured")
	}

	server := authConfig.Config.GetString(file.KeyPodServer)
	webID := authConfig.Config.GetString(file.KeyWebID)
	hasToken := authConfig.Config.GetString(file.KeyToken) != ""

	if server == "" {
		cmd.Println("Not configured. Run 'lomap auth login'.")
		return nil
	}

	cmd.Printf("Server: %s\n", server)
	cmd.Printf("WebID:  %s\n", webID)
	if hasToken {
		cmd.Println("Token:  set")
	} else {
		cmd.Println("Token:  missing")
	}
	return nil
}
