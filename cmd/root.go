// ABOUTME: Root command for the crudadmin CLI
// ABOUTME: Handles global flags and configuration, and launches the TUI by default

package cmd

import (
	"github.com/Mossaabs03254/My-CRUd-App/internal/config"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
	configDir  string
)

// envFile is read before the environment on every invocation
const envFile = ".env"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "crudadmin",
	Short: "Admin console for the users service",
	Long: `crudadmin signs an operator in to the users service and manages user records,
either through the full-screen console (the default) or through subcommands.

Environment Variables:
  CRUDADMIN_API_URL          Service base URL (default: http://localhost:5000)
  CRUDADMIN_CONFIG_DIR       Where the session and debug.log are kept
  CRUDADMIN_REQUEST_TIMEOUT  Per-request timeout (default: 30s, 0 disables)
  LOG_LEVEL, LOG_FORMAT      debug.log verbosity and format (text, json)`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Service base URL (overrides CRUDADMIN_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for session state and logs (overrides CRUDADMIN_CONFIG_DIR)")
}

// loadConfig resolves configuration from flags, environment, .env and defaults
// (in priority order)
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Override(apiURL, configDir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
