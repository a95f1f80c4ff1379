// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/natemoore/tix/internal/config"
	"github.com/natemoore/tix/internal/ui"
)

var (
	// Global flags
	configPath  string
	tokenFlag   string
	noCacheFlag bool

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tix",
	Short: "tix - Todoist from the terminal",
	Long: `tix is a Todoist CLI that understands plain English.

Task queries are written in natural language and translated to Todoist
filter syntax automatically:

  tix tasks urgent tasks due today        # runs filter "p1 & today"
  tix tasks "tasks that mention paint"    # runs filter "search: paint"
  tix tasks "#Work & p1"                  # filter syntax passes through

It also runs as an MCP server (tix serve) so LLM agents can manage tasks.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env next to the working directory may hold TODOIST_API_TOKEN.
		// Missing files are fine.
		_ = godotenv.Load()

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = config.Default()
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "Todoist API token (overrides env and config)")
	rootCmd.PersistentFlags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the response cache for this invocation")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

func loadGlobalConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}
