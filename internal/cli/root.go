package cli

import (
	"fmt"

	"github.com/howell-aikit/promptpack/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "promptpack",
	Short: "Assemble LLM prompts from project files",
	Long: `promptpack builds a single prompt for a large language model out of a
project directory:
  • Selects files through whitelist/blacklist patterns
  • Renders the project tree as an indented structure
  • Inlines file contents with optional comment, import and docstring removal
  • Copies the result to the clipboard and keeps a build history`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.promptpack/config.toml)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
