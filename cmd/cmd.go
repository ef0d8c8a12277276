// Package cmd defines the command-line interface for git-scoreboard.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kschrader/git-scoreboard/internal/contract"
	"github.com/kschrader/git-scoreboard/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)

	// Bind all flags of rootCmd to Viper
	rootCmd.Flags().IntP("workers", "w", contract.DefaultWorkers, "Number of concurrent fetch workers")
	rootCmd.Flags().IntP("limit", "l", contract.DefaultFetchLimit, "Maximum merged pull requests to fetch per repository")
	rootCmd.Flags().String("timeout", "30s", "Per-request timeout, e.g. 30s or 2m")
	rootCmd.Flags().String("token", "", "API token (SCOREBOARD_TOKEN or GITHUB_TOKEN also work)")
	rootCmd.Flags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.Flags().String("output-file", "", "Optional path to write output to")
	rootCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.Flags().String("color", "yes", "Enable colored ranks in output (yes/no/true/false/1/0)")
	rootCmd.Flags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.Flags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
