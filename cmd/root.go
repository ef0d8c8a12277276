package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kschrader/git-scoreboard/core"
	"github.com/kschrader/git-scoreboard/internal/contract"
	"github.com/kschrader/git-scoreboard/internal/githubclient"
	"github.com/kschrader/git-scoreboard/internal/outwriter"
	"github.com/kschrader/git-scoreboard/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint.
var rootCmd = &cobra.Command{
	Use:   "git-scoreboard [days] [owner/repo ...]",
	Short: "Rank contributors across repositories by weekly activity.",
	Long: `Git-scoreboard turns merged pull requests and reviews into a weekly
leaderboard with weighted scores and superlative awards.

The first positional argument is a day count when it contains no slash;
every remaining argument is an owner/repo identifier. With no repositories
given, the current directory's git remotes are used.`,
	Version:            version,
	Args:               cobra.ArbitraryArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, args); err != nil {
			if errors.Is(err, contract.ErrNoRepositories) {
				_ = cmd.Usage()
			}
			return err
		}

		contract.LogInfo("Fetching activity for %s (%s)", strings.Join(cfg.Repos, ", "), cfg.Window.Label())

		source := githubclient.New(cfg.Token, cfg.FetchLimit, cfg.Timeout)
		board, err := core.ExecuteScoreboard(rootCtx, cfg, source)
		if err != nil {
			return err
		}
		return outwriter.WriteBoard(board, cfg)
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".git-scoreboard") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SCOREBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// The conventional GITHUB_TOKEN also works, SCOREBOARD_TOKEN wins.
	_ = viper.BindEnv("token", "SCOREBOARD_TOKEN", "GITHUB_TOKEN")

	// Set defaults in Viper
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("limit", contract.DefaultFetchLimit)
	viper.SetDefault("timeout", "30s")
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("emoji", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	input.Args = args

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	resolver := contract.NewLocalGitResolver()
	return contract.ProcessAndValidate(ctx, cfg, resolver, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
