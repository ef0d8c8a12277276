package contract

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/kschrader/git-scoreboard/schema"
)

// Default values for configuration.
const (
	DefaultDaysBack   = 7
	DefaultFetchLimit = 100
	MaxFetchLimit     = 1000
	DefaultTimeout    = 30 * time.Second
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ErrNoRepositories indicates that no repositories were given and none could
// be discovered from the working directory.
var ErrNoRepositories = errors.New("no repositories given and none discovered in the current directory")

// ValidRepoName matches "owner/name" repository identifiers.
var ValidRepoName = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// Config holds the runtime configuration for a scoreboard run.
// This struct remains the "final, validated" config.
type Config struct {
	Repos      []string
	Window     Window
	Workers    int
	FetchLimit int
	Timeout    time.Duration
	Token      string
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored podium ranks in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args, so no tag
	Args []string

	// --- Fields from rootCmd.Flags() ---
	Workers    int    `mapstructure:"workers"`
	Limit      int    `mapstructure:"limit"`
	Timeout    string `mapstructure:"timeout"`
	Token      string `mapstructure:"token"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, resolver RepoResolver, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processPositionals(cfg, input); err != nil {
		return err
	}
	if err := resolveRepos(ctx, cfg, resolver); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-positional fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Token = input.Token
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. FetchLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxFetchLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxFetchLimit, input.Limit)
	}
	cfg.FetchLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Timeout Validation ---
	cfg.Timeout = DefaultTimeout
	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout value '%s': %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive (received %s)", d)
		}
		cfg.Timeout = d
	}

	// --- 4. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	return nil
}

// processPositionals interprets the positional arguments. The first argument
// is a day count when it contains no slash; every remaining argument is an
// "owner/name" repository.
func processPositionals(cfg *Config, input *ConfigRawInput) error {
	daysBack := DefaultDaysBack
	args := input.Args

	if len(args) > 0 && !strings.Contains(args[0], "/") {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid day count '%s': expected a non-negative integer", args[0])
		}
		daysBack = n
		args = args[1:]
	}
	cfg.Window = NewWindow(time.Now(), daysBack)

	for _, arg := range args {
		repo := strings.TrimSpace(arg)
		if !ValidRepoName.MatchString(repo) {
			return fmt.Errorf("invalid repository '%s': expected owner/name", arg)
		}
		cfg.Repos = append(cfg.Repos, repo)
	}

	return nil
}

// resolveRepos falls back to local discovery when no repositories were given
// on the command line.
func resolveRepos(ctx context.Context, cfg *Config, resolver RepoResolver) error {
	if len(cfg.Repos) > 0 {
		return nil
	}
	if resolver == nil {
		return ErrNoRepositories
	}

	repos, err := resolver.Resolve(ctx, ".")
	if err != nil || len(repos) == 0 {
		return ErrNoRepositories
	}
	cfg.Repos = repos
	return nil
}
