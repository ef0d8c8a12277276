package contract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kschrader/git-scoreboard/schema"
)

// validInput returns raw input with every field at a passing value.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Workers: 4,
		Limit:   DefaultFetchLimit,
		Timeout: "30s",
		Output:  "text",
		Emoji:   "yes",
		Color:   "yes",
	}
}

// stubResolver implements RepoResolver for discovery tests.
type stubResolver struct {
	repos []string
	err   error
}

func (s *stubResolver) Resolve(_ context.Context, _ string) ([]string, error) {
	return s.repos, s.err
}

// TestProcessAndValidate tests the full raw-input validation path.
func TestProcessAndValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("days then repos", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"14", "golang/go", "spf13/cobra"}
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(ctx, cfg, nil, input))
		assert.Equal(t, []string{"golang/go", "spf13/cobra"}, cfg.Repos)
		assert.Equal(t, 14*24.0, cfg.Window.Until.Sub(cfg.Window.Since).Hours())
	})

	t.Run("repo as first arg keeps default days", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"golang/go"}
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(ctx, cfg, nil, input))
		assert.Equal(t, []string{"golang/go"}, cfg.Repos)
		assert.Equal(t, float64(DefaultDaysBack*24), cfg.Window.Until.Sub(cfg.Window.Since).Hours())
	})

	t.Run("non-numeric day count", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"soon", "golang/go"}
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorContains(t, err, "invalid day count")
	})

	t.Run("negative day count", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"-3", "golang/go"}
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorContains(t, err, "invalid day count")
	})

	t.Run("malformed repo", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"7", "owner/name/extra"}
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorContains(t, err, "invalid repository")
	})

	t.Run("no repos and no resolver", func(t *testing.T) {
		input := validInput()
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorIs(t, err, ErrNoRepositories)
	})

	t.Run("no repos falls back to resolver", func(t *testing.T) {
		input := validInput()
		cfg := &Config{}
		resolver := &stubResolver{repos: []string{"kschrader/git-scoreboard"}}
		require.NoError(t, ProcessAndValidate(ctx, cfg, resolver, input))
		assert.Equal(t, []string{"kschrader/git-scoreboard"}, cfg.Repos)
	})

	t.Run("resolver failure surfaces sentinel", func(t *testing.T) {
		input := validInput()
		resolver := &stubResolver{err: assert.AnError}
		err := ProcessAndValidate(ctx, &Config{}, resolver, input)
		assert.ErrorIs(t, err, ErrNoRepositories)
	})

	t.Run("invalid output format", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"golang/go"}
		input.Output = "xml"
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorContains(t, err, "invalid output format")
	})

	t.Run("limit bounds", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"golang/go"}
		input.Limit = MaxFetchLimit + 1
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorContains(t, err, "limit")
	})

	t.Run("workers must be positive", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"golang/go"}
		input.Workers = 0
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorContains(t, err, "workers")
	})

	t.Run("invalid timeout", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"golang/go"}
		input.Timeout = "fast"
		err := ProcessAndValidate(ctx, &Config{}, nil, input)
		assert.ErrorContains(t, err, "timeout")
	})

	t.Run("bool flags parsed", func(t *testing.T) {
		input := validInput()
		input.Args = []string{"golang/go"}
		input.Emoji = "no"
		input.Color = "false"
		input.Output = "json"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(ctx, cfg, nil, input))
		assert.False(t, cfg.UseEmojis)
		assert.False(t, cfg.UseColors)
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})
}

// TestParseBoolString tests boolean flag parsing.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "YES", "True"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "false", "0", "NO"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// TestTruncateUser tests login truncation for narrow terminals.
func TestTruncateUser(t *testing.T) {
	assert.Equal(t, "alice", TruncateUser("alice", 12))
	assert.Equal(t, "verylongc...", TruncateUser("verylongcontributor", 12))
	assert.Equal(t, "abc", TruncateUser("abc", 3))
}
