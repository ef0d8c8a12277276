package githubclient

import (
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kschrader/git-scoreboard/schema"
)

// TestConvertPullRequest tests API record mapping to the wire-form model.
func TestConvertPullRequest(t *testing.T) {
	c := New("", 10, time.Second)

	created := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	merged := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)

	pr := &github.PullRequest{
		Number:    github.Int(42),
		User:      &github.User{Login: github.String("alice"), Type: github.String("User")},
		Additions: github.Int(120),
		Deletions: github.Int(30),
		CreatedAt: &github.Timestamp{Time: created},
		MergedAt:  &github.Timestamp{Time: merged},
	}

	cr := c.convertPullRequest("acme/widgets", pr)
	assert.Equal(t, "acme/widgets", cr.Repo)
	assert.Equal(t, 42, cr.Number)
	assert.Equal(t, "alice", cr.Author)
	assert.False(t, cr.Bot)
	assert.Equal(t, 120, cr.Additions)
	assert.Equal(t, 30, cr.Deletions)
	assert.Equal(t, "2024-03-10T10:00:00Z", cr.CreatedAt)
	assert.Equal(t, "2024-03-10T12:30:00Z", cr.MergedAt)
}

// TestConvertPullRequestBotDetection tests both bot signals.
func TestConvertPullRequestBotDetection(t *testing.T) {
	c := New("", 10, time.Second)

	t.Run("platform account type", func(t *testing.T) {
		pr := &github.PullRequest{
			Number: github.Int(1),
			User:   &github.User{Login: github.String("some-service"), Type: github.String("Bot")},
		}
		assert.True(t, c.convertPullRequest("acme/widgets", pr).Bot)
	})

	t.Run("naming convention", func(t *testing.T) {
		pr := &github.PullRequest{
			Number: github.Int(2),
			User:   &github.User{Login: github.String("renovate[bot]"), Type: github.String("User")},
		}
		assert.True(t, c.convertPullRequest("acme/widgets", pr).Bot)
	})

	t.Run("missing user", func(t *testing.T) {
		pr := &github.PullRequest{Number: github.Int(3)}
		cr := c.convertPullRequest("acme/widgets", pr)
		assert.Empty(t, cr.Author)
		assert.False(t, cr.Bot)
	})
}

// TestSplitRepo tests owner/name parsing.
func TestSplitRepo(t *testing.T) {
	owner, name, err := splitRepo("acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", name)

	for _, bad := range []string{"", "acme", "/widgets", "acme/"} {
		_, _, err := splitRepo(bad)
		assert.Error(t, err, bad)
	}
}

// TestNewClientModes tests token and anonymous construction.
func TestNewClientModes(t *testing.T) {
	anon := New("", 50, time.Second)
	require.NotNil(t, anon.gh)
	assert.Equal(t, 50, anon.limit)

	authed := New("ghp_example", 100, 2*time.Second)
	require.NotNil(t, authed.gh)
	assert.Equal(t, 2*time.Second, authed.timeout)
}

// TestReviewStateMapping tests that API state strings line up with the
// schema constants.
func TestReviewStateMapping(t *testing.T) {
	assert.Equal(t, schema.ReviewApproved, schema.ReviewState("APPROVED"))
	assert.Equal(t, schema.ReviewChangesRequested, schema.ReviewState("CHANGES_REQUESTED"))
	assert.False(t, schema.ReviewState("COMMENTED").Qualifies())
}
