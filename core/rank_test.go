package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kschrader/git-scoreboard/schema"
)

// TestRankContributors tests ordering, filtering and rank assignment.
func TestRankContributors(t *testing.T) {
	t.Run("descending with contiguous ranks", func(t *testing.T) {
		metrics := []schema.ContributorMetrics{
			{User: "alice", Score: 10},
			{User: "bob", Score: 50},
			{User: "carol", Score: 30},
		}
		ranked := rankContributors(metrics)
		require.Len(t, ranked, 3)
		assert.Equal(t, []string{"bob", "carol", "alice"},
			[]string{ranked[0].User, ranked[1].User, ranked[2].User})
		for i, rc := range ranked {
			assert.Equal(t, i+1, rc.Rank)
		}
	})

	t.Run("zero and negative scores dropped", func(t *testing.T) {
		metrics := []schema.ContributorMetrics{
			{User: "alice", Score: 0},
			{User: "bob", Score: -8},
			{User: "carol", Score: 1},
		}
		ranked := rankContributors(metrics)
		require.Len(t, ranked, 1)
		assert.Equal(t, "carol", ranked[0].User)
		assert.Equal(t, 1, ranked[0].Rank)
	})

	t.Run("ties keep login order", func(t *testing.T) {
		// Input arrives login-ascending from aggregation
		metrics := []schema.ContributorMetrics{
			{User: "alice", Score: 20},
			{User: "bob", Score: 20},
			{User: "carol", Score: 20},
		}
		ranked := rankContributors(metrics)
		require.Len(t, ranked, 3)
		assert.Equal(t, "alice", ranked[0].User)
		assert.Equal(t, "bob", ranked[1].User)
		assert.Equal(t, "carol", ranked[2].User)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, rankContributors(nil))
	})
}
