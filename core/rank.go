package core

import (
	"sort"

	"github.com/kschrader/git-scoreboard/schema"
)

// rankContributors orders scored contributors by score descending and
// assigns contiguous 1-based ranks. Contributors with a score of zero or
// below are dropped from the board. The sort is stable, so equal scores
// keep the login-ascending order of the input.
func rankContributors(metrics []schema.ContributorMetrics) []schema.RankedContributor {
	scored := make([]schema.ContributorMetrics, 0, len(metrics))
	for _, m := range metrics {
		if m.Score > 0 {
			scored = append(scored, m)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	ranked := make([]schema.RankedContributor, len(scored))
	for i, m := range scored {
		ranked[i] = schema.RankedContributor{Rank: i + 1, ContributorMetrics: m}
	}
	return ranked
}
