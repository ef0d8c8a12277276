package core

import (
	"github.com/kschrader/git-scoreboard/schema"
)

// Scoring weights. Authorship and review quality earn points; low-effort or
// slow-moving activity costs them.
const (
	prWeight       = 10
	smallBonus     = 5
	reviewWeight   = 8
	fastBonus      = 5
	deepBonus      = 3
	megaPenalty    = 5
	drivebyPenalty = 2
	stalePenalty   = 3
)

// computeScore computes the weighted contribution score for one contributor.
// The result can be negative; negative and zero scores are dropped at
// ranking time.
func computeScore(m schema.ContributorMetrics) int {
	score := m.PRs*prWeight +
		m.Small*smallBonus +
		m.Reviews*reviewWeight +
		m.Fast*fastBonus +
		m.Deep*deepBonus
	score -= m.Mega*megaPenalty +
		m.Driveby*drivebyPenalty +
		m.Stale*stalePenalty
	return score
}

// scoreAll fills in the Score field for every contributor in place.
func scoreAll(metrics []schema.ContributorMetrics) {
	for i := range metrics {
		metrics[i].Score = computeScore(metrics[i])
	}
}
