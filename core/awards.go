package core

import (
	"github.com/kschrader/git-scoreboard/schema"
)

// Minimum activity levels before an award can be won.
const (
	speedDemonMinPRs    = 2
	deepDiverMinReviews = 2
	needsLoveMinPRs     = 1
)

// selectAwards picks the three weekly awards from the aggregated metrics.
// The input is login-ascending and comparisons are strict, so ties go to
// the alphabetically first contributor. Awards a nobody qualifies for are
// omitted.
func selectAwards(metrics []schema.ContributorMetrics) []schema.Award {
	var speedDemon, deepDiver, needsLove *schema.ContributorMetrics

	for i := range metrics {
		m := &metrics[i]
		if m.PRs >= speedDemonMinPRs && (speedDemon == nil || m.AvgMergeHours < speedDemon.AvgMergeHours) {
			speedDemon = m
		}
		if m.Reviews >= deepDiverMinReviews && (deepDiver == nil || m.AvgCommentLength > deepDiver.AvgCommentLength) {
			deepDiver = m
		}
		if m.PRs >= needsLoveMinPRs && (needsLove == nil || m.AvgMergeHours > needsLove.AvgMergeHours) {
			needsLove = m
		}
	}

	var awards []schema.Award
	if speedDemon != nil {
		awards = append(awards, schema.Award{
			Name:  schema.SpeedDemonAward,
			User:  speedDemon.User,
			Value: speedDemon.AvgMergeHours,
			Unit:  "h avg merge",
		})
	}
	if deepDiver != nil {
		awards = append(awards, schema.Award{
			Name:  schema.DeepDiverAward,
			User:  deepDiver.User,
			Value: deepDiver.AvgCommentLength,
			Unit:  "chars avg review",
		})
	}
	if needsLove != nil {
		awards = append(awards, schema.Award{
			Name:  schema.NeedsLoveAward,
			User:  needsLove.User,
			Value: needsLove.AvgMergeHours,
			Unit:  "h avg merge",
		})
	}
	return awards
}
