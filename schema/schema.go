// Package schema has models, constants and helpers for all parts of git-scoreboard.
package schema

// ChangeRequest is one merged pull request as delivered by the hosting
// platform. Timestamps stay in their RFC3339 wire form; parsing happens at
// filtering and aggregation time so a malformed instant only costs that one
// record.
type ChangeRequest struct {
	Repo      string `json:"repo"`   // "owner/name" identifier
	Number    int    `json:"number"` // unique within Repo only
	Author    string `json:"author"` // login; empty means unattributable
	Bot       bool   `json:"bot"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	CreatedAt string `json:"created_at"`
	MergedAt  string `json:"merged_at"`
}

// Review is one submitted review on a change request. PRNumber may reference
// a change request outside the retained set; the review still counts for the
// reviewer.
type Review struct {
	Repo     string      `json:"repo"`
	PRNumber int         `json:"pr_number"`
	User     string      `json:"user"` // login; empty means unattributable
	State    ReviewState `json:"state"`
	Body     string      `json:"body"`
}

// ContributorMetrics aggregates every signal for a single contributor login.
// A contributor appears here when they authored at least one retained change
// request or submitted at least one qualifying review; all other counts stay
// zero.
type ContributorMetrics struct {
	User             string  `json:"user"`
	PRs              int     `json:"prs"`
	Small            int     `json:"small"`
	Mega             int     `json:"mega"`
	Fast             int     `json:"fast"`
	Stale            int     `json:"stale"`
	AvgMergeHours    float64 `json:"avg_merge_hours"`
	Reviews          int     `json:"reviews"`
	Driveby          int     `json:"driveby_reviews"`
	Deep             int     `json:"deep_reviews"`
	AvgCommentLength float64 `json:"avg_comment_length"`
	Score            int     `json:"score"`
}

// RankedContributor adds the 1-based display rank to a scored contributor.
type RankedContributor struct {
	Rank int `json:"rank"`
	ContributorMetrics
}

// Award is one superlative winner.
type Award struct {
	Name  string  `json:"name"`
	User  string  `json:"user"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Board is the complete scoreboard for one window, ready for rendering.
type Board struct {
	Window       string              `json:"window"` // display label, e.g. "Jan 2 - Jan 9"
	Repos        []string            `json:"repos"`
	Contributors []RankedContributor `json:"contributors"`
	Awards       []Award             `json:"awards"`
}
