// Package agg has aggregation logic for contribution activity data.
package agg

import (
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/kschrader/git-scoreboard/internal/contract"
	"github.com/kschrader/git-scoreboard/schema"
)

// ChangeRequestSet collects merged change requests inside the scoring window.
// Add is safe for concurrent use by fetch workers; Finalize must be called
// once fetching is done.
type ChangeRequestSet struct {
	mu    sync.Mutex
	since time.Time
	items []schema.ChangeRequest
}

// NewChangeRequestSet creates a set retaining only records merged at or
// after since.
func NewChangeRequestSet(since time.Time) *ChangeRequestSet {
	return &ChangeRequestSet{since: since}
}

// Add filters and stores one raw record. Records from automation accounts,
// records with no author, records outside the window, and records with
// unreadable merge timestamps are all dropped.
func (s *ChangeRequestSet) Add(cr schema.ChangeRequest) {
	if cr.Author == "" || cr.Bot {
		return
	}
	mergedAt, err := contract.ParseInstant(cr.MergedAt)
	if err != nil {
		contract.LogWarn("skipping change request", err)
		return
	}
	if mergedAt.Before(s.since) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, cr)
}

// Finalize sorts the retained records by (repo, number) so downstream
// aggregation is deterministic regardless of fetch order.
func (s *ChangeRequestSet) Finalize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.Slice(s.items, func(i, j int) bool {
		if s.items[i].Repo != s.items[j].Repo {
			return s.items[i].Repo < s.items[j].Repo
		}
		return s.items[i].Number < s.items[j].Number
	})
}

// Retained returns the filtered records. Call Finalize first.
func (s *ChangeRequestSet) Retained() []schema.ChangeRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Len returns the current number of retained records.
func (s *ChangeRequestSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// ReviewSet collects reviews that count toward scoring. Only approvals and
// change requests qualify; comment-only reviews are dropped at the door.
type ReviewSet struct {
	mu    sync.Mutex
	items []schema.Review
}

// NewReviewSet creates an empty review set.
func NewReviewSet() *ReviewSet {
	return &ReviewSet{}
}

// Add filters and stores one review.
func (s *ReviewSet) Add(r schema.Review) {
	if r.User == "" || !r.State.Qualifies() {
		return
	}
	if contract.IsLikelyBot(r.User) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, r)
}

// Finalize sorts the retained reviews by (repo, number, user, state) so
// downstream aggregation is deterministic regardless of fetch order.
func (s *ReviewSet) Finalize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.Slice(s.items, func(i, j int) bool {
		a, b := s.items[i], s.items[j]
		if a.Repo != b.Repo {
			return a.Repo < b.Repo
		}
		if a.PRNumber != b.PRNumber {
			return a.PRNumber < b.PRNumber
		}
		if a.User != b.User {
			return a.User < b.User
		}
		return a.State < b.State
	})
}

// Retained returns the filtered reviews. Call Finalize first.
func (s *ReviewSet) Retained() []schema.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Aggregate joins change requests and reviews by login and computes the
// per-contributor metrics. The result is sorted by login ascending, which
// fixes the tie-break order for ranking and awards.
func Aggregate(changes []schema.ChangeRequest, reviews []schema.Review) []schema.ContributorMetrics {
	byUser := make(map[string]*schema.ContributorMetrics)
	mergeSecs := make(map[string][]float64)
	bodyLens := make(map[string][]float64)

	lookup := func(user string) *schema.ContributorMetrics {
		m, ok := byUser[user]
		if !ok {
			m = &schema.ContributorMetrics{User: user}
			byUser[user] = m
		}
		return m
	}

	for _, cr := range changes {
		createdAt, err := contract.ParseInstant(cr.CreatedAt)
		if err != nil {
			contract.LogWarn("skipping change request", err)
			continue
		}
		mergedAt, err := contract.ParseInstant(cr.MergedAt)
		if err != nil {
			contract.LogWarn("skipping change request", err)
			continue
		}

		m := lookup(cr.Author)
		m.PRs++

		diff := cr.Additions + cr.Deletions
		if diff < schema.SmallDiffLimit {
			m.Small++
		}
		if diff > schema.MegaDiffLimit {
			m.Mega++
		}

		secs := mergedAt.Sub(createdAt).Seconds()
		if secs < schema.FastMergeSecs {
			m.Fast++
		}
		if secs > schema.StaleMergeSecs {
			m.Stale++
		}
		mergeSecs[cr.Author] = append(mergeSecs[cr.Author], secs)
	}

	for _, r := range reviews {
		m := lookup(r.User)
		m.Reviews++

		length := utf8.RuneCountInString(r.Body)
		if r.State == schema.ReviewApproved && length == 0 {
			m.Driveby++
		}
		if length > schema.DeepBodyLength {
			m.Deep++
		}
		bodyLens[r.User] = append(bodyLens[r.User], float64(length))
	}

	results := make([]schema.ContributorMetrics, 0, len(byUser))
	for user, m := range byUser {
		m.AvgMergeHours = schema.Round1(schema.Mean(mergeSecs[user]) / 3600)
		m.AvgCommentLength = schema.Round1(schema.Mean(bodyLens[user]))
		results = append(results, *m)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].User < results[j].User
	})
	return results
}
