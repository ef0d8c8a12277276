// Package core has the scoreboard pipeline: fetch, aggregate, score, rank
// and award selection.
package core

import (
	"context"
	"sync"

	"github.com/kschrader/git-scoreboard/core/agg"
	"github.com/kschrader/git-scoreboard/internal/contract"
	"github.com/kschrader/git-scoreboard/schema"
)

// prRef identifies one change request for the review fetch phase.
type prRef struct {
	repo   string
	number int
}

// ExecuteScoreboard runs the full pipeline for the configured repositories
// and window. A failed fetch degrades to an empty result for that
// repository or change request; only configuration problems abort a run.
func ExecuteScoreboard(ctx context.Context, cfg *contract.Config, source contract.ChangeSource) (*schema.Board, error) {
	changes := fetchChangeRequests(ctx, cfg, source)
	reviews := fetchReviews(ctx, cfg, source, changes)

	metrics := agg.Aggregate(changes, reviews)
	scoreAll(metrics)

	board := &schema.Board{
		Window:       cfg.Window.Label(),
		Repos:        cfg.Repos,
		Contributors: rankContributors(metrics),
		Awards:       selectAwards(metrics),
	}
	return board, nil
}

// fetchChangeRequests gathers merged change requests from every configured
// repository in parallel and filters them into the scoring window.
func fetchChangeRequests(ctx context.Context, cfg *contract.Config, source contract.ChangeSource) []schema.ChangeRequest {
	set := agg.NewChangeRequestSet(cfg.Window.Since)

	repoCh := make(chan string, len(cfg.Repos))
	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Go(func() {
			for repo := range repoCh {
				crs, err := source.MergedChangeRequests(ctx, repo)
				if err != nil {
					contract.LogWarn("fetching change requests for "+repo, err)
					continue
				}
				for _, cr := range crs {
					set.Add(cr)
				}
			}
		})
	}
	for _, repo := range cfg.Repos {
		repoCh <- repo
	}
	close(repoCh)
	wg.Wait()

	set.Finalize()
	retained := set.Retained()
	contract.LogInfo("Retained %d merged change requests across %d repositories", len(retained), len(cfg.Repos))
	return retained
}

// fetchReviews gathers reviews for every retained change request in
// parallel. Duplicate (repo, number) pairs are fetched once.
func fetchReviews(ctx context.Context, cfg *contract.Config, source contract.ChangeSource, changes []schema.ChangeRequest) []schema.Review {
	seen := make(map[prRef]bool, len(changes))
	refs := make([]prRef, 0, len(changes))
	for _, cr := range changes {
		ref := prRef{repo: cr.Repo, number: cr.Number}
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	set := agg.NewReviewSet()

	refCh := make(chan prRef, len(refs))
	var wg sync.WaitGroup
	for range cfg.Workers {
		wg.Go(func() {
			for ref := range refCh {
				reviews, err := source.Reviews(ctx, ref.repo, ref.number)
				if err != nil {
					contract.LogWarn("fetching reviews", err)
					continue
				}
				for _, r := range reviews {
					set.Add(r)
				}
			}
		})
	}
	for _, ref := range refs {
		refCh <- ref
	}
	close(refCh)
	wg.Wait()

	set.Finalize()
	retained := set.Retained()
	contract.LogInfo("Retained %d qualifying reviews from %d change requests", len(retained), len(refs))
	return retained
}
