// Package contract provides interfaces and shared utilities for the scoreboard's internal architecture.
package contract

import (
	"context"

	"github.com/kschrader/git-scoreboard/schema"
)

// ChangeSource supplies merged change requests and their reviews for a
// repository. This allows the core pipeline to be tested without a live
// platform API.
type ChangeSource interface {
	// MergedChangeRequests returns raw records for recently merged pull
	// requests in the given "owner/name" repository, up to a fixed fetch
	// limit. Window filtering is the caller's job.
	MergedChangeRequests(ctx context.Context, repo string) ([]schema.ChangeRequest, error)

	// Reviews returns all submitted reviews for one pull request.
	Reviews(ctx context.Context, repo string, number int) ([]schema.Review, error)
}

// RepoResolver discovers repositories from the local working copy when none
// are given on the command line.
type RepoResolver interface {
	// Resolve returns "owner/name" identifiers found in dir, submodules
	// first, origin remote as the fallback.
	Resolve(ctx context.Context, dir string) ([]string, error)
}
