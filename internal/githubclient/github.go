// Package githubclient adapts the GitHub REST API to the scoreboard's
// change source interface.
package githubclient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/kschrader/git-scoreboard/internal/contract"
	"github.com/kschrader/git-scoreboard/schema"
)

// Retry behavior for API calls.
const (
	maxRetryAttempts  = 4
	initialRetryDelay = 1 * time.Second
	maxRetryDelay     = 15 * time.Second
	pageSize          = 100
)

// Client fetches merged pull requests and reviews from GitHub.
type Client struct {
	gh      *github.Client
	limit   int
	timeout time.Duration
}

var _ contract.ChangeSource = &Client{} // Compile-time check

// New creates a GitHub client. An empty token means anonymous access, which
// works for public repositories at a much lower rate limit.
func New(token string, limit int, timeout time.Duration) *Client {
	var gh *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		gh = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		gh = github.NewClient(nil)
	}
	return &Client{gh: gh, limit: limit, timeout: timeout}
}

// withRetry executes one API operation with a per-call deadline and
// exponential backoff.
func (c *Client) withRetry(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return retry.Do(
		func() error { return fn(callCtx) },
		retry.Context(callCtx),
		retry.Attempts(maxRetryAttempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(initialRetryDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.OnRetry(func(n uint, err error) {
			contract.LogWarn(fmt.Sprintf("%s: attempt %d/%d", operation, n+1, maxRetryAttempts), err)
		}),
		retry.LastErrorOnly(true),
	)
}

// MergedChangeRequests implements the ChangeSource interface. It lists
// recently updated closed pull requests, keeps the merged ones, and fills
// in diff sizes with a per-PR detail call since the list endpoint omits
// them.
func (c *Client) MergedChangeRequests(ctx context.Context, repo string) ([]schema.ChangeRequest, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	var merged []*github.PullRequest
	opts := &github.PullRequestListOptions{
		State:     "closed",
		Sort:      "updated",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: pageSize,
		},
	}
	for len(merged) < c.limit {
		var prs []*github.PullRequest
		var resp *github.Response
		err := c.withRetry(ctx, "list pull requests for "+repo, func(ctx context.Context) error {
			var apiErr error
			prs, resp, apiErr = c.gh.PullRequests.List(ctx, owner, name, opts)
			return apiErr
		})
		if err != nil {
			return nil, fmt.Errorf("list pull requests for %s: %w", repo, err)
		}

		for _, pr := range prs {
			if pr.GetMergedAt().IsZero() {
				continue
			}
			merged = append(merged, pr)
			if len(merged) >= c.limit {
				break
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	results := make([]schema.ChangeRequest, 0, len(merged))
	for _, pr := range merged {
		cr := c.convertPullRequest(repo, pr)

		// The list payload carries zero additions/deletions. Fetch the
		// detail record; fall back to the list payload when it fails.
		var detail *github.PullRequest
		err := c.withRetry(ctx, fmt.Sprintf("get pull request %s#%d", repo, pr.GetNumber()), func(ctx context.Context) error {
			var apiErr error
			detail, _, apiErr = c.gh.PullRequests.Get(ctx, owner, name, pr.GetNumber())
			return apiErr
		})
		if err == nil && detail != nil {
			cr.Additions = detail.GetAdditions()
			cr.Deletions = detail.GetDeletions()
		} else if err != nil {
			contract.LogWarn(fmt.Sprintf("detail fetch for %s#%d, using list payload", repo, pr.GetNumber()), err)
		}

		results = append(results, cr)
	}
	return results, nil
}

// Reviews implements the ChangeSource interface.
func (c *Client) Reviews(ctx context.Context, repo string, number int) ([]schema.Review, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	var all []*github.PullRequestReview
	opts := &github.ListOptions{PerPage: pageSize}
	for {
		var reviews []*github.PullRequestReview
		var resp *github.Response
		err := c.withRetry(ctx, fmt.Sprintf("list reviews for %s#%d", repo, number), func(ctx context.Context) error {
			var apiErr error
			reviews, resp, apiErr = c.gh.PullRequests.ListReviews(ctx, owner, name, number, opts)
			return apiErr
		})
		if err != nil {
			return nil, fmt.Errorf("list reviews for %s#%d: %w", repo, number, err)
		}
		all = append(all, reviews...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	results := make([]schema.Review, 0, len(all))
	for _, r := range all {
		results = append(results, schema.Review{
			Repo:     repo,
			PRNumber: number,
			User:     r.GetUser().GetLogin(),
			State:    schema.ReviewState(r.GetState()),
			Body:     r.GetBody(),
		})
	}
	return results, nil
}

// convertPullRequest maps one API record to the wire-form model.
func (c *Client) convertPullRequest(repo string, pr *github.PullRequest) schema.ChangeRequest {
	login := pr.GetUser().GetLogin()
	return schema.ChangeRequest{
		Repo:      repo,
		Number:    pr.GetNumber(),
		Author:    login,
		Bot:       pr.GetUser().GetType() == "Bot" || contract.IsLikelyBot(login),
		Additions: pr.GetAdditions(),
		Deletions: pr.GetDeletions(),
		CreatedAt: pr.GetCreatedAt().Format(time.RFC3339),
		MergedAt:  pr.GetMergedAt().Format(time.RFC3339),
	}
}

// splitRepo splits "owner/name" into its parts.
func splitRepo(repo string) (string, string, error) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	return parts[0], parts[1], nil
}
