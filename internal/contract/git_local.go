package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LocalGitResolver implements the RepoResolver interface by executing the
// local 'git' binary installed on the machine.
type LocalGitResolver struct{}

var _ RepoResolver = &LocalGitResolver{} // Compile-time check

// NewLocalGitResolver creates a new instance of the local Git resolver.
func NewLocalGitResolver() *LocalGitResolver {
	return &LocalGitResolver{}
}

// Run executes a git command and returns its stdout output.
func (r *LocalGitResolver) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// Resolve implements the RepoResolver interface. Submodule remotes win over
// the origin remote so multi-repo checkouts get a full board.
func (r *LocalGitResolver) Resolve(ctx context.Context, dir string) ([]string, error) {
	if repos := r.submoduleRepos(ctx, dir); len(repos) > 0 {
		return repos, nil
	}

	out, err := r.Run(ctx, dir, "config", "--get", "remote.origin.url")
	if err != nil {
		return nil, err
	}
	repo, ok := RepoFromRemoteURL(strings.TrimSpace(string(out)))
	if !ok {
		return nil, fmt.Errorf("cannot derive owner/name from remote %q", strings.TrimSpace(string(out)))
	}
	return []string{repo}, nil
}

// submoduleRepos reads .gitmodules URLs, if any.
func (r *LocalGitResolver) submoduleRepos(ctx context.Context, dir string) []string {
	out, err := r.Run(ctx, dir, "config", "-f", ".gitmodules", "--get-regexp", `^submodule\..*\.url$`)
	if err != nil {
		return nil
	}

	var repos []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		if repo, ok := RepoFromRemoteURL(fields[1]); ok && !seen[repo] {
			seen[repo] = true
			repos = append(repos, repo)
		}
	}
	return repos
}

// RepoFromRemoteURL normalizes a git remote URL into "owner/name".
// Handles https, ssh and scp-like forms.
func RepoFromRemoteURL(url string) (string, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(url), ".git")

	switch {
	case strings.HasPrefix(s, "https://"), strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "ssh://"):
		parts := strings.Split(s, "/")
		if len(parts) < 2 {
			return "", false
		}
		s = parts[len(parts)-2] + "/" + parts[len(parts)-1]
	case strings.Contains(s, ":"):
		// scp-like form: git@host:owner/name
		s = s[strings.Index(s, ":")+1:]
	}

	if !ValidRepoName.MatchString(s) {
		return "", false
	}
	return s, true
}
