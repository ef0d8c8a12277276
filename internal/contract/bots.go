package contract

import "strings"

var botPatterns = []string{
	"[bot]",
	"-bot",
	"bot-",
	"dependabot",
	"renovate",
	"github-actions",
	"codecov",
	"snyk",
	"greenkeeper",
	"semantic-release",
	"mergify",
}

// IsLikelyBot reports whether a login looks like an automation account.
// Platform account type metadata is authoritative when available; this is
// the heuristic fallback for accounts that register as plain users.
func IsLikelyBot(login string) bool {
	l := strings.ToLower(login)
	for _, p := range botPatterns {
		if strings.Contains(l, p) {
			return true
		}
	}
	return false
}
