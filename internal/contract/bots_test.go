package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsLikelyBot tests the automation account heuristic.
func TestIsLikelyBot(t *testing.T) {
	tests := []struct {
		name     string
		login    string
		expected bool
	}{
		{name: "bracket suffix", login: "dependabot[bot]", expected: true},
		{name: "dependabot", login: "dependabot", expected: true},
		{name: "renovate", login: "renovate-coordinator", expected: true},
		{name: "github actions", login: "github-actions", expected: true},
		{name: "mixed case", login: "Codecov-Commenter", expected: true},
		{name: "bot suffix", login: "deploy-bot", expected: true},
		{name: "plain human", login: "alice", expected: false},
		{name: "bot substring inside word", login: "abbott", expected: false},
		{name: "empty", login: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLikelyBot(tt.login))
		})
	}
}
