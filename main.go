// main holds the entry logic for the git-scoreboard CLI.
package main

import (
	"github.com/kschrader/git-scoreboard/cmd"
	"github.com/kschrader/git-scoreboard/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("running git-scoreboard", err)
	}
}
