package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kschrader/git-scoreboard/internal/contract"
	"github.com/kschrader/git-scoreboard/schema"
)

// boardCSVHeader is the column order for CSV output.
var boardCSVHeader = []string{
	"rank", "user", "score", "prs", "reviews",
	"small", "mega", "fast", "stale", "driveby", "deep", "avg_merge_hours",
}

// WriteBoard outputs the scoreboard, dispatching based on the output format
// configured.
func WriteBoard(board *schema.Board, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeBoardJSON(board, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeBoardCSV(board, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBoardTable(board, cfg, w)
		}, "Wrote table")
	}
	return nil
}

// writeBoardJSON handles opening the file and calling the JSON writer.
func writeBoardJSON(board *schema.Board, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, board)
	}, "Wrote JSON")
}

// writeBoardCSV handles opening the file and calling the CSV writer.
func writeBoardCSV(board *schema.Board, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, boardCSVHeader, func(cw *csv.Writer) error {
			for _, rc := range board.Contributors {
				row := []string{
					strconv.Itoa(rc.Rank),
					rc.User,
					strconv.Itoa(rc.Score),
					strconv.Itoa(rc.PRs),
					strconv.Itoa(rc.Reviews),
					strconv.Itoa(rc.Small),
					strconv.Itoa(rc.Mega),
					strconv.Itoa(rc.Fast),
					strconv.Itoa(rc.Stale),
					strconv.Itoa(rc.Driveby),
					strconv.Itoa(rc.Deep),
					fmt.Sprintf("%.1f", rc.AvgMergeHours),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeBoardTable generates and writes the human-readable board.
func writeBoardTable(board *schema.Board, cfg *contract.Config, writer io.Writer) error {
	writeBoardHeader(board, cfg, writer)

	if len(board.Contributors) == 0 {
		_, err := fmt.Fprintln(writer, "No qualifying contributors in this window.")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{
		"Rank", "User", "Score", "PRs", "Revs",
		"Small", "Mega", "Fast", "Stale", "Drive", "Deep", "AvgMrg(h)",
	})

	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	maxUserWidth := getMaxTableUserWidth(cfg)
	var data [][]string
	for _, rc := range board.Contributors {
		data = append(data, []string{
			contract.FormatRank(rc.Rank, cfg.UseColors),
			contract.TruncateUser(rc.User, maxUserWidth),
			strconv.Itoa(rc.Score),
			strconv.Itoa(rc.PRs),
			strconv.Itoa(rc.Reviews),
			strconv.Itoa(rc.Small),
			strconv.Itoa(rc.Mega),
			strconv.Itoa(rc.Fast),
			strconv.Itoa(rc.Stale),
			strconv.Itoa(rc.Driveby),
			strconv.Itoa(rc.Deep),
			fmt.Sprintf("%.1f", rc.AvgMergeHours),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Score = %s\n", schema.ScoreFormula); err != nil {
		return err
	}
	if err := writeAwards(board.Awards, cfg, writer); err != nil {
		return err
	}
	return writeGlossary(cfg, writer)
}

// writeBoardHeader prints the 2-line window summary above the table.
func writeBoardHeader(board *schema.Board, cfg *contract.Config, writer io.Writer) {
	repos := "(none)"
	if len(board.Repos) > 0 {
		repos = board.Repos[0]
		for _, r := range board.Repos[1:] {
			repos += ", " + r
		}
	}
	if cfg.UseEmojis {
		fmt.Fprintf(writer, "🏆 Scoreboard: %s\n", repos)
		fmt.Fprintf(writer, "📅 Window: %s\n", board.Window)
	} else {
		fmt.Fprintf(writer, "Scoreboard: %s\n", repos)
		fmt.Fprintf(writer, "Window: %s\n", board.Window)
	}
}

// awardEmojis decorates award lines in emoji mode.
var awardEmojis = map[string]string{
	schema.SpeedDemonAward: "⚡",
	schema.DeepDiverAward:  "🤿",
	schema.NeedsLoveAward:  "🐌",
}

// writeAwards prints one line per award. Skipped entirely when nobody
// qualified.
func writeAwards(awards []schema.Award, cfg *contract.Config, writer io.Writer) error {
	for _, a := range awards {
		name := a.Name
		if cfg.UseColors {
			name = contract.GoldColor.Sprint(name)
		}
		prefix := ""
		if cfg.UseEmojis {
			prefix = awardEmojis[a.Name] + " "
		}
		value := fmt.Sprintf("%.1f %s", a.Value, a.Unit)
		if cfg.UseColors {
			value = contract.DimColor.Sprint(value)
		}
		if _, err := fmt.Fprintf(writer, "%s%s: %s (%s)\n", prefix, name, a.User, value); err != nil {
			return err
		}
	}
	return nil
}

// writeGlossary prints the metric glossary below the awards.
func writeGlossary(cfg *contract.Config, writer io.Writer) error {
	lines := []string{
		"PRs: merged change requests | Small: diff < 100 lines | Mega: diff > 500 lines",
		"Fast: merged < 24h | Stale: merged > 5d | Revs: approvals + change requests",
		"Drive: empty-body approvals | Deep: review body > 50 chars",
	}
	header := "Glossary:"
	if cfg.UseColors {
		header = contract.DimColor.Sprint(header)
	}
	if _, err := fmt.Fprintln(writer, header); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(writer, "  %s\n", l); err != nil {
			return err
		}
	}
	return nil
}
