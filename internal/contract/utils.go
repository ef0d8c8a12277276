package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	GoldColor   = color.New(color.FgYellow, color.Bold) // GoldColor highlights the top rank and award names.
	SilverColor = color.New(color.FgWhite, color.Bold)  // SilverColor highlights the second rank.
	BronzeColor = color.New(color.FgRed)                // BronzeColor highlights the third rank.
	DimColor    = color.New(color.FgCyan)               // DimColor renders secondary detail like units and the formula.
)

// FormatRank returns the rank column cell, colored for the podium when
// color output is enabled.
func FormatRank(rank int, colored bool) string {
	text := fmt.Sprintf("%d", rank)
	if !colored {
		return text
	}
	switch rank {
	case 1:
		return GoldColor.Sprint(text)
	case 2:
		return SilverColor.Sprint(text)
	case 3:
		return BronzeColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs a progress message to stderr, keeping stdout clean for the
// board itself.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// TruncateUser truncates a login to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for both content and the ellipsis.
func TruncateUser(user string, maxWidth int) string {
	runes := []rune(user)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return user
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
