package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/huangsam/ringside/schema"
)

// dbRelPath is the location of the default SQLite database under the XDG data home.
const dbRelPath = "ringside/league.db"

// Color variables for console output.
var (
	FaceColor    = color.New(color.FgGreen, color.Bold) // FaceColor marks heroes.
	HeelColor    = color.New(color.FgRed, color.Bold)   // HeelColor marks villains.
	TweenerColor = color.New(color.FgYellow)            // TweenerColor marks everyone in between.
	ChampColor   = color.New(color.FgHiYellow, color.Bold)
	MutedColor   = color.New(color.FgHiBlack)
)

// GetAlignmentLabel returns a colored alignment label for console output (table).
func GetAlignmentLabel(a schema.Alignment) string {
	switch a {
	case schema.Face:
		return FaceColor.Sprint(a)
	case schema.Heel:
		return HeelColor.Sprint(a)
	default:
		return TweenerColor.Sprint(a)
	}
}

// GetLevelBadge returns a short level badge, gold at the maximum level.
func GetLevelBadge(level int) string {
	text := fmt.Sprintf("Lv%d", level)
	if level >= 10 {
		return ChampColor.Sprint(text + " ⭐")
	}
	return text
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
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

// GetDBFilePath returns the path to the SQLite DB file for league storage.
// It falls back to a file in the home directory when the XDG data dir is unusable.
func GetDBFilePath() string {
	path, err := xdg.DataFile(dbRelPath)
	if err == nil {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ringside_league.db"
	}
	return filepath.Join(homeDir, ".ringside_league.db")
}

// TruncateText truncates s to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the ellipsis and at least one character.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
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
