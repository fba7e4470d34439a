package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/pdpboard/schema"
)

// Color variables for console output.
var (
	DoneColor       = color.New(color.FgGreen, color.Bold) // DoneColor marks finished stages.
	InProgressColor = color.New(color.FgYellow)            // InProgressColor marks active stages.
	NotStartedColor = color.New(color.FgRed)               // NotStartedColor marks pending stages.
	NAColor         = color.New(color.FgHiBlack)           // NAColor marks stages that do not apply.
)

// GetColorStatus returns a colored status label for console output (table).
// Unknown statuses are returned uncolored.
func GetColorStatus(status string) string {
	switch status {
	case schema.StatusDone:
		return DoneColor.Sprint(status)
	case schema.StatusInProgress:
		return InProgressColor.Sprint(status)
	case schema.StatusNotStarted:
		return NotStartedColor.Sprint(status)
	case schema.StatusNA:
		return NAColor.Sprint(status)
	default:
		return status
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
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

// LogHeader prints a concise header naming the workbook and the view being rendered.
func LogHeader(cfg *Config, view string) {
	name := filepath.Base(cfg.DataPath)
	if name == "" || name == "." {
		name = "current"
	}
	if cfg.UseEmojis {
		fmt.Printf("📒 Workbook: %s (Sheet: %s)\n", name, cfg.Sheet)
		fmt.Printf("📊 View: %s\n", view)
		return
	}
	fmt.Printf("Workbook: %s (Sheet: %s)\n", name, cfg.Sheet)
	fmt.Printf("View: %s\n", view)
}

// GetPublishDBFilePath returns the path to the SQLite DB file for the publish sink.
func GetPublishDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pdpboard_publish.db"
	}
	return filepath.Join(homeDir, ".pdpboard_publish.db")
}

// TruncateText truncates a cell to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and some content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
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
