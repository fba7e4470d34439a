// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"strings"

	"github.com/huangsam/pdpboard/internal/contract"
	"golang.org/x/term"
)

// barWidth is the number of cells of a full score or share bar.
const barWidth = 20

// getTermWidth returns the --width override, the detected terminal width, or 80.
func getTermWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI
		return 80
	}
	return detectedWidth
}

// getMaxCellWidth calculates the maximum width of free-text cells in table output,
// given the space reserved for the fixed columns.
func getMaxCellWidth(cfg *contract.Config, reserved int) int {
	// Reserve generous space for table borders, separators, and padding
	available := getTermWidth(cfg) - reserved - 20
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// statusLabel returns the status colored for the console when colors are enabled.
func statusLabel(cfg *contract.Config, status string) string {
	if cfg.UseColors {
		return contract.GetColorStatus(status)
	}
	return status
}

// renderBar draws a horizontal bar for a fraction between 0 and 1.
func renderBar(fraction float64) string {
	fraction = max(0, min(1, fraction))
	filled := int(fraction*barWidth + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
