package schema

import "strings"

// Status colours shared by the charts and progress cards.
const (
	ColorDone       = "#2ecc71"
	ColorInProgress = "#f1c40f"
	ColorNotStarted = "#e74c3c"
	ColorNA         = "#95a5a6"
)

// Ptr returns a pointer to s.
func Ptr(s string) *string {
	return &s
}

// ChartColor maps a status to its chart colour. Unknown values get the N/A grey.
func ChartColor(status string) string {
	switch status {
	case StatusDone:
		return ColorDone
	case StatusInProgress:
		return ColorInProgress
	case StatusNotStarted:
		return ColorNotStarted
	default:
		return ColorNA
	}
}

// CardColor maps a status to its progress card colour.
// Anything that is not Done or In Progress renders red.
func CardColor(status string) string {
	switch status {
	case StatusDone:
		return ColorDone
	case StatusInProgress:
		return ColorInProgress
	default:
		return ColorNotStarted
	}
}

// StatusRank orders canonical statuses first, in display order.
// Unknown values share the rank after N/A.
func StatusRank(status string) int {
	for i, s := range CanonicalStatuses {
		if s == status {
			return i
		}
	}
	return len(CanonicalStatuses)
}

// IsBlank reports whether a cell is nil or whitespace only.
func IsBlank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}
