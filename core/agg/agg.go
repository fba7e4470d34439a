// Package agg has aggregation and scoring logic for PDP project tables.
package agg

import (
	"strings"

	"github.com/huangsam/pdpboard/schema"
)

// NormalizeStatuses returns a copy of the table with every present stage column
// cleaned: empty cells become "Not Started" and values are whitespace-trimmed.
// Stage columns missing from the table are skipped. The input is not modified
// and applying the function twice yields the same table.
func NormalizeStatuses(table schema.Table, stages []string) schema.Table {
	out := table.Clone()
	present := presentStages(out, stages)
	for i := range out.Records {
		rec := &out.Records[i]
		for _, stage := range present {
			rec.SetStatus(stage, schema.Ptr(normalizeStatus(rec.Status(stage))))
		}
	}
	return out
}

// normalizeStatus maps one raw cell to its cleaned status string.
func normalizeStatus(v *string) string {
	if v == nil {
		return schema.StatusNotStarted
	}
	return strings.TrimSpace(*v)
}

// presentStages filters stages down to the ones the table carries.
func presentStages(table schema.Table, stages []string) []string {
	present := make([]string, 0, len(stages))
	for _, stage := range stages {
		if table.HasColumn(stage) {
			present = append(present, stage)
		}
	}
	return present
}
