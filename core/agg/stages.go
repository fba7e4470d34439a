package agg

import (
	"sort"

	"github.com/huangsam/pdpboard/schema"
)

// SummarizeStages melts the table into (stage, status) observations and counts them.
// Combinations that never occur are omitted and an empty table yields an empty slice. Rows follow the stage order, then the
// canonical status order, then unknown statuses in lexicographic order.
func SummarizeStages(table schema.Table, stages []string) []schema.StageStatusCount {
	out := []schema.StageStatusCount{}
	for _, stage := range presentStages(table, stages) {
		counts := countColumn(table, stage)
		out = append(out, stageRows(stage, counts)...)
	}
	return out
}

// stageRows orders the counts of one stage column.
func stageRows(stage string, counts map[string]int) []schema.StageStatusCount {
	rows := make([]schema.StageStatusCount, 0, len(counts))
	for status, n := range counts {
		rows = append(rows, schema.StageStatusCount{Stage: stage, Status: status, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		ri, rj := schema.StatusRank(rows[i].Status), schema.StatusRank(rows[j].Status)
		if ri != rj {
			return ri < rj
		}
		return rows[i].Status < rows[j].Status
	})
	return rows
}

// countColumn tallies the non-empty cells of one column.
func countColumn(table schema.Table, column string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range table.Records {
		v := rec.Cell(column)
		if v == nil {
			continue
		}
		counts[*v]++
	}
	return counts
}
