package agg

import (
	"sort"

	"github.com/huangsam/pdpboard/schema"
)

// Distribution counts the distinct values of one column. Empty cells are not counted
// and a column the table does not carry yields an empty result. Rows are sorted by
// count descending with ties broken by value.
func Distribution(table schema.Table, column string) schema.DistributionResult {
	result := schema.DistributionResult{Column: column, Counts: []schema.ValueCount{}}
	if !table.HasColumn(column) {
		return result
	}
	for value, n := range countColumn(table, column) {
		result.Counts = append(result.Counts, schema.ValueCount{Value: value, Count: n})
	}
	sort.Slice(result.Counts, func(i, j int) bool {
		if result.Counts[i].Count != result.Counts[j].Count {
			return result.Counts[i].Count > result.Counts[j].Count
		}
		return result.Counts[i].Value < result.Counts[j].Value
	})
	return result
}

// Lookup returns the count for one value of a distribution, zero when absent.
func Lookup(dist schema.DistributionResult, value string) int {
	for _, vc := range dist.Counts {
		if vc.Value == value {
			return vc.Count
		}
	}
	return 0
}
