package agg

import (
	"testing"

	"github.com/huangsam/pdpboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTable builds a table from rows. A nil value in a row leaves the cell empty.
func newTable(columns []string, rows ...map[string]*string) schema.Table {
	table := schema.Table{Columns: columns}
	for _, row := range rows {
		table.Records = append(table.Records, record(row))
	}
	return table
}

func record(cells map[string]*string) schema.ProjectRecord {
	var rec schema.ProjectRecord
	for col, v := range cells {
		rec.SetCell(col, v)
	}
	return rec
}

func s(v string) *string { return schema.Ptr(v) }

func allStagesTable(status string, n int) schema.Table {
	cols := append([]string{schema.ColProject, schema.ColCategory}, schema.StageNames()...)
	table := schema.Table{Columns: cols}
	for range n {
		cells := map[string]*string{schema.ColProject: s("P"), schema.ColCategory: s("Hardware")}
		for _, stage := range schema.StageNames() {
			cells[stage] = s(status)
		}
		table.Records = append(table.Records, record(cells))
	}
	return table
}

func TestNormalizeStatuses(t *testing.T) {
	cols := []string{schema.ColProject, schema.StageCADDesign, schema.StageMVP}
	raw := newTable(cols,
		map[string]*string{schema.ColProject: s("A"), schema.StageCADDesign: nil, schema.StageMVP: s(" Done ")},
		map[string]*string{schema.ColProject: s("B"), schema.StageCADDesign: s("In Progress")},
	)

	out := NormalizeStatuses(raw, schema.StageNames())

	require.Len(t, out.Records, 2)
	assert.Equal(t, "Not Started", out.Records[0].Value(schema.StageCADDesign))
	assert.Equal(t, "Done", out.Records[0].Value(schema.StageMVP))
	assert.Equal(t, "In Progress", out.Records[1].Value(schema.StageCADDesign))
	assert.Equal(t, "Not Started", out.Records[1].Value(schema.StageMVP), "missing cell in a present column")

	// Absent stage columns stay absent.
	assert.Nil(t, out.Records[0].Cell(schema.StageDeploy))
	assert.False(t, out.HasColumn(schema.StageDeploy))

	// Input untouched.
	assert.Nil(t, raw.Records[0].Cell(schema.StageCADDesign))
	assert.Equal(t, " Done ", raw.Records[0].Value(schema.StageMVP))
}

func TestNormalizeStatusesIdempotent(t *testing.T) {
	cols := []string{schema.ColProject, schema.StageCADDesign, schema.StageTesting}
	raw := newTable(cols,
		map[string]*string{schema.ColProject: s("A"), schema.StageCADDesign: s("  N/A"), schema.StageTesting: nil},
		map[string]*string{schema.ColProject: s("B"), schema.StageCADDesign: s("weird "), schema.StageTesting: s("Done")},
	)

	once := NormalizeStatuses(raw, schema.StageNames())
	twice := NormalizeStatuses(once, schema.StageNames())
	assert.Equal(t, once, twice)
}

func TestNormalizeStatusesEmptyTable(t *testing.T) {
	out := NormalizeStatuses(schema.Table{Columns: []string{schema.ColProject}}, schema.StageNames())
	assert.Empty(t, out.Records)
}

func TestSummarizeStages(t *testing.T) {
	cols := []string{schema.ColProject, schema.StageCADDesign}
	table := newTable(cols,
		map[string]*string{schema.ColProject: s("A"), schema.StageCADDesign: s("Done")},
		map[string]*string{schema.ColProject: s("B"), schema.StageCADDesign: s("Done")},
		map[string]*string{schema.ColProject: s("C"), schema.StageCADDesign: s("In Progress")},
	)

	got := SummarizeStages(NormalizeStatuses(table, schema.StageNames()), schema.StageNames())

	assert.Equal(t, []schema.StageStatusCount{
		{Stage: "CAD Design", Status: "Done", Count: 2},
		{Stage: "CAD Design", Status: "In Progress", Count: 1},
	}, got)
}

func TestSummarizeStagesOrdering(t *testing.T) {
	cols := []string{schema.ColProject, schema.StagePCBDesign, schema.StageCADDesign}
	table := newTable(cols,
		map[string]*string{schema.StageCADDesign: s("zeta"), schema.StagePCBDesign: s("N/A")},
		map[string]*string{schema.StageCADDesign: s("Not Started"), schema.StagePCBDesign: s("Done")},
		map[string]*string{schema.StageCADDesign: s("alpha"), schema.StagePCBDesign: s("Done")},
		map[string]*string{schema.StageCADDesign: nil, schema.StagePCBDesign: s("In Progress")},
	)

	got := SummarizeStages(table, schema.StageNames())

	assert.Equal(t, []schema.StageStatusCount{
		{Stage: "CAD Design", Status: "Not Started", Count: 1},
		{Stage: "CAD Design", Status: "alpha", Count: 1},
		{Stage: "CAD Design", Status: "zeta", Count: 1},
		{Stage: "PCB Design", Status: "Done", Count: 2},
		{Stage: "PCB Design", Status: "In Progress", Count: 1},
		{Stage: "PCB Design", Status: "N/A", Count: 1},
	}, got, "nil cells are not observations")
}

func TestSummarizeStagesSumsToProjectsTimesStages(t *testing.T) {
	table := NormalizeStatuses(allStagesTable("In Progress", 4), schema.StageNames())
	table.Records[0].SetStatus(schema.StageMVP, s("Done"))
	table.Records[1].SetStatus(schema.StageTesting, s("blocked"))

	total := 0
	for _, row := range SummarizeStages(table, schema.StageNames()) {
		assert.Positive(t, row.Count)
		total += row.Count
	}
	assert.Equal(t, 4*len(schema.StageNames()), total)
}

func TestSummarizeStagesEmpty(t *testing.T) {
	tests := []struct {
		name  string
		table schema.Table
	}{
		{"no records", schema.Table{Columns: append([]string{schema.ColProject}, schema.StageNames()...)}},
		{"no stage columns", newTable([]string{schema.ColProject}, map[string]*string{schema.ColProject: s("A")})},
		{"zero table", schema.Table{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeStages(tt.table, schema.StageNames())
			assert.NotNil(t, got, "empty summaries serialize as []")
			assert.Empty(t, got)
		})
	}
}

func TestStageColumnPipeline(t *testing.T) {
	tests := []struct {
		name       string
		raw        []*string
		normalized []string
		summary    []schema.StageStatusCount
		doneCount  int
	}{
		{
			name:       "done, in progress and empty",
			raw:        []*string{s("Done"), s("In Progress"), nil},
			normalized: []string{"Done", "In Progress", "Not Started"},
			summary: []schema.StageStatusCount{
				{Stage: schema.StageCADDesign, Status: "Done", Count: 1},
				{Stage: schema.StageCADDesign, Status: "In Progress", Count: 1},
				{Stage: schema.StageCADDesign, Status: "Not Started", Count: 1},
			},
			doneCount: 1,
		},
		{
			name:       "padded values",
			raw:        []*string{s(" Done"), s("Done "), s("N/A")},
			normalized: []string{"Done", "Done", "N/A"},
			summary: []schema.StageStatusCount{
				{Stage: schema.StageCADDesign, Status: "Done", Count: 2},
				{Stage: schema.StageCADDesign, Status: "N/A", Count: 1},
			},
			doneCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := schema.Table{Columns: []string{schema.ColProject, schema.StageCADDesign}}
			for _, v := range tt.raw {
				raw.Records = append(raw.Records, record(map[string]*string{schema.StageCADDesign: v}))
			}

			table := NormalizeStatuses(raw, schema.StageNames())
			got := make([]string, 0, len(table.Records))
			for _, rec := range table.Records {
				got = append(got, rec.Value(schema.StageCADDesign))
			}
			assert.Equal(t, tt.normalized, got)
			assert.Equal(t, tt.summary, SummarizeStages(table, schema.StageNames()))
			assert.Equal(t, tt.doneCount, CountStatus(table, schema.StageCADDesign, "Done"))
		})
	}
}

func TestDistribution(t *testing.T) {
	cols := []string{schema.ColProject, schema.ColCategory}
	table := newTable(cols,
		map[string]*string{schema.ColCategory: s("Hardware")},
		map[string]*string{schema.ColCategory: s("Software")},
		map[string]*string{schema.ColCategory: s("Hardware")},
		map[string]*string{schema.ColCategory: nil},
	)

	tests := []struct {
		name     string
		column   string
		expected []schema.ValueCount
	}{
		{
			name:   "category counts",
			column: schema.ColCategory,
			expected: []schema.ValueCount{
				{Value: "Hardware", Count: 2},
				{Value: "Software", Count: 1},
			},
		},
		{
			name:     "absent column",
			column:   schema.ColDecision,
			expected: []schema.ValueCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribution(table, tt.column)
			assert.Equal(t, tt.column, got.Column)
			assert.Equal(t, tt.expected, got.Counts)
		})
	}
}

func TestDistributionTieBreak(t *testing.T) {
	cols := []string{schema.ColDecision}
	table := newTable(cols,
		map[string]*string{schema.ColDecision: s("Reject")},
		map[string]*string{schema.ColDecision: s("Accept")},
		map[string]*string{schema.ColDecision: s("Hold")},
		map[string]*string{schema.ColDecision: s("Hold")},
	)

	got := Distribution(table, schema.ColDecision)
	assert.Equal(t, []schema.ValueCount{
		{Value: "Hold", Count: 2},
		{Value: "Accept", Count: 1},
		{Value: "Reject", Count: 1},
	}, got.Counts)
}

func TestScoreStatus(t *testing.T) {
	tests := []struct {
		status   string
		expected float64
	}{
		{"Done", 1.0},
		{"In Progress", 0.5},
		{"Not Started", 0.0},
		{"N/A", 0.0},
		{"done", 0.0},
		{"Blocked", 0.0},
		{"", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreStatus(tt.status))
		})
	}
}

func TestScoreProject(t *testing.T) {
	t.Run("all done", func(t *testing.T) {
		table := allStagesTable("Done", 1)
		scores := ScoreProject(table.Records[0], schema.StageNames())
		require.Len(t, scores, 11)
		for _, v := range scores {
			assert.Equal(t, 1.0, v)
		}
		assert.InDelta(t, 100.0, Completion(scores), 1e-9)
	})

	t.Run("mixed and missing", func(t *testing.T) {
		rec := record(map[string]*string{
			schema.StageCADDesign: s("Done"),
			schema.StagePCBDesign: s("In Progress"),
			schema.StageMVP:       s("Unknown"),
			schema.StageDeploy:    nil,
		})
		scores := ScoreProject(rec, schema.StageNames())
		require.Len(t, scores, len(schema.StageNames()))
		assert.Equal(t, 1.0, scores[0])
		assert.Equal(t, 0.5, scores[1])
		for _, v := range scores[2:] {
			assert.Equal(t, 0.0, v)
		}
	})

	t.Run("custom stage list length", func(t *testing.T) {
		rec := schema.ProjectRecord{}
		assert.Empty(t, ScoreProject(rec, nil))
		assert.Len(t, ScoreProject(rec, []string{"a", "b"}), 2)
	})
}

func TestCountStatus(t *testing.T) {
	cols := []string{schema.ColProject, schema.ColCategory, schema.StageMVP}
	table := newTable(cols,
		map[string]*string{schema.ColCategory: s("Hardware"), schema.StageMVP: s("Done")},
		map[string]*string{schema.ColCategory: s("Software"), schema.StageMVP: s("Not Started")},
		map[string]*string{schema.ColCategory: s("Hardware"), schema.StageMVP: s("Done")},
	)

	assert.Equal(t, 2, CountStatus(table, schema.StageMVP, "Done"))
	assert.Equal(t, 1, CountStatus(table, schema.StageMVP, "Not Started"))
	assert.Equal(t, 0, CountStatus(table, schema.StageMVP, "In Progress"))
	assert.Equal(t, 0, CountStatus(table, schema.StageCADDesign, "Done"), "absent stage counts zero")
}

func TestCountStatusMatchesSummary(t *testing.T) {
	table := NormalizeStatuses(allStagesTable("Not Started", 3), schema.StageNames())
	table.Records[0].SetStatus(schema.StageCADDesign, s("Done"))
	table.Records[2].SetStatus(schema.StageCADDesign, s("In Progress"))

	for _, row := range SummarizeStages(table, schema.StageNames()) {
		assert.Equal(t, row.Count, CountStatus(table, row.Stage, row.Status), "%s/%s", row.Stage, row.Status)
	}
}

func TestBadges(t *testing.T) {
	table := NormalizeStatuses(allStagesTable("Done", 2), schema.StageNames())
	table.Records[1].SetStatus(schema.StageMVP, s("In Progress"))

	badges := Badges(table)

	assert.Equal(t, []schema.Badge{
		{Label: "Total Projects", Value: 2},
		{Label: "CAD Design Completed", Value: 2},
		{Label: "CAD Production Completed", Value: 2},
		{Label: "PCB Design Completed", Value: 2},
		{Label: "Mechanical Assembling Completed", Value: 2},
		{Label: "MVP Achieved", Value: 1},
	}, badges)
}

func TestBadgesEmpty(t *testing.T) {
	badges := Badges(schema.Table{})
	require.Len(t, badges, 6)
	for _, b := range badges {
		assert.Zero(t, b.Value, b.Label)
	}
}
