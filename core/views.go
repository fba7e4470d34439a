package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/pdpboard/core/agg"
	"github.com/huangsam/pdpboard/schema"
)

var (
	// ErrNoProjects is returned by per-project views when the sheet has no rows.
	ErrNoProjects = errors.New("no projects found")

	// ErrProjectNotFound is returned when no row carries the requested project name.
	ErrProjectNotFound = errors.New("project not found")
)

// placeholder for blank contact fields in the detail view.
const notAvailable = "N/A"

// ProjectNames returns the distinct project names in order of first appearance.
func ProjectNames(table schema.Table) []string {
	seen := make(map[string]struct{}, table.Len())
	names := make([]string, 0, table.Len())
	for _, rec := range table.Records {
		name := rec.Name
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// FindProject returns the first record carrying the given project name.
// An empty name selects the first project.
func FindProject(table schema.Table, name string) (schema.ProjectRecord, error) {
	if table.Len() == 0 {
		return schema.ProjectRecord{}, ErrNoProjects
	}
	if name == "" {
		return table.Records[0], nil
	}
	for _, rec := range table.Records {
		if rec.Name == name {
			return rec, nil
		}
	}
	return schema.ProjectRecord{}, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
}

// BuildRadar scores one record across the stage list.
func BuildRadar(rec schema.ProjectRecord, stages []string) schema.RadarResult {
	scores := agg.ScoreProject(rec, stages)
	completion := agg.Completion(scores)
	return schema.RadarResult{
		Project:    rec.Name,
		Stages:     append([]string(nil), stages...),
		Scores:     scores,
		Completion: completion,
		Label:      schema.GetProgressLabel(completion),
	}
}

// BuildProjectDetail assembles the detail view of one normalized record.
// Novelty is kept only when it has visible text. Blank phone and email fall back to "N/A".
func BuildProjectDetail(rec schema.ProjectRecord, stages []string) schema.ProjectDetail {
	detail := schema.ProjectDetail{
		Project:     rec.Name,
		Founder:     rec.Founder,
		Category:    rec.Category,
		Decision:    rec.Decision,
		Description: rec.Description,
		Phone:       orNotAvailable(rec.Phone),
		Email:       orNotAvailable(rec.Email),
		Cards:       make([]schema.ProgressCard, 0, len(stages)),
	}
	if !schema.IsBlank(rec.Novelty) {
		detail.Novelty = schema.Ptr(*rec.Novelty)
	}
	for _, stage := range stages {
		status := stageStatus(rec, stage)
		detail.Cards = append(detail.Cards, schema.ProgressCard{
			Stage:  stage,
			Status: status,
			Color:  schema.CardColor(status),
		})
	}
	return detail
}

// orNotAvailable substitutes "N/A" for blank text.
func orNotAvailable(v string) string {
	if strings.TrimSpace(v) == "" {
		return notAvailable
	}
	return v
}

// stageStatus reads a stage status, treating a missing cell as not started.
func stageStatus(rec schema.ProjectRecord, stage string) string {
	if v := rec.Status(stage); v != nil {
		return *v
	}
	return schema.StatusNotStarted
}

// BuildProjectTable projects the display columns and keeps rows where any
// displayed cell contains query, ignoring case. An empty query keeps every row.
func BuildProjectTable(table schema.Table, query string) schema.TableResult {
	columns := schema.DisplayColumns()
	result := schema.TableResult{Columns: columns, Rows: [][]string{}, Query: query}
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, rec := range table.Records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = rec.Value(col)
		}
		if needle != "" && !rowContains(row, needle) {
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

func rowContains(row []string, needle string) bool {
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}

// BuildSummary returns the headline badges.
func BuildSummary(table schema.Table) schema.SummaryResult {
	return schema.SummaryResult{Badges: agg.Badges(table)}
}

// BuildDashboard bundles every view over a normalized table. The selected
// project defaults to the first one; an empty table yields no selection.
func BuildDashboard(table schema.Table, source, selected string) (schema.DashboardResult, error) {
	stages := schema.StageNames()
	result := schema.DashboardResult{
		Source:     source,
		Badges:     agg.Badges(table),
		Stages:     agg.SummarizeStages(table, stages),
		MVP:        agg.Distribution(table, schema.StageMVP),
		Categories: agg.Distribution(table, schema.ColCategory),
		Projects:   ProjectNames(table),
		Radars:     []schema.RadarResult{},
		Details:    []schema.ProjectDetail{},
		Table:      BuildProjectTable(table, ""),
		StageOrder: stages,
		StatusColors: map[string]string{
			schema.StatusDone:       schema.ColorDone,
			schema.StatusInProgress: schema.ColorInProgress,
			schema.StatusNotStarted: schema.ColorNotStarted,
			schema.StatusNA:         schema.ColorNA,
		},
	}
	for _, name := range result.Projects {
		rec, err := FindProject(table, name)
		if err != nil {
			return schema.DashboardResult{}, err
		}
		result.Radars = append(result.Radars, BuildRadar(rec, stages))
		result.Details = append(result.Details, BuildProjectDetail(rec, stages))
	}

	if table.Len() == 0 {
		return result, nil
	}
	rec, err := FindProject(table, selected)
	if err != nil {
		return schema.DashboardResult{}, err
	}
	detail := BuildProjectDetail(rec, stages)
	result.Selected = &detail
	return result, nil
}
