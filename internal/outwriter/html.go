package outwriter

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/huangsam/pdpboard/schema"
)

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	GeneratedAt string
	Source      string
	Badges      []schema.Badge
	Projects    []string
	Selected    *schema.ProjectDetail
	Table       schema.TableResult
	ChartData   map[string]any
}

// writeDashboardHTML writes the dashboard as a single self-contained HTML page.
func writeDashboardHTML(w io.Writer, result schema.DashboardResult, now time.Time) error {
	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // json.Marshal escapes <, > and &
			},
			"cardRows": func(d schema.ProjectDetail) [][]schema.ProgressCard {
				return d.CardRows(schema.CardsPerRow)
			},
		}).Parse(htmlTemplate))
	})

	data := htmlData{
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		Source:      filepath.Base(result.Source),
		Badges:      result.Badges,
		Projects:    result.Projects,
		Selected:    result.Selected,
		Table:       result.Table,
		ChartData:   buildHTMLChartData(result),
	}

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// buildHTMLChartData collects everything the inline scripts draw.
func buildHTMLChartData(result schema.DashboardResult) map[string]any {
	stageOrder := result.StageOrder
	statuses := append([]string(nil), schema.CanonicalStatuses...)

	// One series per status, one value per stage, for the stacked bar chart.
	index := make(map[string]int, len(stageOrder))
	for i, s := range stageOrder {
		index[s] = i
	}
	series := make(map[string][]int)
	for _, s := range statuses {
		series[s] = make([]int, len(stageOrder))
	}
	for _, row := range result.Stages {
		if _, ok := series[row.Status]; !ok {
			statuses = append(statuses, row.Status)
			series[row.Status] = make([]int, len(stageOrder))
		}
		if i, ok := index[row.Stage]; ok {
			series[row.Status][i] += row.Count
		}
	}

	colors := make(map[string]string, len(statuses))
	for _, s := range statuses {
		colors[s] = schema.ChartColor(s)
	}

	return map[string]any{
		"stageOrder": stageOrder,
		"statuses":   statuses,
		"series":     series,
		"colors":     colors,
		"mvp":        result.MVP.Counts,
		"categories": result.Categories.Counts,
		"radars":     result.Radars,
		"details":    result.Details,
	}
}
