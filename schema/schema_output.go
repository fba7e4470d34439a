package schema

// StageStatusCount is one row of the stage status summary.
type StageStatusCount struct {
	Stage  string `json:"stage" yaml:"stage"`
	Status string `json:"status" yaml:"status"`
	Count  int    `json:"count" yaml:"count"`
}

// ValueCount is one row of a categorical distribution.
type ValueCount struct {
	Value string `json:"value" yaml:"value"`
	Count int    `json:"count" yaml:"count"`
}

// DistributionResult is the distribution of a single column.
type DistributionResult struct {
	Column string       `json:"column" yaml:"column"`
	Counts []ValueCount `json:"counts" yaml:"counts"`
}

// Badge is a headline metric on the summary row.
type Badge struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// RadarResult holds the stage scores of one project.
type RadarResult struct {
	Project    string    `json:"project" yaml:"project"`
	Stages     []string  `json:"stages" yaml:"stages"`
	Scores     []float64 `json:"scores" yaml:"scores"`
	Completion float64   `json:"completion" yaml:"completion"` // Mean score scaled to 0-100
	Label      string    `json:"label" yaml:"label"`
}

// ProgressCard is one stage tile of the detail view.
type ProgressCard struct {
	Stage  string `json:"stage" yaml:"stage"`
	Status string `json:"status" yaml:"status"`
	Color  string `json:"color" yaml:"color"`
}

// ProjectDetail is the detail view of one project.
type ProjectDetail struct {
	Project     string         `json:"project" yaml:"project"`
	Founder     string         `json:"founder" yaml:"founder"`
	Category    string         `json:"category" yaml:"category"`
	Decision    string         `json:"decision" yaml:"decision"`
	Description string         `json:"description" yaml:"description"`
	Novelty     *string        `json:"novelty,omitempty" yaml:"novelty,omitempty"` // Key Innovation, nil when blank
	Phone       string         `json:"phone" yaml:"phone"`
	Email       string         `json:"email" yaml:"email"`
	Cards       []ProgressCard `json:"cards" yaml:"cards"`
}

// CardRows splits the cards into rows of the given width.
func (d ProjectDetail) CardRows(width int) [][]ProgressCard {
	if width <= 0 {
		width = CardsPerRow
	}
	var rows [][]ProgressCard
	for i := 0; i < len(d.Cards); i += width {
		end := min(i+width, len(d.Cards))
		rows = append(rows, d.Cards[i:end])
	}
	return rows
}

// TableResult is the projected project table.
type TableResult struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
	Query   string     `json:"query,omitempty" yaml:"query,omitempty"`
}

// SummaryResult holds the headline badges.
type SummaryResult struct {
	Badges []Badge `json:"badges" yaml:"badges"`
}

// DashboardResult bundles every view of the dashboard.
type DashboardResult struct {
	Source       string             `json:"source" yaml:"source"`
	Badges       []Badge            `json:"badges" yaml:"badges"`
	Stages       []StageStatusCount `json:"stages" yaml:"stages"`
	MVP          DistributionResult `json:"mvp" yaml:"mvp"`
	Categories   DistributionResult `json:"categories" yaml:"categories"`
	Projects     []string           `json:"projects" yaml:"projects"`
	Radars       []RadarResult      `json:"radars" yaml:"radars"`
	Selected     *ProjectDetail     `json:"selected,omitempty" yaml:"selected,omitempty"`
	Details      []ProjectDetail    `json:"details" yaml:"details"`
	Table        TableResult        `json:"table" yaml:"table"`
	StageOrder   []string           `json:"stage_order" yaml:"stage_order"`
	StatusColors map[string]string  `json:"status_colors" yaml:"status_colors"`
}

// CardsPerRow is the detail view grid width.
const CardsPerRow = 3

// GetProgressLabel returns a plain text label for a completion percentage.
func GetProgressLabel(completion float64) string {
	switch {
	case completion >= 100:
		return "Complete"
	case completion >= 60:
		return "Advanced"
	case completion >= 30:
		return "Underway"
	case completion > 0:
		return "Early"
	default:
		return "Idle"
	}
}
