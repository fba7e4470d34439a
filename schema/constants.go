package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for publishing.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
	HTMLOut    OutputMode = "html"
)

// All publish backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Canonical stage status values.
const (
	StatusDone       = "Done"
	StatusInProgress = "In Progress"
	StatusNotStarted = "Not Started"
	StatusNA         = "N/A"
)

// Column headers of the PROJECTS sheet.
const (
	ColFounder     = "Founder name"
	ColProject     = "Project/Startup name"
	ColCategory    = "Project Category"
	ColPhone       = "Phone"
	ColEmail       = "email"
	ColDecision    = "DECISION"
	ColNovelty     = "NOVELTY"
	ColDescription = "Project Description"
)

// Pipeline stages.
const (
	StageCADDesign         = "CAD Design"
	StagePCBDesign         = "PCB Design"
	StageCADProduction     = "CAD Production"
	StagePCBProduction     = "PCB Production"
	StageBackend           = "Backend development"
	StageFrontend          = "Frontend Development"
	StageMechanical        = "Mechanical Assembling"
	StageSystemIntegration = "System integration (Hardware & Software)"
	StageTesting           = "Testing"
	StageMVP               = "MVP"
	StageDeploy            = "Deploy"
)

// stageNames is the fixed pipeline order. It drives radar axes and card layout.
var stageNames = [...]string{
	StageCADDesign,
	StagePCBDesign,
	StageCADProduction,
	StagePCBProduction,
	StageBackend,
	StageFrontend,
	StageMechanical,
	StageSystemIntegration,
	StageTesting,
	StageMVP,
	StageDeploy,
}

// StageCount is the number of pipeline stages.
const StageCount = len(stageNames)

// StageNames returns a fresh copy of the ordered stage list.
func StageNames() []string {
	out := make([]string, len(stageNames))
	copy(out, stageNames[:])
	return out
}

// StageIndex returns the pipeline position of a stage.
func StageIndex(name string) (int, bool) {
	for i, s := range stageNames {
		if s == name {
			return i, true
		}
	}
	return -1, false
}

// IsStage reports whether name is one of the known pipeline stages.
func IsStage(name string) bool {
	_, ok := StageIndex(name)
	return ok
}

// CanonicalStatuses lists the four known status values in display order.
var CanonicalStatuses = []string{StatusDone, StatusInProgress, StatusNotStarted, StatusNA}

// IdentityColumns must be present in every loaded table.
var IdentityColumns = []string{ColProject, ColCategory}

// DisplayColumns returns the columns shown in the project table, in order.
func DisplayColumns() []string {
	cols := []string{ColFounder, ColProject, ColCategory, ColPhone, ColEmail, ColDecision, ColNovelty}
	return append(cols, StageNames()...)
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
	HTMLOut:    {},
}

// ValidDatabaseBackends lists all valid publish backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
