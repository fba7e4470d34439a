package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/pdpboard/schema"
)

// Default values for configuration.
const (
	DefaultDataFile  = "PDP-NEW.xlsx"
	DefaultSheet     = "PROJECTS"
	DefaultPrecision = 1
)

// SupportedExtensions lists the workbook formats the loader understands.
var SupportedExtensions = map[string]struct{}{
	".xlsx": {},
	".xlsm": {},
	".csv":  {},
}

// Config holds the runtime configuration for a dashboard run.
// This struct remains the "final, validated" config.
type Config struct {
	DataPath   string // Absolute path to the workbook
	Sheet      string
	Project    string // Selected project for radar and detail views
	Query      string // Case-insensitive table search
	Column     string // Column for the distribution view
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	Watch      bool

	PublishBackend   schema.DatabaseBackend
	PublishDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	File             string `mapstructure:"file"`
	Sheet            string `mapstructure:"sheet"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Width            int    `mapstructure:"width"`
	PublishBackend   string `mapstructure:"publish-backend"`
	PublishDBConnect string `mapstructure:"publish-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from per-view flags ---
	Project string `mapstructure:"project"`
	Query   string `mapstructure:"query"`
	Column  string `mapstructure:"column"`
	Watch   bool   `mapstructure:"watch"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := resolveDataPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("publish-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("publish-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the publish backend configuration.
// An empty backend means publishing is disabled.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend := strings.ToLower(strings.TrimSpace(input.PublishBackend))
	if backend == "" {
		backend = string(schema.NoneBackend)
	}
	cfg.PublishBackend = schema.DatabaseBackend(backend)
	if _, ok := schema.ValidDatabaseBackends[cfg.PublishBackend]; !ok {
		return fmt.Errorf("invalid publish backend '%s'. must be sqlite, mysql, postgresql, none", input.PublishBackend)
	}
	cfg.PublishDBConnect = input.PublishDBConnect
	return ValidateDatabaseConnectionString(cfg.PublishBackend, cfg.PublishDBConnect)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Watch = input.Watch
	cfg.Project = strings.TrimSpace(input.Project)
	cfg.Query = strings.TrimSpace(input.Query)
	cfg.Column = strings.TrimSpace(input.Column)

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Sheet ---
	cfg.Sheet = strings.TrimSpace(input.Sheet)
	if cfg.Sheet == "" {
		cfg.Sheet = DefaultSheet
	}

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet, html", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if cfg.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", cfg.Width)
	}

	return nil
}

// resolveDataPath resolves the workbook path and checks that it can be loaded.
// A positional argument takes precedence over the --file flag.
func resolveDataPath(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.DataPathStr
	if searchPath == "" {
		searchPath = input.File
	}
	if searchPath == "" {
		searchPath = DefaultDataFile
	}

	absPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absPath = filepath.Clean(absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("data file %q: %w", searchPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("data file %q is a directory", searchPath)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if _, ok := SupportedExtensions[ext]; !ok {
		return fmt.Errorf("unsupported data file extension '%s'. must be .xlsx, .xlsm, .csv", ext)
	}

	cfg.DataPath = absPath
	return nil
}
