// Package main provides a performance benchmarking tool for the pdpboard CLI.
// It generates synthetic PDP workbooks of increasing size, renders every view
// against them with and without the publish sink, and writes CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - pdpboard binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where the generated workbooks and SQLite sink are placed
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// BenchmarkResult holds the result of a benchmark run (average without the sink, first and average sink runs).
type BenchmarkResult struct {
	Workbook    string
	Command     string
	NoSinkTime  string
	FirstTime   string
	PublishTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoSinkRuns  int
	PublishRuns int
	Sizes       map[string]int
	Order       []string
	Commands    map[string]string
}

var (
	statuses   = []string{"Done", "In Progress", "Not Started", "N/A", ""}
	categories = []string{"Energy", "Robotics", "Agritech", "Health", "Mobility"}
	stages     = []string{
		"CAD Design", "PCB Design", "CAD Production", "PCB Production",
		"Backend development", "Frontend Development", "Mechanical Assembling",
		"System integration (Hardware & Software)", "Testing", "MVP", "Deploy",
	}
)

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:     os.Args[1],
		Timeout:     2 * time.Minute,
		NoSinkRuns:  3,
		PublishRuns: 4,
		Sizes:       map[string]int{"small": 50, "medium": 1000, "large": 20000},
		Order:       []string{"small", "medium", "large"},
		Commands: map[string]string{
			"summary":   "",
			"stages":    "",
			"dist":      "--column MVP",
			"table":     "--query robot",
			"dashboard": "--output json",
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	workbooks, err := generateWorkbooks(config)
	if err != nil {
		fmt.Printf("Failed to generate workbooks: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config, workbooks)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the pdpboard binary and the work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("pdpboard"); err != nil {
		return fmt.Errorf("pdpboard binary not found in PATH")
	}
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}
	return nil
}

// generateWorkbooks writes one synthetic PROJECTS workbook per configured size
func generateWorkbooks(config BenchmarkConfig) (map[string]string, error) {
	header := append([]string{
		"Founder name", "Project/Startup name", "Project Category", "Phone",
		"email", "DECISION", "NOVELTY", "Project Description",
	}, stages...)

	rng := rand.New(rand.NewPCG(42, 7))
	paths := make(map[string]string, len(config.Sizes))
	for _, name := range config.Order {
		path := filepath.Join(config.WorkDir, fmt.Sprintf("pdp_%s.xlsx", name))
		fmt.Printf("Generating %s (%d projects)\n", path, config.Sizes[name])
		if err := writeWorkbook(path, header, config.Sizes[name], rng); err != nil {
			return nil, err
		}
		paths[name] = path
	}
	return paths, nil
}

func writeWorkbook(path string, header []string, rows int, rng *rand.Rand) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "PROJECTS"); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter("PROJECTS")
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", toRow(header)); err != nil {
		return err
	}
	for i := range rows {
		values := []string{
			fmt.Sprintf("Founder %d", i),
			fmt.Sprintf("Project %05d", i),
			categories[rng.IntN(len(categories))],
			fmt.Sprintf("+1 555 %04d", i%10000),
			fmt.Sprintf("founder%d@example.com", i),
			"Go",
			"",
			"Synthetic benchmark project",
		}
		for range stages {
			values = append(values, statuses[rng.IntN(len(statuses))])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toRow(values)); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		row[i] = v
	}
	return row
}

// runBenchmarks executes every command against every generated workbook
func runBenchmarks(config BenchmarkConfig, workbooks map[string]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d workbooks, %v timeout, no-sink: %d runs, publish: %d runs\n",
		len(workbooks), config.Timeout, config.NoSinkRuns, config.PublishRuns)

	for _, name := range config.Order {
		fmt.Printf("Benchmarking %s\n", name)
		for _, command := range []string{"summary", "stages", "dist", "table", "dashboard"} {
			results = append(results, runBenchmarkSuite(config, name, workbooks[name], command, config.Commands[command]))
		}
	}
	return results
}

// runBenchmarkSuite runs both the no-sink and publish phases for a command
func runBenchmarkSuite(config BenchmarkConfig, name, workbook, command, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, name)

	runPhase := func(backend string, numRuns int, phaseName string) (first float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		times := runBenchmark(config, workbook, command, extraArgs, backend, numRuns)
		if len(times) == 0 {
			return 0, "TIMEOUT"
		}
		var sum float64
		for _, t := range times {
			sum += t
		}
		return times[0], fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	_, noSinkAvg := runPhase("none", config.NoSinkRuns, "No-sink")
	first, publishAvg := runPhase("sqlite", config.PublishRuns, "Publish")

	firstStr := "TIMEOUT"
	if first > 0 {
		firstStr = fmt.Sprintf("%.3fs", first)
	}

	fmt.Printf("  No-sink average: %s, First publish: %s, Publish average: %s\n", noSinkAvg, firstStr, publishAvg)

	return BenchmarkResult{
		Workbook:    name,
		Command:     command,
		NoSinkTime:  noSinkAvg,
		FirstTime:   firstStr,
		PublishTime: publishAvg,
	}
}

// runBenchmark executes a pdpboard command multiple times and returns the successful durations
func runBenchmark(config BenchmarkConfig, workbook, command, extraArgs, backend string, numRuns int) []float64 {
	args := []string{command, workbook, "--publish-backend", backend}
	if extraArgs != "" {
		args = append(args, strings.Fields(extraArgs)...)
	}
	if backend == "sqlite" {
		args = append(args, "--publish-db-connect", filepath.Join(config.WorkDir, "pdpboard-bench.db"))
	}

	var times []float64
	for range numRuns {
		start := time.Now()

		cmd := exec.Command("pdpboard", args...)
		cmd.Dir = config.WorkDir

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, extraArgs) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}
	return times
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, extraArgs string) bool {
	if strings.Contains(extraArgs, "--output json") {
		return strings.HasPrefix(strings.TrimSpace(string(output)), "{")
	}
	return strings.Contains(string(output), "Rendered in")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/pdpboard_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"workbook", "cmd", "no_sink_avg", "first_publish", "publish_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Workbook, result.Command, result.NoSinkTime, result.FirstTime, result.PublishTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results grouped by workbook
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, name := range config.Order {
		fmt.Printf("%s (%d projects):\n", name, config.Sizes[name])
		for _, result := range results {
			if result.Workbook == name {
				fmt.Printf("  %-10s: No-sink: %s, First: %s, Publish: %s\n", result.Command, result.NoSinkTime, result.FirstTime, result.PublishTime)
			}
		}
	}
	fmt.Printf("Benchmark script completed successfully\n")
}
