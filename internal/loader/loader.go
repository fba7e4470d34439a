// Package loader reads PDP project sheets from Excel workbooks and CSV files.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/pdpboard/internal/contract"
	"github.com/huangsam/pdpboard/schema"
	"github.com/xuri/excelize/v2"
)

// Loader is the default TableLoader. It picks the reader from the file extension.
type Loader struct{}

var _ contract.TableLoader = &Loader{} // Compile-time check

// NewLoader returns a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the named sheet of an .xlsx/.xlsm workbook, or the whole of a .csv file.
func (l *Loader) Load(ctx context.Context, path string, sheet string) (schema.Table, error) {
	if err := ctx.Err(); err != nil {
		return schema.Table{}, err
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(ctx, path)
	case ".xlsx", ".xlsm":
		if sheet == "" {
			sheet = contract.DefaultSheet
		}
		rows, err = readWorkbook(ctx, path, sheet)
	default:
		return schema.Table{}, fmt.Errorf("unsupported file type: %s", path)
	}
	if err != nil {
		return schema.Table{}, err
	}
	return BuildTable(rows)
}

// readWorkbook streams the rows of one sheet.
func readWorkbook(ctx context.Context, path string, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	iter, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("open sheet %q: %w", sheet, err)
	}
	defer func() { _ = iter.Close() }()

	var rows [][]string
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cols, err := iter.Columns()
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		rows = append(rows, cols)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// readCSV reads every record of a CSV file. Ragged rows are allowed.
func readCSV(ctx context.Context, path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows, nil
}

// BuildTable turns raw rows into a Table. The first row is the header.
// Header names are trimmed, blank headers become "Unnamed: N" and repeated
// headers get a ".N" suffix. Empty cells become nil and fully empty rows are
// dropped. Both identity columns must be present.
func BuildTable(rows [][]string) (schema.Table, error) {
	if len(rows) == 0 {
		return schema.Table{}, fmt.Errorf("%w: sheet has no header row", contract.ErrMissingColumn)
	}

	columns := headerNames(rows[0])
	table := schema.Table{Columns: columns}
	for _, col := range schema.IdentityColumns {
		if !table.HasColumn(col) {
			return schema.Table{}, fmt.Errorf("%w: %q", contract.ErrMissingColumn, col)
		}
	}

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		var rec schema.ProjectRecord
		for i, col := range columns {
			var v *string
			if i < len(row) && row[i] != "" {
				v = schema.Ptr(row[i])
			}
			rec.SetCell(col, v)
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

// headerNames trims headers and makes them unique.
func headerNames(raw []string) []string {
	seen := make(map[string]int, len(raw))
	names := make([]string, len(raw))
	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
