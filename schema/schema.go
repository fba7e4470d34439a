// Package schema has configs, models and global variables for all parts of pdpboard.
package schema

// Table is an in-memory copy of the PROJECTS sheet.
// Columns keeps the trimmed header order as it appeared in the source.
type Table struct {
	Columns []string        // Trimmed header names in source order
	Records []ProjectRecord // One record per data row
}

// ProjectRecord is a single row of the PROJECTS sheet.
// Identity and contact columns are typed fields where an empty cell is "".
// Stage statuses are indexed by pipeline position and stay nil when empty.
type ProjectRecord struct {
	Founder     string
	Name        string
	Category    string
	Phone       string
	Email       string
	Decision    string
	Novelty     *string // Raw cell, nil when empty
	Description string

	Stages [StageCount]*string
	Extra  map[string]*string // Columns with no typed field
}

// HasColumn reports whether the table carries the named column.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of projects.
func (t Table) Len() int {
	return len(t.Records)
}

// Clone returns a deep copy so callers can rewrite cells freely.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Records: make([]ProjectRecord, len(t.Records)),
	}
	for i, rec := range t.Records {
		out.Records[i] = rec.Clone()
	}
	return out
}

// NewRecord builds a record from plain values. Empty strings stay as values, not nil.
func NewRecord(values map[string]string) ProjectRecord {
	var rec ProjectRecord
	for k, v := range values {
		rec.SetCell(k, Ptr(v))
	}
	return rec
}

// field returns the typed string field backing a column, nil for other columns.
func (r *ProjectRecord) field(column string) *string {
	switch column {
	case ColFounder:
		return &r.Founder
	case ColProject:
		return &r.Name
	case ColCategory:
		return &r.Category
	case ColPhone:
		return &r.Phone
	case ColEmail:
		return &r.Email
	case ColDecision:
		return &r.Decision
	case ColDescription:
		return &r.Description
	}
	return nil
}

// SetCell stores one source cell in the field that owns its column.
func (r *ProjectRecord) SetCell(column string, v *string) {
	if f := r.field(column); f != nil {
		*f = ""
		if v != nil {
			*f = *v
		}
		return
	}
	if column == ColNovelty {
		r.Novelty = v
		return
	}
	if i, ok := StageIndex(column); ok {
		r.Stages[i] = v
		return
	}
	if r.Extra == nil {
		r.Extra = make(map[string]*string)
	}
	r.Extra[column] = v
}

// Clone returns a deep copy of the record.
func (r ProjectRecord) Clone() ProjectRecord {
	out := r
	out.Novelty = clonePtr(r.Novelty)
	for i, v := range r.Stages {
		out.Stages[i] = clonePtr(v)
	}
	out.Extra = nil
	if r.Extra != nil {
		out.Extra = make(map[string]*string, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = clonePtr(v)
		}
	}
	return out
}

func clonePtr(v *string) *string {
	if v == nil {
		return nil
	}
	return Ptr(*v)
}

// Cell returns the raw cell for any column, nil when empty or absent.
func (r ProjectRecord) Cell(column string) *string {
	if f := r.field(column); f != nil {
		if *f == "" {
			return nil
		}
		return Ptr(*f)
	}
	if column == ColNovelty {
		return r.Novelty
	}
	if i, ok := StageIndex(column); ok {
		return r.Stages[i]
	}
	return r.Extra[column]
}

// Value returns the cell text or an empty string.
func (r ProjectRecord) Value(column string) string {
	if v := r.Cell(column); v != nil {
		return *v
	}
	return ""
}

// Status returns the status cell for a stage, nil for unknown stages.
func (r ProjectRecord) Status(stage string) *string {
	if i, ok := StageIndex(stage); ok {
		return r.Stages[i]
	}
	return nil
}

// SetStatus overwrites the status of a known stage.
func (r *ProjectRecord) SetStatus(stage string, v *string) {
	if i, ok := StageIndex(stage); ok {
		r.Stages[i] = v
	}
}
