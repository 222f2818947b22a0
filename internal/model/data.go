package model

import "errors"

// Format identifies an export codec
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
)

// ExportArtifact is a serialized dataset ready for download
type ExportArtifact struct {
	Format   Format `json:"format"`
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"-"`
}

// ColumnStats is the describe()-style summary of one field.
// Nil pointers mean the statistic does not apply to the field or is undefined.
type ColumnStats struct {
	Field string    `json:"field"`
	Kind  FieldKind `json:"kind"`
	Count int       `json:"count"`

	// non-numeric fields
	Unique *int    `json:"unique,omitempty"`
	Top    *string `json:"top,omitempty"`
	Freq   *int    `json:"freq,omitempty"`

	// numeric fields
	Mean *float64 `json:"mean,omitempty"`
	Std  *float64 `json:"std,omitempty"`
	Min  *float64 `json:"min,omitempty"`
	P25  *float64 `json:"25%,omitempty"`
	P50  *float64 `json:"50%,omitempty"`
	P75  *float64 `json:"75%,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

// Histogram holds equal-width bin counts for one numeric field.
// Edges has len(Counts)+1 entries; the last bin includes its right edge.
type Histogram struct {
	Field  string    `json:"field"`
	Title  string    `json:"title"`
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// Report is what the summary reporter hands to the display layer
type Report struct {
	RecordCount int           `json:"record_count"`
	Columns     []ColumnStats `json:"columns"`
	Histograms  []Histogram   `json:"histograms"`
}

// ErrUnsupportedValue is returned when a record holds a value no codec can serialize
var ErrUnsupportedValue = errors.New("unsupported value type")
