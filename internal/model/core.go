package model

import "time"

// Topic selects one of the fixed dataset schemas
type Topic string

const (
	Healthcare Topic = "Healthcare"
	Finance    Topic = "Finance"
	Education  Topic = "Education"
)

// FieldKind describes the scalar type a field's sampler produces
type FieldKind string

const (
	KindString FieldKind = "string"
	KindInt    FieldKind = "int"
	KindFloat  FieldKind = "float"
	KindDate   FieldKind = "date"
)

// IsNumeric reports whether values of this kind get numeric statistics and a histogram
func (k FieldKind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Field is one column of a dataset
type Field struct {
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
}

// Record is one synthetic row: field name -> string, int, float64 or time.Time (date)
type Record map[string]interface{}

// Dataset is the ordered result of one generation request.
// Fields defines column order for every consumer.
type Dataset struct {
	Topic   Topic    `json:"topic"`
	Fields  []Field  `json:"fields"`
	Records []Record `json:"records"`
}

// FieldNames returns the column names in schema order
func (d Dataset) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of records
func (d Dataset) Len() int {
	return len(d.Records)
}

// DateLayout is the ISO-8601 calendar date format used by every codec
const DateLayout = "2006-01-02"

// Date truncates t to a calendar date at UTC midnight
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
