package pipeline

import (
	"errors"
	"fmt"
	"time"

	"syngen/internal/model"
)

// ErrInvalidRecord is returned when a record does not match its dataset's fields
var ErrInvalidRecord = errors.New("record does not match schema")

// ValidateDataset checks that every record carries exactly the dataset's fields
// and that each value has the type its field kind promises.
func ValidateDataset(ds model.Dataset) error {
	for i, rec := range ds.Records {
		if err := validateRecord(rec, ds.Fields); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

func validateRecord(rec model.Record, fields []model.Field) error {
	if len(rec) != len(fields) {
		return fmt.Errorf("%w: got %d fields, want %d", ErrInvalidRecord, len(rec), len(fields))
	}

	for _, field := range fields {
		val, ok := rec[field.Name]
		if !ok {
			return fmt.Errorf("%w: missing field %s", ErrInvalidRecord, field.Name)
		}
		if !kindMatches(field.Kind, val) {
			return fmt.Errorf("%w: field %s must be %s, got %T", ErrInvalidRecord, field.Name, field.Kind, val)
		}
	}

	return nil
}

func kindMatches(kind model.FieldKind, val interface{}) bool {
	switch val.(type) {
	case string:
		return kind == model.KindString
	case int, int64:
		return kind == model.KindInt
	case float64, float32:
		return kind == model.KindFloat
	case time.Time:
		return kind == model.KindDate
	default:
		return false
	}
}
