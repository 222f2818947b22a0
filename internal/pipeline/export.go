package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"syngen/internal/model"
	"syngen/internal/store"
)

var (
	// ErrUnsupportedValue is returned when a record holds a value no codec can serialize
	ErrUnsupportedValue = model.ErrUnsupportedValue
	// ErrUnknownFormat is returned for an export format without a codec
	ErrUnknownFormat = errors.New("unknown export format")
)

// SheetName is the worksheet holding the data in XLSX exports
const SheetName = "Data"

// MIME types of the export artifacts
const (
	MIMECSV    = "text/csv"
	MIMEXLSX   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEJSON   = "application/json"
	MIMESQLite = "application/vnd.sqlite3"
)

type codec struct {
	mime   string
	encode func(model.Dataset) ([]byte, error)
}

var codecs = map[model.Format]codec{
	model.FormatCSV:    {mime: MIMECSV, encode: encodeCSV},
	model.FormatXLSX:   {mime: MIMEXLSX, encode: encodeXLSX},
	model.FormatJSON:   {mime: MIMEJSON, encode: encodeJSON},
	model.FormatSQLite: {mime: MIMESQLite, encode: store.WriteDataset},
}

// Formats lists the supported export formats in download-menu order
func Formats() []model.Format {
	return []model.Format{model.FormatCSV, model.FormatXLSX, model.FormatJSON, model.FormatSQLite}
}

// ParseFormat validates a user-supplied format name
func ParseFormat(name string) (model.Format, error) {
	f := model.Format(name)
	if _, ok := codecs[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Filename returns the suggested download name for a topic and format
func Filename(topic model.Topic, format model.Format) string {
	return fmt.Sprintf("%s_data.%s", topic, format)
}

// Encode serializes the dataset in the given format
func Encode(ds model.Dataset, format model.Format) (model.ExportArtifact, error) {
	c, ok := codecs[format]
	if !ok {
		return model.ExportArtifact{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	data, err := c.encode(ds)
	if err != nil {
		return model.ExportArtifact{}, fmt.Errorf("failed to encode %s: %w", format, err)
	}

	return model.ExportArtifact{
		Format:   format,
		Filename: Filename(ds.Topic, format),
		MIMEType: c.mime,
		Data:     data,
	}, nil
}

// EncodeCSV writes a header row plus one row per record, without an index column
func EncodeCSV(ds model.Dataset) (model.ExportArtifact, error) {
	return Encode(ds, model.FormatCSV)
}

// EncodeXLSX writes the same table as EncodeCSV to a single "Data" worksheet
func EncodeXLSX(ds model.Dataset) (model.ExportArtifact, error) {
	return Encode(ds, model.FormatXLSX)
}

// EncodeJSON writes an array of objects keyed by field name, indented by two spaces
func EncodeJSON(ds model.Dataset) (model.ExportArtifact, error) {
	return Encode(ds, model.FormatJSON)
}

func encodeCSV(ds model.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(ds.FieldNames()); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(ds.Fields))
	for i, rec := range ds.Records {
		for j, field := range ds.Fields {
			cell, err := formatCell(rec[field.Name])
			if err != nil {
				return nil, fmt.Errorf("record %d field %q: %w", i, field.Name, err)
			}
			row[j] = cell
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeJSON(ds model.Dataset) ([]byte, error) {
	// objects are assembled by hand so keys keep schema order
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, rec := range ds.Records {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.WriteByte('{')
		for j, field := range ds.Fields {
			if j > 0 {
				compact.WriteByte(',')
			}
			key, err := json.Marshal(field.Name)
			if err != nil {
				return nil, err
			}
			val, err := jsonValue(rec[field.Name])
			if err != nil {
				return nil, fmt.Errorf("record %d field %q: %w", i, field.Name, err)
			}
			compact.Write(key)
			compact.WriteByte(':')
			compact.Write(val)
		}
		compact.WriteByte('}')
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	return out.Bytes(), nil
}

func encodeXLSX(ds model.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if len(ds.Fields) > 0 {
		header := make([]interface{}, len(ds.Fields))
		for i, name := range ds.FieldNames() {
			header[i] = name
		}
		if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, rec := range ds.Records {
		row := make([]interface{}, len(ds.Fields))
		for j, field := range ds.Fields {
			cell, err := xlsxValue(rec[field.Name])
			if err != nil {
				return nil, fmt.Errorf("record %d field %q: %w", i, field.Name, err)
			}
			row[j] = cell
		}
		if len(row) == 0 {
			continue
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// formatCell renders a value as plain text: dates as YYYY-MM-DD, floats with 2 decimals
func formatCell(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64), nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', 2, 32), nil
	case time.Time:
		return val.Format(model.DateLayout), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func jsonValue(v interface{}) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte("null"), nil
	case string:
		return json.Marshal(val)
	case time.Time:
		return json.Marshal(val.Format(model.DateLayout))
	case int, int64, float64, float32:
		s, err := formatCell(val)
		return []byte(s), err
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func xlsxValue(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case nil, string, int, int64, float64, float32:
		return val, nil
	case time.Time:
		return val.Format(model.DateLayout), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
