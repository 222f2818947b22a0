package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"syngen/internal/model"
)

// TableName is the table holding the exported records
const TableName = "data"

// WriteDataset builds a single-table SQLite database from the dataset and returns
// the database file's bytes. The file lives in a temporary directory only while it is built.
func WriteDataset(ds model.Dataset) ([]byte, error) {
	dir, err := os.MkdirTemp("", "syngen-sqlite-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "export.db")
	if err := writeDB(dbPath, ds); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}
	return data, nil
}

func writeDB(dbPath string, ds model.Dataset) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// forces the file header to be written even when there is no table
	if _, err := db.Exec(`PRAGMA user_version = 1`); err != nil {
		return err
	}
	if len(ds.Fields) == 0 {
		return db.Close()
	}

	if _, err := db.Exec(createTableSQL(ds.Fields)); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(insertSQL(ds.Fields))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}

	args := make([]interface{}, len(ds.Fields))
	for i, rec := range ds.Records {
		for j, field := range ds.Fields {
			v, err := columnValue(rec[field.Name])
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("record %d field %q: %w", i, field.Name, err)
			}
			args[j] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return db.Close()
}

func createTableSQL(fields []model.Field) string {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = quoteIdent(f.Name) + " " + columnType(f.Kind)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(TableName), strings.Join(cols, ", "))
}

func insertSQL(fields []model.Field) string {
	cols := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = quoteIdent(f.Name)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(TableName), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

func columnType(kind model.FieldKind) string {
	switch kind {
	case model.KindInt:
		return "INTEGER"
	case model.KindFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

func columnValue(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case nil, string, int, int64, float64, float32:
		return val, nil
	case time.Time:
		return val.Format(model.DateLayout), nil
	default:
		return nil, fmt.Errorf("%w: %T", model.ErrUnsupportedValue, v)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
