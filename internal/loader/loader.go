// Package loader converts a tabular CSV file into a SQLite table. It is the
// data-preparation step that runs before the server ever starts: the
// zip_county and county_health_rankings reference tables are both produced
// by it. Every column is created as TEXT so values like ZIP codes keep
// their leading zeros and measure values keep their source formatting.
package loader

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// TableName derives the destination table name from the CSV filename:
// the base name with a trailing .csv/.CSV extension removed.
func TableName(csvPath string) string {
	name := filepath.Base(csvPath)
	if strings.HasSuffix(strings.ToLower(name), ".csv") {
		return name[:len(name)-4]
	}
	return name
}

// LoadCSV reads the CSV file at csvPath and recreates the corresponding
// table in db, returning the number of rows inserted. The table is dropped
// first so reloading a refreshed export never leaves duplicates. All inserts
// run in a single transaction with bound parameters.
//
// Rows shorter than the header are padded with empty strings and longer
// rows are truncated; rows whose every field is blank are skipped.
func LoadCSV(ctx context.Context, db *sql.DB, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // source exports have ragged rows

	rawHeaders, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	headers := cleanHeaders(rawHeaders)
	table := TableName(csvPath)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+quoteIdent(table)); err != nil {
		return 0, err
	}
	cols := make([]string, len(headers))
	for i, h := range headers {
		cols[i] = quoteIdent(h) + ` TEXT`
	}
	createSQL := `CREATE TABLE ` + quoteIdent(table) + ` (` + strings.Join(cols, ", ") + `)`
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return 0, fmt.Errorf("create table %s: %w", table, err)
	}

	quoted := make([]string, len(headers))
	marks := make([]string, len(headers))
	for i, h := range headers {
		quoted[i] = quoteIdent(h)
		marks[i] = "?"
	}
	insertSQL := `INSERT INTO ` + quoteIdent(table) +
		` (` + strings.Join(quoted, ", ") + `) VALUES (` + strings.Join(marks, ", ") + `)`
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read csv: %w", err)
		}
		if blankRow(record) {
			continue
		}
		row := make([]any, len(headers))
		for i := range headers {
			if i < len(record) {
				row[i] = cleanCell(record[i])
			} else {
				row[i] = ""
			}
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", count+1, err)
		}
		count++
	}

	if err := createIndexes(ctx, tx, table); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// createIndexes adds the lookup indexes the server depends on. Only the two
// known reference tables get indexes; arbitrary CSVs load without any.
func createIndexes(ctx context.Context, tx *sql.Tx, table string) error {
	var stmts []string
	switch table {
	case "zip_county":
		stmts = []string{
			`CREATE INDEX IF NOT EXISTS idx_zip_county_zip ON zip_county("zip")`,
		}
	case "county_health_rankings":
		stmts = []string{
			`CREATE INDEX IF NOT EXISTS idx_health_county_measure ON county_health_rankings(fipscode, Measure_name)`,
			`CREATE INDEX IF NOT EXISTS idx_health_measure ON county_health_rankings(Measure_name)`,
		}
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// cleanHeaders normalizes CSV header cells into usable column names:
// surrounding whitespace and quotes are stripped, a UTF-8 BOM on the first
// cell is removed, and an empty header falls back to a positional name.
func cleanHeaders(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimPrefix(h, "\uFEFF")
		h = strings.Trim(strings.TrimSpace(h), `"'`)
		if h == "" {
			h = fmt.Sprintf("column_%d", i)
		}
		out[i] = h
	}
	return out
}

func cleanCell(s string) string {
	return strings.Trim(s, `"' `)
}

func blankRow(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// quoteIdent quotes a SQL identifier. Identifiers come from CSV headers,
// which are trusted input during the load phase, but doubling embedded
// quotes keeps a stray character from breaking the statement.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
