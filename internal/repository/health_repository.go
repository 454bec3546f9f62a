// Package repository contains data access logic separated from HTTP handlers.
// This file defines the repository for the two reference tables: zip_county
// (ZIP → county FIPS code) and county_health_rankings (one row per county,
// measure and year span). Both tables are read-only; they are populated by
// the csv2sqlite loader before the server starts and never written during
// request handling.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/cs1060f25/perdogarcia-hw4/internal/model"
)

// HealthRepo encapsulates all database queries for the health data lookup.
// It depends on a sql.DB connection pool which should be configured
// elsewhere. Every user-supplied value is passed as a bound parameter, never
// concatenated into query text, so injected SQL syntax is inert data and at
// worst resolves to an empty result.
type HealthRepo struct {
	db *sql.DB
}

// NewHealthRepo constructs a HealthRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

// CountyCodeForZip resolves a ZIP code to its county FIPS code. A ZIP maps
// to at most one county for lookup purposes; if duplicate rows exist only
// the first is used. Returns ErrZipNotFound when no row matches.
//
// The zip column is quoted because the loader preserves the quoted CSV
// header verbatim in the schema.
func (r *HealthRepo) CountyCodeForZip(ctx context.Context, zip string) (string, error) {
	const q = `SELECT county_code FROM zip_county WHERE "zip" = ? LIMIT 1`
	var code string
	if err := r.db.QueryRowContext(ctx, q, zip).Scan(&code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrZipNotFound
		}
		return "", classify(err)
	}
	return code, nil
}

// RecordsForCountyMeasure fetches every county_health_rankings row matching
// the given county FIPS code and measure name, in storage order. Multiple
// rows for the same pair are expected (one per year span). An empty slice
// with a nil error means the county has no data for that measure.
func (r *HealthRepo) RecordsForCountyMeasure(ctx context.Context, fips, measure string) ([]*model.CountyHealthRecord, error) {
	const q = `SELECT
	        State, County, State_code, County_code,
	        Year_span, Measure_name, Measure_id,
	        Numerator, Denominator, Raw_value,
	        Confidence_Interval_Lower_Bound, Confidence_Interval_Upper_Bound,
	        Data_Release_Year, fipscode
	    FROM county_health_rankings
	    WHERE fipscode = ? AND Measure_name = ?`
	rows, err := r.db.QueryContext(ctx, q, fips, measure)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var out []*model.CountyHealthRecord
	for rows.Next() {
		rec := new(model.CountyHealthRecord)
		if err := rows.Scan(
			&rec.State, &rec.County, &rec.StateCode, &rec.CountyCode,
			&rec.YearSpan, &rec.MeasureName, &rec.MeasureID,
			&rec.Numerator, &rec.Denominator, &rec.RawValue,
			&rec.CILowerBound, &rec.CIUpperBound,
			&rec.DataReleaseYear, &rec.FipsCode,
		); err != nil {
			return nil, classify(err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// classify maps low-level driver errors onto the repository's error
// taxonomy. A CANTOPEN from SQLite means the database file is missing or
// unreadable; everything else is a generic store failure. Driver text is
// wrapped, not discarded, so logs keep the detail while handlers report
// only the classification.
func classify(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CANTOPEN {
		return fmt.Errorf("%w: %v", ErrStoreNotFound, err)
	}
	return fmt.Errorf("store query failed: %w", err)
}
