// Package testutil provides shared helpers for building a seeded SQLite
// fixture that mirrors the output of the csv2sqlite loader: both reference
// tables, all columns TEXT, lookup indexes in place.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE zip_county (
    "zip" TEXT,
    county TEXT,
    county_code TEXT
);
CREATE INDEX idx_zip_county_zip ON zip_county("zip");

CREATE TABLE county_health_rankings (
    State TEXT,
    County TEXT,
    State_code TEXT,
    County_code TEXT,
    Year_span TEXT,
    Measure_name TEXT,
    Measure_id TEXT,
    Numerator TEXT,
    Denominator TEXT,
    Raw_value TEXT,
    Confidence_Interval_Lower_Bound TEXT,
    Confidence_Interval_Upper_Bound TEXT,
    Data_Release_Year TEXT,
    fipscode TEXT
);
CREATE INDEX idx_health_county_measure ON county_health_rankings(fipscode, Measure_name);
`

// Seed rows. 02138 (Cambridge, MA) resolves to Middlesex County 25017 with
// two Adult obesity year spans plus one Unemployment row; 90210 resolves to
// Los Angeles County 06037. 11111 maps to two counties to exercise the
// first-match rule; its first county has no health rows at all.
var seed = []string{
	`INSERT INTO zip_county VALUES ('02138', 'Middlesex County', '25017')`,
	`INSERT INTO zip_county VALUES ('90210', 'Los Angeles County', '06037')`,
	`INSERT INTO zip_county VALUES ('11111', 'First County', '10001')`,
	`INSERT INTO zip_county VALUES ('11111', 'Second County', '10003')`,
	`INSERT INTO county_health_rankings VALUES
	    ('Massachusetts', 'Middlesex', '25', '017', '2003-2005', 'Adult obesity', '11',
	     '60771.02', '263078', '0.231', '0.224', '0.238', '2010', '25017')`,
	`INSERT INTO county_health_rankings VALUES
	    ('Massachusetts', 'Middlesex', '25', '017', '2004-2006', 'Adult obesity', '11',
	     '58980.10', '261768', '0.225', '0.218', '0.232', '2011', '25017')`,
	`INSERT INTO county_health_rankings VALUES
	    ('Massachusetts', 'Middlesex', '25', '017', '2010', 'Unemployment', '23',
	     '63460.00', '822498', '0.0772', '', '', '2012', '25017')`,
	`INSERT INTO county_health_rankings VALUES
	    ('California', 'Los Angeles', '06', '037', '2003-2005', 'Adult obesity', '11',
	     '1584046.82', '7696316', '0.206', '0.202', '0.210', '2010', '06037')`,
}

// CreateDB builds a seeded database file under t.TempDir and returns its
// path. The file outlives the returned handle; callers open it read-only
// the same way the server does.
func CreateDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create fixture schema: %v", err)
	}
	for _, stmt := range seed {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed fixture: %v", err)
		}
	}
	return path
}
