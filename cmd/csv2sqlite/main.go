// Command csv2sqlite converts a CSV file into a SQLite table named after
// the file. It is run once per reference table before the server starts:
//
//	csv2sqlite data.db zip_county.csv
//	csv2sqlite data.db county_health_rankings.csv
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/cs1060f25/perdogarcia-hw4/internal/loader"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: csv2sqlite <database> <csv_file>")
		os.Exit(1)
	}
	dbPath, csvPath := os.Args[1], os.Args[2]

	if _, err := os.Stat(csvPath); err != nil {
		log.Fatalf("csv file %s not found", csvPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	n, err := loader.LoadCSV(context.Background(), db, csvPath)
	if err != nil {
		log.Fatalf("load %s: %v", csvPath, err)
	}
	log.Printf("created table %q in %s (%d rows)", loader.TableName(csvPath), dbPath, n)
}
