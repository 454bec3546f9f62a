package database

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// Open creates a read-only connection pool for the SQLite database at path.
// mode=ro keeps request handling from ever acquiring a write lock, so
// concurrent lookups never block each other.
//
// The file is allowed to be absent at startup: the serving contract reports
// a missing store per request rather than refusing to boot, so Open only
// verifies the connection when the file already exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}

	// Pool settings. Reads are cheap and never lock, so a small pool is
	// plenty for the reference tables.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if _, statErr := os.Stat(path); statErr == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
