// Package repository defines error values reused across repository methods.
// These sentinels let handlers distinguish failure scenarios without ever
// seeing raw driver error text. For example, ErrZipNotFound means the ZIP
// simply has no county mapping, while ErrStoreNotFound means the database
// file itself is missing or unopenable.
package repository

import "errors"

// ErrZipNotFound is returned when a ZIP code has no row in zip_county.
// Handlers should translate this into the not-found response, the same one
// used for a resolved county with no matching measure rows.
var ErrZipNotFound = errors.New("zip code not found")

// ErrStoreNotFound is returned when the SQLite database file cannot be
// opened at all. Handlers should translate this into an HTTP 500 with the
// "Database not found" message, never into a not-found response.
var ErrStoreNotFound = errors.New("database not found")
