package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the local store. Foreign keys are enforced so profile,
// session, workout and chat rows cannot outlive their owning user or
// plan; the busy timeout covers a `stride reset` racing a running
// client.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite, single writer
	db.SetConnMaxLifetime(0)
	return db, nil
}

// WithTx runs fn in a transaction, rolling back on error.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Now is the timestamp source for account and session rows: UTC,
// truncated to seconds to match sqlite datetime granularity. Chat
// messages keep full precision because their ordering depends on it.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
