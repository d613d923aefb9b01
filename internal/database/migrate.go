package database

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies all up migrations to the open database.
// Migrations are embedded so the installed binary needs no data files.
func RunMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// Reset drops all application rows while keeping the schema. Used by
// the reset subcommand and the settings confirm flow.
func Reset(db *sql.DB) error {
	tables := []string{
		"chat_messages",
		"workout_log",
		"workout_exercises",
		"workouts",
		"plans",
		"exercises",
		"sessions",
		"profiles",
		"users",
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for _, t := range tables {
			if _, err := tx.Exec("DELETE FROM " + t); err != nil {
				return err
			}
		}
		return nil
	})
}
