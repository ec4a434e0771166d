package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// schemaTable records which embedded migration the vault file is at.
const schemaTable = "vault_schema_version"

// RunMigrations brings the vault schema up to the latest embedded version.
// A vault that is already current is left untouched. A vault left dirty by
// an interrupted upgrade is reported instead of being migrated further.
func RunMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded schema: %w", err)
	}

	target, err := migratesqlite.WithInstance(db, &migratesqlite.Config{MigrationsTable: schemaTable})
	if err != nil {
		return fmt.Errorf("attach vault schema table: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", target)
	if err != nil {
		return fmt.Errorf("prepare vault schema upgrade: %w", err)
	}

	if version, dirty, verr := m.Version(); verr == nil && dirty {
		return fmt.Errorf("vault schema at version %d is dirty; restore from backup", version)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("upgrade vault schema: %w", err)
	}
	return nil
}
