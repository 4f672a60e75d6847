package recorder

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var journalSchema embed.FS

// schemaTable records the applied journal schema version inside the journal database.
const schemaTable = "journal_schema_version"

// migrateJournal applies pending schema changes to the journal at dbPath and
// returns the schema version it ends on.
func migrateJournal(dbPath string) (uint, error) {
	src, err := iofs.New(journalSchema, "migrations")
	if err != nil {
		return 0, fmt.Errorf("read journal schema: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+dbPath+"?x-migrations-table="+schemaTable)
	if err != nil {
		return 0, fmt.Errorf("open journal for migration: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply journal schema: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return 0, fmt.Errorf("read journal schema version: %w", err)
	}
	if dirty {
		return version, fmt.Errorf("journal schema version %d is dirty", version)
	}
	return version, nil
}
