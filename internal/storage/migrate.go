package storage

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationResult reports the schema version before and after Migrate.
type MigrationResult struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// Migrate brings the schema up to date on the storage connection.
func (s *Storage) Migrate() (*MigrationResult, error) {
	driver, err := sqlite.WithInstance(s.DB, &sqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}
	// m.Close would also close the shared *sql.DB, so only the source is released.
	defer source.Close()

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	result := &MigrationResult{}

	preMigrationVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("read pre-migration version: %w", err)
	}
	result.PreMigrationVersion = preMigrationVersion

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		return nil, fmt.Errorf("read post-migration version: %w", err)
	}
	result.PostMigrationVersion = postMigrationVersion

	return result, nil
}
