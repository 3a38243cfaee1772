package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

// RunMigrations applies every pending migration under migrationsPath
// against databaseDSN using golang-migrate's pgx5 driver, so schema setup
// shares the same connection string as the pgxpool used everywhere else
// in this package. databaseDSN is a "postgres://" DSN as returned by
// config.DatabaseConfig.DSN(); it is rewritten to the "pgx5://" scheme
// golang-migrate's driver expects.
func RunMigrations(databaseDSN, migrationsPath string, log zerolog.Logger) error {
	pgx5URL := "pgx5://" + strings.TrimPrefix(databaseDSN, "postgres://")
	m, err := migrate.New("file://"+migrationsPath, pgx5URL)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		_, closeErr := m.Close()
		if closeErr != nil {
			log.Warn().Err(closeErr).Msg("migrate: source close failed")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no pending migrations")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}
	log.Info().Uint("version", version).Msg("migrations applied")
	return nil
}
