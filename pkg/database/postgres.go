package database

import (
	"database/sql"
	"fmt"

	"github.com/agromercado/agromercado-backend/pkg/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/rs/zerolog/log"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB(cfg *config.Config) (*sql.DB, error) {
	var err error
	DB, err = sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error open connecting: %w", err)
	}

	if err = DB.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("connected to postgres")
	return DB, nil
}

// RunMigrations applies all pending schema migrations.
func RunMigrations(cfg *config.Config) error {
	m, err := migrate.New(cfg.MigrationsURL, cfg.MigrateDSN())
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}
	log.Info().Msg("db migrated successfully")
	return nil
}

func CloseDB() error {
	if DB != nil {
		if err := DB.Close(); err != nil {
			return fmt.Errorf("error closing database connection: %w", err)
		}
		log.Info().Msg("database connection closed")
	}
	return nil
}
