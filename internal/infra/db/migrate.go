package db

import (
	"database/sql"
	"embed"
	"fmt"

	"tee-sheet/internal/pkg/config"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations. Goose wants a database/sql
// handle, so it gets its own short-lived connection.
func Migrate(cfg config.DBConfig) error {
	sqlDB, err := sql.Open("pgx", cfg.BuildDSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
