package postgres

import (
	"context"

	"github.com/aussiebroadwan/mutuals/internal/outreach/store/drivers/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// ApplyMigrations runs the embedded goose migrations. goose keeps its state
// in package globals, so this is not safe to call from two stores at once.
func (s *Store) ApplyMigrations() error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(context.Background(), s.db, ".")
}
