// Package repomanager provides the PostgreSQL RepositoryManager, wiring
// repository constructors and schema migrations (goose) together.
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avdeevs/exercisebox/internal/dbx"
	"github.com/avdeevs/exercisebox/internal/server/migrations"
	"github.com/avdeevs/exercisebox/internal/server/repositories/exercises"
	"github.com/avdeevs/exercisebox/internal/server/repositories/interactions"
	"github.com/avdeevs/exercisebox/internal/server/repositories/refreshtokens"
	"github.com/avdeevs/exercisebox/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs the
// embedded migrations.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// Exercises returns an exercises.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Exercises(db dbx.DBTX) exercises.Repository {
	return exercises.NewPostgresRepository(db)
}

// Interactions returns an interactions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Interactions(db dbx.DBTX) interactions.Repository {
	return interactions.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing RunMigrations without a database.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations points goose at the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
