package repomanager

import (
	"context"
	"database/sql"

	"github.com/avdeevs/exercisebox/internal/dbx"
	"github.com/avdeevs/exercisebox/internal/server/repositories/exercises"
	"github.com/avdeevs/exercisebox/internal/server/repositories/interactions"
	"github.com/avdeevs/exercisebox/internal/server/repositories/refreshtokens"
	"github.com/avdeevs/exercisebox/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can run
// the same repository code against the pool or against an open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Exercises(db dbx.DBTX) exercises.Repository
	Interactions(db dbx.DBTX) interactions.Repository
}
