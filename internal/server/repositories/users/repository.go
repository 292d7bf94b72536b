// Package users declares the credential-store contract for user records.
package users

import (
	"context"

	"github.com/avdeevs/exercisebox/internal/server/models"
)

// Repository is the narrow store interface the auth flow needs: lookup by
// unique name, lookup by id, create. Implementations return
// common.ErrorNotFound for absent rows.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
