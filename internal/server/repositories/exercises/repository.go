// Package exercises declares the store contract for exercise rows.
package exercises

import (
	"context"

	"github.com/avdeevs/exercisebox/internal/server/models"
)

// UpdateParams carries the optional fields of a partial update; nil fields
// are left untouched.
type UpdateParams struct {
	Name        *string
	Description *string
	Difficulty  *int32
}

// ListFilter narrows and orders a listing. Zero values mean "no filter".
// Name and Description match case-insensitively as substrings; Difficulty
// matches exactly when non-zero.
type ListFilter struct {
	Name             string
	Description      string
	Difficulty       int32
	SortByDifficulty bool
}

// Repository defines exercise persistence. Reads exclude soft-deleted rows;
// Delete is a soft delete. Implementations return common.ErrorNotFound for
// absent rows.
type Repository interface {
	Create(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error)
	GetByID(ctx context.Context, id string) (*models.Exercise, error)
	Update(ctx context.Context, id string, params UpdateParams) (*models.Exercise, error)
	SoftDelete(ctx context.Context, id string) (*models.Exercise, error)

	// List returns the exercises visible to viewerID: public ones plus the
	// viewer's own, narrowed by filter.
	List(ctx context.Context, viewerID string, filter ListFilter) ([]*models.Exercise, error)
}
