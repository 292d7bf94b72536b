// Package interactions declares the store contract for per-user exercise
// interaction rows.
package interactions

import (
	"context"

	"github.com/avdeevs/exercisebox/internal/server/models"
)

// UpsertParams carries the fields of an interaction update. Nil pointer
// fields are left untouched on an existing row. Rating distinguishes three
// states: nil+ClearRating=false leaves the rating alone, nil+ClearRating=true
// clears it, non-nil sets it.
type UpsertParams struct {
	IsSaved     *bool
	IsFavorited *bool
	Rating      *int32
	ClearRating bool
}

// Repository persists one row per (user, exercise) pair.
type Repository interface {
	// Upsert creates the row when absent (unspecified fields take their
	// defaults: not saved, not favorited, no rating) or applies the
	// specified fields to the existing row.
	Upsert(ctx context.Context, userID, exerciseID string, params UpsertParams) (*models.Interaction, error)
}
