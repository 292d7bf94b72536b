package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/server/models"
	"github.com/avdeevs/exercisebox/internal/server/repositories/interactions"
	"github.com/avdeevs/exercisebox/internal/server/repositories/repomanager"
)

// InteractionService records a user's saved/favorited/rating state for an
// exercise. Only existing public exercises can be interacted with, and never
// the user's own.
type InteractionService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewInteractionService constructs an InteractionService.
func NewInteractionService(db *sql.DB, m repomanager.RepositoryManager) *InteractionService {
	return &InteractionService{db: db, repos: m}
}

// Update upserts the (userID, exerciseID) interaction row. A private or
// soft-deleted target is indistinguishable from a missing one.
func (s *InteractionService) Update(ctx context.Context, userID, exerciseID string, params interactions.UpsertParams) (*models.Interaction, error) {
	exercise, err := s.repos.Exercises(s.db).GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrExerciseNotFound
		}
		return nil, common.ErrorInternal
	}
	if !exercise.IsPublic {
		return nil, common.ErrExerciseNotFound
	}
	if exercise.CreatorID == userID {
		return nil, common.ErrOwnExercise
	}

	interaction, err := s.repos.Interactions(s.db).Upsert(ctx, userID, exerciseID, params)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return interaction, nil
}
