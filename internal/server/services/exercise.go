package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/server/models"
	"github.com/avdeevs/exercisebox/internal/server/repositories/exercises"
	"github.com/avdeevs/exercisebox/internal/server/repositories/repomanager"
)

// ExerciseService implements the exercise CRUD rules: creators must exist,
// private exercises are only visible and editable to their creator, deletion
// is soft. Field-format validation happens in the transport layer.
type ExerciseService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewExerciseService constructs an ExerciseService.
func NewExerciseService(db *sql.DB, m repomanager.RepositoryManager) *ExerciseService {
	return &ExerciseService{db: db, repos: m}
}

// Create inserts an exercise owned by creatorID. A missing creator is a data
// inconsistency (the id came from a verified token) and surfaces as
// common.ErrUserNotFound.
func (s *ExerciseService) Create(ctx context.Context, creatorID, name, description string, difficulty int32, isPublic bool) (*models.Exercise, error) {
	if _, err := s.repos.Users(s.db).GetByID(ctx, creatorID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrorInternal
	}

	exercise, err := s.repos.Exercises(s.db).Create(ctx, &models.Exercise{
		Name:        name,
		Description: description,
		Difficulty:  difficulty,
		IsPublic:    isPublic,
		CreatorID:   creatorID,
	})
	if err != nil {
		return nil, common.ErrorInternal
	}
	return exercise, nil
}

// fetchVisible loads the exercise and applies the ownership rule shared by
// Get, Update, and Delete: a private exercise belongs to its creator only.
func (s *ExerciseService) fetchVisible(ctx context.Context, id, userID string) (*models.Exercise, error) {
	exercise, err := s.repos.Exercises(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrExerciseNotFound
		}
		return nil, common.ErrorInternal
	}
	if !exercise.IsPublic && exercise.CreatorID != userID {
		return nil, common.ErrNotExerciseOwner
	}
	return exercise, nil
}

// Get returns one exercise, subject to the visibility rule.
func (s *ExerciseService) Get(ctx context.Context, id, userID string) (*models.Exercise, error) {
	return s.fetchVisible(ctx, id, userID)
}

// Update applies a partial update, subject to the visibility rule.
func (s *ExerciseService) Update(ctx context.Context, id, userID string, params exercises.UpdateParams) (*models.Exercise, error) {
	if _, err := s.fetchVisible(ctx, id, userID); err != nil {
		return nil, err
	}

	exercise, err := s.repos.Exercises(s.db).Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrExerciseNotFound
		}
		return nil, common.ErrorInternal
	}
	return exercise, nil
}

// Delete soft-deletes the exercise, subject to the visibility rule.
func (s *ExerciseService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.fetchVisible(ctx, id, userID); err != nil {
		return err
	}

	if _, err := s.repos.Exercises(s.db).SoftDelete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrExerciseNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// List returns the exercises visible to userID, narrowed by filter.
func (s *ExerciseService) List(ctx context.Context, userID string, filter exercises.ListFilter) ([]*models.Exercise, error) {
	list, err := s.repos.Exercises(s.db).List(ctx, userID, filter)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}
