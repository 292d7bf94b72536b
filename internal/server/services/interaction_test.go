package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/server/models"
	interactionsrepo "github.com/avdeevs/exercisebox/internal/server/repositories/interactions"
)

func TestInteractionUpdate_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeInteractionsRepo{
		upsertOut: &models.Interaction{ExerciseID: "e1", IsSaved: true, Rating: i32Ptr(4)},
	}
	rm := &fakeRepoManager{
		e: &fakeExercisesRepo{byIDOut: &models.Exercise{ID: "e1", IsPublic: true, CreatorID: "other"}},
		i: repo,
	}
	s := NewInteractionService(db, rm)

	params := interactionsrepo.UpsertParams{IsSaved: boolPtr(true), Rating: i32Ptr(4)}
	interaction, err := s.Update(context.Background(), "u1", "e1", params)
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if interaction.ExerciseID != "e1" || !interaction.IsSaved {
		t.Fatalf("unexpected interaction: %+v", interaction)
	}
	if repo.lastParams.IsSaved == nil || !*repo.lastParams.IsSaved {
		t.Fatalf("params not forwarded: %+v", repo.lastParams)
	}
}

func TestInteractionUpdate_MissingAndPrivateTargets(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	// a private exercise is indistinguishable from an absent one
	rmNF := &fakeRepoManager{e: &fakeExercisesRepo{byIDErr: common.ErrorNotFound}, i: &fakeInteractionsRepo{}}
	s := NewInteractionService(db, rmNF)
	if _, err := s.Update(context.Background(), "u1", "missing", interactionsrepo.UpsertParams{}); !errors.Is(err, common.ErrExerciseNotFound) {
		t.Fatalf("missing: want ErrExerciseNotFound, got %v", err)
	}

	rmPriv := &fakeRepoManager{
		e: &fakeExercisesRepo{byIDOut: &models.Exercise{ID: "e1", IsPublic: false, CreatorID: "other"}},
		i: &fakeInteractionsRepo{},
	}
	s2 := NewInteractionService(db, rmPriv)
	if _, err := s2.Update(context.Background(), "u1", "e1", interactionsrepo.UpsertParams{}); !errors.Is(err, common.ErrExerciseNotFound) {
		t.Fatalf("private: want ErrExerciseNotFound, got %v", err)
	}
}

func TestInteractionUpdate_OwnExercise(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		e: &fakeExercisesRepo{byIDOut: &models.Exercise{ID: "e1", IsPublic: true, CreatorID: "u1"}},
		i: &fakeInteractionsRepo{},
	}
	s := NewInteractionService(db, rm)

	if _, err := s.Update(context.Background(), "u1", "e1", interactionsrepo.UpsertParams{}); !errors.Is(err, common.ErrOwnExercise) {
		t.Fatalf("want ErrOwnExercise, got %v", err)
	}
}

func TestInteractionUpdate_RepoErrors(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rmLookup := &fakeRepoManager{e: &fakeExercisesRepo{byIDErr: errBoom{}}, i: &fakeInteractionsRepo{}}
	s := NewInteractionService(db, rmLookup)
	if _, err := s.Update(context.Background(), "u1", "e1", interactionsrepo.UpsertParams{}); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("lookup error: want ErrorInternal, got %v", err)
	}

	rmUpsert := &fakeRepoManager{
		e: &fakeExercisesRepo{byIDOut: &models.Exercise{ID: "e1", IsPublic: true, CreatorID: "other"}},
		i: &fakeInteractionsRepo{upsertErr: errBoom{}},
	}
	s2 := NewInteractionService(db, rmUpsert)
	if _, err := s2.Update(context.Background(), "u1", "e1", interactionsrepo.UpsertParams{}); !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("upsert error: want ErrorInternal, got %v", err)
	}
}

func TestInteractionUpdate_ClearRating(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeInteractionsRepo{
		upsertOut: &models.Interaction{ExerciseID: "e1"},
	}
	rm := &fakeRepoManager{
		e: &fakeExercisesRepo{byIDOut: &models.Exercise{ID: "e1", IsPublic: true, CreatorID: "other"}},
		i: repo,
	}
	s := NewInteractionService(db, rm)

	params := interactionsrepo.UpsertParams{ClearRating: true}
	if _, err := s.Update(context.Background(), "u1", "e1", params); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !repo.lastParams.ClearRating || repo.lastParams.Rating != nil {
		t.Fatalf("clear-rating not forwarded: %+v", repo.lastParams)
	}
}
