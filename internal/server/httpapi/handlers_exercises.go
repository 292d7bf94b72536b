package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/server/models"
	"github.com/avdeevs/exercisebox/internal/server/repositories/exercises"
)

// exerciseView is the public JSON shape of an exercise.
type exerciseView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  int32  `json:"difficulty"`
	IsPublic    bool   `json:"isPublic"`
}

func toExerciseView(e *models.Exercise) exerciseView {
	return exerciseView{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Difficulty:  e.Difficulty,
		IsPublic:    e.IsPublic,
	}
}

type createExerciseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Difficulty  *int32  `json:"difficulty"`
	IsPublic    *bool   `json:"isPublic"`
}

func (r *createExerciseRequest) validate() bool {
	if r.Name == nil || r.Description == nil || r.Difficulty == nil {
		return false
	}
	if len(*r.Name) < 3 || len(*r.Description) < 10 {
		return false
	}
	return *r.Difficulty >= 1 && *r.Difficulty <= 5
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var req createExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.validate() {
		writeInvalidInput(w)
		return
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	exercise, err := s.exercises.Create(r.Context(), UserID(r.Context()), *req.Name, *req.Description, *req.Difficulty, isPublic)
	if err != nil {
		s.logger.Error(r.Context(), "create exercise failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, toExerciseView(exercise))
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := exercises.ListFilter{
		Name:        q.Get("name"),
		Description: q.Get("description"),
	}
	if v := q.Get("difficulty"); v != "" {
		d, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			writeInvalidInput(w)
			return
		}
		filter.Difficulty = int32(d)
	}
	switch q.Get("sortBy") {
	case "":
	case "difficulty":
		filter.SortByDifficulty = true
	default:
		writeInvalidInput(w)
		return
	}

	list, err := s.exercises.List(r.Context(), UserID(r.Context()), filter)
	if err != nil {
		s.logger.Error(r.Context(), "list exercises failed", "error", err)
		writeInternalError(w)
		return
	}

	views := make([]exerciseView, 0, len(list))
	for _, e := range list {
		views = append(views, toExerciseView(e))
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	exercise, err := s.exercises.Get(r.Context(), chi.URLParam(r, "id"), UserID(r.Context()))
	if err != nil {
		s.writeExerciseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseView(exercise))
}

type updateExerciseRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Difficulty  *int32  `json:"difficulty"`
}

func (r *updateExerciseRequest) validate() bool {
	if r.Name == nil && r.Description == nil && r.Difficulty == nil {
		return false
	}
	if r.Name != nil && len(*r.Name) < 3 {
		return false
	}
	if r.Description != nil && len(*r.Description) < 10 {
		return false
	}
	if r.Difficulty != nil && (*r.Difficulty < 1 || *r.Difficulty > 5) {
		return false
	}
	return true
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	var req updateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.validate() {
		writeInvalidInput(w)
		return
	}

	params := exercises.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
	}
	exercise, err := s.exercises.Update(r.Context(), chi.URLParam(r, "id"), UserID(r.Context()), params)
	if err != nil {
		s.writeExerciseError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toExerciseView(exercise))
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := s.exercises.Delete(r.Context(), chi.URLParam(r, "id"), UserID(r.Context())); err != nil {
		s.writeExerciseError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeExerciseError maps exercise service errors to responses. Missing and
// not-authorized are both reported as 404 so a caller cannot probe for the
// existence of private exercises.
func (s *Server) writeExerciseError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrExerciseNotFound) || errors.Is(err, common.ErrNotExerciseOwner) {
		writeError(w, http.StatusNotFound, "Exercise not found")
		return
	}
	s.logger.Error(r.Context(), "exercise request failed", "error", err)
	writeInternalError(w)
}
