package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/server/models"
	"github.com/avdeevs/exercisebox/internal/server/repositories/interactions"
)

// interactionView is the public JSON shape of an interaction row.
type interactionView struct {
	ExerciseID  string `json:"exerciseId"`
	IsSaved     bool   `json:"isSaved"`
	IsFavorited bool   `json:"isFavorited"`
	Rating      *int32 `json:"rating"`
}

// updateInteractionRequest keeps rating as raw JSON because the field is
// tri-state: absent leaves the stored rating alone, an explicit null clears
// it, a number sets it.
type updateInteractionRequest struct {
	IsSaved     *bool           `json:"isSaved"`
	IsFavorited *bool           `json:"isFavorited"`
	Rating      json.RawMessage `json:"rating"`
}

var jsonNull = []byte("null")

// params converts the request body into repository upsert params, reporting
// false for an invalid body.
func (r *updateInteractionRequest) params() (interactions.UpsertParams, bool) {
	p := interactions.UpsertParams{IsSaved: r.IsSaved, IsFavorited: r.IsFavorited}

	ratingPresent := len(r.Rating) > 0
	if ratingPresent {
		if bytes.Equal(bytes.TrimSpace(r.Rating), jsonNull) {
			p.ClearRating = true
		} else {
			var rating int32
			if err := json.Unmarshal(r.Rating, &rating); err != nil || rating < 1 || rating > 5 {
				return p, false
			}
			p.Rating = &rating
		}
	}

	if r.IsSaved == nil && r.IsFavorited == nil && !ratingPresent {
		return p, false
	}
	return p, true
}

func (s *Server) handleUpdateInteraction(w http.ResponseWriter, r *http.Request) {
	var req updateInteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidInput(w)
		return
	}
	params, ok := req.params()
	if !ok {
		writeInvalidInput(w)
		return
	}

	interaction, err := s.interactions.Update(r.Context(), UserID(r.Context()), chi.URLParam(r, "id"), params)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrExerciseNotFound):
			writeError(w, http.StatusNotFound, "Exercise not found")
		case errors.Is(err, common.ErrOwnExercise):
			writeError(w, http.StatusForbidden, "Cannot interact with your own exercise")
		default:
			s.logger.Error(r.Context(), "interaction update failed", "error", err)
			writeInternalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, toInteractionView(interaction))
}

func toInteractionView(i *models.Interaction) interactionView {
	return interactionView{
		ExerciseID:  i.ExerciseID,
		IsSaved:     i.IsSaved,
		IsFavorited: i.IsFavorited,
		Rating:      i.Rating,
	}
}
