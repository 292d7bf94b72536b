package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/server/models"
)

func TestHandleUpdateInteraction(t *testing.T) {
	rating := int32(4)
	svc := &stubInteractionService{
		out: &models.Interaction{ExerciseID: "e1", IsSaved: true, Rating: &rating},
	}
	s := newTestServer(nil, nil, svc)

	body := `{"isSaved":true,"rating":4}`
	rec := doRequest(t, s, http.MethodPost, "/api/exercises/e1/interactions", body, accessTokenFor(t, "u1", "alice"))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var view interactionView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if view.ExerciseID != "e1" || !view.IsSaved || view.Rating == nil || *view.Rating != 4 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if svc.lastParams.Rating == nil || *svc.lastParams.Rating != 4 || svc.lastParams.ClearRating {
		t.Fatalf("rating not forwarded: %+v", svc.lastParams)
	}
}

func TestHandleUpdateInteraction_RatingTriState(t *testing.T) {
	token := accessTokenFor(t, "u1", "alice")

	// explicit null clears the stored rating
	svcNull := &stubInteractionService{out: &models.Interaction{ExerciseID: "e1"}}
	s := newTestServer(nil, nil, svcNull)
	rec := doRequest(t, s, http.MethodPost, "/api/exercises/e1/interactions", `{"rating":null}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("null rating: want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !svcNull.lastParams.ClearRating || svcNull.lastParams.Rating != nil {
		t.Fatalf("null rating not mapped to clear: %+v", svcNull.lastParams)
	}

	// absent rating leaves it alone
	svcAbsent := &stubInteractionService{out: &models.Interaction{ExerciseID: "e1"}}
	s2 := newTestServer(nil, nil, svcAbsent)
	rec2 := doRequest(t, s2, http.MethodPost, "/api/exercises/e1/interactions", `{"isFavorited":true}`, token)
	if rec2.Code != http.StatusOK {
		t.Fatalf("absent rating: want 200, got %d", rec2.Code)
	}
	if svcAbsent.lastParams.ClearRating || svcAbsent.lastParams.Rating != nil {
		t.Fatalf("absent rating must not touch it: %+v", svcAbsent.lastParams)
	}
}

func TestHandleUpdateInteraction_Validation(t *testing.T) {
	s := newTestServer(nil, nil, nil)
	token := accessTokenFor(t, "u1", "alice")

	cases := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"rating too low", `{"rating":0}`},
		{"rating too high", `{"rating":6}`},
		{"rating not a number", `{"rating":"five"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/exercises/e1/interactions", tc.body, token)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleUpdateInteraction_Errors(t *testing.T) {
	token := accessTokenFor(t, "u1", "alice")
	body := `{"isSaved":true}`

	s := newTestServer(nil, nil, &stubInteractionService{err: common.ErrExerciseNotFound})
	rec := doRequest(t, s, http.MethodPost, "/api/exercises/e1/interactions", body, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("not found: want 404, got %d", rec.Code)
	}

	s2 := newTestServer(nil, nil, &stubInteractionService{err: common.ErrOwnExercise})
	rec2 := doRequest(t, s2, http.MethodPost, "/api/exercises/e1/interactions", body, token)
	if rec2.Code != http.StatusForbidden {
		t.Fatalf("own exercise: want 403, got %d", rec2.Code)
	}
	if got := strings.TrimSpace(rec2.Body.String()); got != `{"error":"Cannot interact with your own exercise"}` {
		t.Fatalf("own exercise: unexpected body %s", got)
	}

	s3 := newTestServer(nil, nil, &stubInteractionService{err: common.ErrorInternal})
	rec3 := doRequest(t, s3, http.MethodPost, "/api/exercises/e1/interactions", body, token)
	if rec3.Code != http.StatusInternalServerError {
		t.Fatalf("internal: want 500, got %d", rec3.Code)
	}
}
