package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/server/models"
)

func TestHandleCreateExercise(t *testing.T) {
	svc := &stubExerciseService{
		createOut: &models.Exercise{ID: "e1", Name: "Pushups", Description: "Standard pushups", Difficulty: 3, IsPublic: true},
	}
	s := newTestServer(nil, svc, nil)

	body := `{"name":"Pushups","description":"Standard pushups","difficulty":3,"isPublic":true}`
	rec := doRequest(t, s, http.MethodPost, "/api/exercises", body, accessTokenFor(t, "u1", "alice"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var view exerciseView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if view.ID != "e1" || view.Difficulty != 3 || !view.IsPublic {
		t.Fatalf("unexpected view: %+v", view)
	}
	// creator id comes from the verified token, not the body
	if svc.lastUserID != "u1" {
		t.Fatalf("creator id not taken from token: %q", svc.lastUserID)
	}
}

func TestHandleCreateExercise_Validation(t *testing.T) {
	s := newTestServer(nil, nil, nil)
	token := accessTokenFor(t, "u1", "alice")

	cases := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"ab","description":"Standard pushups","difficulty":3}`},
		{"short description", `{"name":"Pushups","description":"too short","difficulty":3}`},
		{"difficulty low", `{"name":"Pushups","description":"Standard pushups","difficulty":0}`},
		{"difficulty high", `{"name":"Pushups","description":"Standard pushups","difficulty":6}`},
		{"missing difficulty", `{"name":"Pushups","description":"Standard pushups"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/api/exercises", tc.body, token)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleListExercises(t *testing.T) {
	svc := &stubExerciseService{
		listOut: []*models.Exercise{
			{ID: "e1", Name: "Pushups", Difficulty: 2, IsPublic: true},
			{ID: "e2", Name: "Squats", Difficulty: 3, IsPublic: true},
		},
	}
	s := newTestServer(nil, svc, nil)

	rec := doRequest(t, s, http.MethodGet, "/api/exercises?name=pu&difficulty=3&sortBy=difficulty", "", accessTokenFor(t, "u1", "alice"))
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var views []exerciseView
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("want 2 exercises, got %d", len(views))
	}
	if svc.lastFilter.Name != "pu" || svc.lastFilter.Difficulty != 3 || !svc.lastFilter.SortByDifficulty {
		t.Fatalf("filter not forwarded: %+v", svc.lastFilter)
	}
}

func TestHandleListExercises_BadQuery(t *testing.T) {
	s := newTestServer(nil, nil, nil)
	token := accessTokenFor(t, "u1", "alice")

	rec := doRequest(t, s, http.MethodGet, "/api/exercises?difficulty=hard", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad difficulty: want 400, got %d", rec.Code)
	}

	rec2 := doRequest(t, s, http.MethodGet, "/api/exercises?sortBy=name", "", token)
	if rec2.Code != http.StatusBadRequest {
		t.Fatalf("bad sortBy: want 400, got %d", rec2.Code)
	}
}

func TestHandleGetExercise(t *testing.T) {
	svc := &stubExerciseService{
		getOut: &models.Exercise{ID: "e1", Name: "Pushups", Description: "Standard pushups", Difficulty: 3, IsPublic: true},
	}
	s := newTestServer(nil, svc, nil)
	token := accessTokenFor(t, "u1", "alice")

	rec := doRequest(t, s, http.MethodGet, "/api/exercises/e1", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	// missing and foreign-private both come back as the same 404
	for _, svcErr := range []error{common.ErrExerciseNotFound, common.ErrNotExerciseOwner} {
		s2 := newTestServer(nil, &stubExerciseService{getErr: svcErr}, nil)
		rec2 := doRequest(t, s2, http.MethodGet, "/api/exercises/e1", "", token)
		if rec2.Code != http.StatusNotFound {
			t.Fatalf("%v: want 404, got %d", svcErr, rec2.Code)
		}
		if got := strings.TrimSpace(rec2.Body.String()); got != `{"error":"Exercise not found"}` {
			t.Fatalf("%v: unexpected body %s", svcErr, got)
		}
	}
}

func TestHandleUpdateExercise(t *testing.T) {
	svc := &stubExerciseService{
		updateOut: &models.Exercise{ID: "e1", Name: "Renamed", Description: "Standard pushups", Difficulty: 3},
	}
	s := newTestServer(nil, svc, nil)
	token := accessTokenFor(t, "u1", "alice")

	rec := doRequest(t, s, http.MethodPut, "/api/exercises/e1", `{"name":"Renamed"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastParams.Name == nil || *svc.lastParams.Name != "Renamed" {
		t.Fatalf("params not forwarded: %+v", svc.lastParams)
	}

	// at least one field is required
	rec2 := doRequest(t, s, http.MethodPut, "/api/exercises/e1", `{}`, token)
	if rec2.Code != http.StatusBadRequest {
		t.Fatalf("empty body: want 400, got %d", rec2.Code)
	}

	// per-field bounds still apply on partial updates
	rec3 := doRequest(t, s, http.MethodPut, "/api/exercises/e1", `{"difficulty":9}`, token)
	if rec3.Code != http.StatusBadRequest {
		t.Fatalf("bad difficulty: want 400, got %d", rec3.Code)
	}
}

func TestHandleDeleteExercise(t *testing.T) {
	s := newTestServer(nil, &stubExerciseService{}, nil)
	token := accessTokenFor(t, "u1", "alice")

	rec := doRequest(t, s, http.MethodDelete, "/api/exercises/e1", "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("want empty body, got %s", rec.Body.String())
	}

	s2 := newTestServer(nil, &stubExerciseService{deleteErr: common.ErrExerciseNotFound}, nil)
	rec2 := doRequest(t, s2, http.MethodDelete, "/api/exercises/e1", "", token)
	if rec2.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rec2.Code)
	}
}
