// Package httpapi exposes the REST surface of the server: the public auth
// endpoints, the token-verifying request gate, and the protected exercise
// and interaction endpoints, all mounted under /api.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avdeevs/exercisebox/internal/logging"
	"github.com/avdeevs/exercisebox/internal/server/models"
	"github.com/avdeevs/exercisebox/internal/server/repositories/exercises"
	"github.com/avdeevs/exercisebox/internal/server/repositories/interactions"
	"github.com/avdeevs/exercisebox/internal/server/services"
)

// AuthService is the slice of the auth service the handlers consume.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string, deviceInfo *string) (*services.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*services.RefreshResult, error)
}

// ExerciseService is the slice of the exercise service the handlers consume.
type ExerciseService interface {
	Create(ctx context.Context, creatorID, name, description string, difficulty int32, isPublic bool) (*models.Exercise, error)
	Get(ctx context.Context, id, userID string) (*models.Exercise, error)
	Update(ctx context.Context, id, userID string, params exercises.UpdateParams) (*models.Exercise, error)
	Delete(ctx context.Context, id, userID string) error
	List(ctx context.Context, userID string, filter exercises.ListFilter) ([]*models.Exercise, error)
}

// InteractionService is the slice of the interaction service the handlers
// consume.
type InteractionService interface {
	Update(ctx context.Context, userID, exerciseID string, params interactions.UpsertParams) (*models.Interaction, error)
}

// Server ties the chi router, the services, and the request gate together.
type Server struct {
	addr         string
	logger       logging.Logger
	auth         AuthService
	exercises    ExerciseService
	interactions InteractionService
	accessSecret []byte
}

// NewServer constructs a Server listening on addr once Run is called.
func NewServer(addr string, logger logging.Logger, auth AuthService, ex ExerciseService, in InteractionService, accessSecret []byte) *Server {
	return &Server{
		addr:         addr,
		logger:       logger,
		auth:         auth,
		exercises:    ex,
		interactions: in,
		accessSecret: accessSecret,
	}
}

// Router builds the route tree. The three auth endpoints are the only public
// ones; everything else under /api sits behind the gate.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/refresh", s.handleRefresh)

		r.Group(func(r chi.Router) {
			r.Use(authenticate(s.accessSecret))

			r.Get("/ping", s.handlePing)

			r.Post("/exercises", s.handleCreateExercise)
			r.Get("/exercises", s.handleListExercises)
			r.Get("/exercises/{id}", s.handleGetExercise)
			r.Put("/exercises/{id}", s.handleUpdateExercise)
			r.Delete("/exercises/{id}", s.handleDeleteExercise)
			r.Post("/exercises/{id}/interactions", s.handleUpdateInteraction)
		})
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting http server", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info(ctx, "shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
