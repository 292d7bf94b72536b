package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avdeevs/exercisebox/internal/common"
)

type signupRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r *signupRequest) validate() bool {
	if r.Username == nil || r.Password == nil {
		return false
	}
	if len(*r.Username) < 3 || len(*r.Username) > 50 {
		return false
	}
	return len(*r.Password) >= 6
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.validate() {
		writeInvalidInput(w)
		return
	}

	username, err := s.auth.Signup(r.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		s.logger.Error(r.Context(), "signup failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"username": username})
}

type loginRequest struct {
	Username   *string `json:"username"`
	Password   *string `json:"password"`
	DeviceInfo *string `json:"deviceInfo"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == nil || req.Password == nil {
		writeInvalidInput(w)
		return
	}

	res, err := s.auth.Login(r.Context(), *req.Username, *req.Password, req.DeviceInfo)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username":     res.Username,
		"accessToken":  res.AccessToken,
		"refreshToken": res.RefreshToken,
	})
}

type refreshRequest struct {
	RefreshToken *string `json:"refreshToken"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == nil {
		writeInvalidInput(w)
		return
	}

	res, err := s.auth.Refresh(r.Context(), *req.RefreshToken)
	if err != nil {
		// invalid token and missing owner are indistinguishable to the caller
		if errors.Is(err, common.ErrRefreshTokenInvalid) || errors.Is(err, common.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		s.logger.Error(r.Context(), "refresh failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username":    res.Username,
		"accessToken": res.AccessToken,
	})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Pong",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
