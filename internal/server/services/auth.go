// Package services contains the server-side business logic. This file
// implements AuthService: signup, login, and access-token refresh on top of
// the credential store, bcrypt hashing, and the two-secret JWT scheme.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avdeevs/exercisebox/internal/common"
	"github.com/avdeevs/exercisebox/internal/dbx"
	"github.com/avdeevs/exercisebox/internal/server/auth"
	"github.com/avdeevs/exercisebox/internal/server/config"
	"github.com/avdeevs/exercisebox/internal/server/models"
	"github.com/avdeevs/exercisebox/internal/server/repositories/repomanager"
)

// LoginResult is what a successful login hands back to the client: the public
// username plus one token of each class.
type LoginResult struct {
	Username     string
	AccessToken  string
	RefreshToken string
}

// RefreshResult carries the outcome of a token refresh. The refresh token
// itself is not rotated, so only a new access token is returned.
type RefreshResult struct {
	Username    string
	AccessToken string
}

// AuthService implements the authentication flows:
//   - Signup: create a user with a hashed password
//   - Login: verify credentials, revoke prior sessions, mint both tokens
//   - Refresh: validate a stored refresh token and mint a new access token
type AuthService struct {
	db                           *sql.DB
	repos                        repomanager.RepositoryManager
	accessTokenSecret            []byte
	refreshTokenSecret           []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	bcryptCost                   int
}

// NewAuthService constructs an AuthService from repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repos:                        m,
		accessTokenSecret:            []byte(cfg.AccessTokenSecret),
		refreshTokenSecret:           []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		bcryptCost:                   cfg.BcryptCost,
	}
}

// Signup creates a new user and returns the public username. A taken name
// yields common.ErrUsernameTaken; the password hash never leaves the service.
// Format validation (length bounds) happens in the transport layer; the
// schema's unique constraint on name backs up the check-then-create here.
func (s *AuthService) Signup(ctx context.Context, username, password string) (string, error) {
	repo := s.repos.Users(s.db)

	_, err := repo.GetByName(ctx, username)
	if err == nil {
		return "", common.ErrUsernameTaken
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{Name: username, PasswordHash: hash})
	if err != nil {
		return "", common.ErrorInternal
	}
	return user.Name, nil
}

// Login verifies the credentials and, on success, issues an access token and
// a refresh token. Unknown user and wrong password are indistinguishable:
// both return common.ErrInvalidCredentials. All previously unrevoked refresh
// tokens of the user are revoked and the new one inserted inside a single
// transaction, enforcing the single-active-session policy atomically.
func (s *AuthService) Login(ctx context.Context, username, password string, deviceInfo *string) (*LoginResult, error) {
	user, err := s.repos.Users(s.db).GetByName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Name, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, s.refreshTokenSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repos.RefreshTokens(tx)
		if err := repoTx.RevokeAllForUser(ctx, user.ID); err != nil {
			return err
		}
		return repoTx.Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration, deviceInfo)
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{
		Username:     user.Name,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh validates a refresh token by exact-string lookup and mints a new
// access token. Not-found, revoked, and expired all surface as
// common.ErrRefreshTokenInvalid so a caller cannot tell them apart; a token
// row whose owner is gone surfaces as common.ErrUserNotFound, a server-side
// integrity signal. The refresh token is not rotated and may be reused until
// its own expiry or until a new login supersedes it.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	row, err := s.repos.RefreshTokens(s.db).FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrRefreshTokenInvalid
		}
		return nil, common.ErrorInternal
	}
	if row.Revoked || row.ExpiresAt.Before(time.Now()) {
		return nil, common.ErrRefreshTokenInvalid
	}

	user, err := s.repos.Users(s.db).GetByID(ctx, row.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrorInternal
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Name, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &RefreshResult{Username: user.Name, AccessToken: accessToken}, nil
}
