// Package common defines the sentinel errors shared across repositories,
// services, and the HTTP layer. Callers match them with errors.Is; the HTTP
// layer maps each kind to a status code, so no control flow ever depends on
// error message text.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic service-level errors.
	ErrorInternal = errors.New("internal error")

	// Auth flow errors. ErrInvalidCredentials deliberately covers both
	// unknown-user and wrong-password so callers cannot enumerate accounts.
	// ErrRefreshTokenInvalid covers not-found, revoked, and expired alike;
	// ErrUserNotFound is the one distinct case (token row points at a user
	// that no longer exists, a server-side integrity problem).
	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid")
	ErrUserNotFound        = errors.New("user not found")

	// Access token verification errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Exercise / interaction errors.
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNotExerciseOwner = errors.New("not authorized to modify this exercise")
	ErrOwnExercise      = errors.New("cannot interact with your own exercise")
)
