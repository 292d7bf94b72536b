// Package refreshtokens declares the store contract for persisted refresh
// tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/avdeevs/exercisebox/internal/server/models"
)

// Repository defines the operations of the refresh-token lifecycle: insert at
// login, exact-string lookup at refresh, and bulk revocation when a new login
// supersedes the user's previous session. Rows are revoked, never deleted, so
// the session history is kept.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of
	// now+validity and an optional device descriptor.
	Create(ctx context.Context, userID, token string, validity time.Duration, deviceInfo *string) error

	// FindByToken looks up a refresh token row by its exact token string and
	// returns it regardless of revocation or expiry; the caller decides.
	// Returns common.ErrorNotFound when absent.
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)

	// RevokeAllForUser marks every unrevoked token of the user as revoked.
	RevokeAllForUser(ctx context.Context, userID string) error
}
