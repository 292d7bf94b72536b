package models

import "time"

// RefreshToken is a persisted, revocable session credential. The Token column
// stores the signed string handed to the client verbatim; lookup by exact
// string is the authenticity check, so no server-side hash is kept. A token
// is usable iff Revoked is false and ExpiresAt is in the future.
type RefreshToken struct {
	ID         string
	Token      string
	UserID     string
	ExpiresAt  time.Time
	DeviceInfo *string
	Revoked    bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
