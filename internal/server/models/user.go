// Package models defines the persisted row types shared by the repositories and
// services.
package models

import "time"

// User is an identity record. Name doubles as the login identifier and is
// unique among non-deleted users. PasswordHash is a bcrypt digest; the
// plaintext is never stored and never returned.
type User struct {
	ID           string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
