package models

import "time"

// Exercise is a user-authored content item. Private exercises are visible
// and editable only by their creator; soft deletion keeps the row.
type Exercise struct {
	ID          string
	Name        string
	Description string
	Difficulty  int32
	IsPublic    bool
	CreatorID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
