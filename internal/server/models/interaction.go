package models

import "time"

// Interaction is the per-user state for one exercise (save/favorite/rating).
// One row per (UserID, ExerciseID); Rating is nil when the user has not rated
// or has cleared the rating.
type Interaction struct {
	ID          string
	UserID      string
	ExerciseID  string
	IsSaved     bool
	IsFavorited bool
	Rating      *int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
