package interactions

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/avdeevs/exercisebox/internal/dbx"
	"github.com/avdeevs/exercisebox/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts or updates the (userID, exerciseID) row in one statement,
// relying on the unique constraint over the pair. Only the specified fields
// touch an existing row.
func (r *PostgresRepository) Upsert(ctx context.Context, userID, exerciseID string, params UpsertParams) (*models.Interaction, error) {
	isSaved := false
	if params.IsSaved != nil {
		isSaved = *params.IsSaved
	}
	isFavorited := false
	if params.IsFavorited != nil {
		isFavorited = *params.IsFavorited
	}
	var rating *int32
	if params.Rating != nil {
		rating = params.Rating
	}

	set := []string{"updated_at = now()"}
	if params.IsSaved != nil {
		set = append(set, "is_saved = excluded.is_saved")
	}
	if params.IsFavorited != nil {
		set = append(set, "is_favorited = excluded.is_favorited")
	}
	if params.Rating != nil || params.ClearRating {
		set = append(set, "rating = excluded.rating")
	}

	query := `
		INSERT INTO user_exercises (id, user_id, exercise_id, is_saved, is_favorited, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, exercise_id) DO UPDATE
		SET ` + strings.Join(set, ", ") + `
		RETURNING exercise_id, is_saved, is_favorited, rating
	`

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), userID, exerciseID, isSaved, isFavorited, rating)

	interaction := &models.Interaction{UserID: userID}
	err := row.Scan(&interaction.ExerciseID, &interaction.IsSaved, &interaction.IsFavorited, &interaction.Rating)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return interaction, nil
}
