package exercises

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/avdeevs/exercisebox/internal/common"
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

const exerciseColumns = "id, name, description, difficulty, is_public, creator_id"

func scanExercise(row *sql.Row) (*models.Exercise, error) {
	e := &models.Exercise{}
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Difficulty, &e.IsPublic, &e.CreatorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// Create inserts an exercise with an application-generated id.
func (r *PostgresRepository) Create(ctx context.Context, exercise *models.Exercise) (*models.Exercise, error) {
	query := `
		INSERT INTO exercises (id, name, description, difficulty, is_public, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + exerciseColumns
	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), exercise.Name, exercise.Description, exercise.Difficulty,
		exercise.IsPublic, exercise.CreatorID)
	return scanExercise(row)
}

// GetByID returns the non-deleted exercise with the given id, or
// common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Exercise, error) {
	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE id = $1 AND deleted_at IS NULL
	`
	return scanExercise(r.db.QueryRowContext(ctx, query, id))
}

// Update applies the non-nil fields of params and returns the updated row.
func (r *PostgresRepository) Update(ctx context.Context, id string, params UpdateParams) (*models.Exercise, error) {
	set := []string{"updated_at = now()"}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}
	if params.Name != nil {
		appendSet("name", *params.Name)
	}
	if params.Description != nil {
		appendSet("description", *params.Description)
	}
	if params.Difficulty != nil {
		appendSet("difficulty", *params.Difficulty)
	}

	query := `
		UPDATE exercises
		SET ` + strings.Join(set, ", ") + `
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + exerciseColumns
	return scanExercise(r.db.QueryRowContext(ctx, query, args...))
}

// SoftDelete stamps deleted_at and returns the row as it was.
func (r *PostgresRepository) SoftDelete(ctx context.Context, id string) (*models.Exercise, error) {
	query := `
		UPDATE exercises
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + exerciseColumns
	return scanExercise(r.db.QueryRowContext(ctx, query, id))
}

// List returns public exercises plus the viewer's own, narrowed by filter.
func (r *PostgresRepository) List(ctx context.Context, viewerID string, filter ListFilter) ([]*models.Exercise, error) {
	where := []string{"deleted_at IS NULL", "(is_public OR creator_id = $1)"}
	args := []any{viewerID}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		where = append(where, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.Description != "" {
		args = append(args, "%"+filter.Description+"%")
		where = append(where, "description ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.Difficulty != 0 {
		args = append(args, filter.Difficulty)
		where = append(where, "difficulty = $"+strconv.Itoa(len(args)))
	}

	query := `
		SELECT ` + exerciseColumns + `
		FROM exercises
		WHERE ` + strings.Join(where, " AND ")
	if filter.SortByDifficulty {
		query += `
		ORDER BY difficulty ASC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	list := []*models.Exercise{}
	for rows.Next() {
		e := &models.Exercise{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Difficulty, &e.IsPublic, &e.CreatorID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
