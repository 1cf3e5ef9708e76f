package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/feedback"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) feedback.Repository {
	return &postgresRepository{pool: pool}
}

const feedbackColumns = `id, name, email, subject, message, created_at, updated_at`

func scanFeedback(row pgx.Row) (*feedback.Feedback, error) {
	var f feedback.Feedback
	err := row.Scan(&f.ID, &f.Name, &f.Email, &f.Subject, &f.Message, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, feedback.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresRepository) Create(ctx context.Context, f *feedback.Feedback) (*feedback.Feedback, error) {
	query := `
		INSERT INTO feedbacks (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + feedbackColumns

	created, err := scanFeedback(r.pool.QueryRow(ctx, query, f.Name, f.Email, f.Subject, f.Message))
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]feedback.Feedback, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+feedbackColumns+` FROM feedbacks ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedbacks: %w", err)
	}
	defer rows.Close()

	feedbacks := []feedback.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, *f)
	}
	return feedbacks, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*feedback.Feedback, error) {
	return scanFeedback(r.pool.QueryRow(ctx,
		`SELECT `+feedbackColumns+` FROM feedbacks WHERE id = $1`, id))
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM feedbacks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return feedback.ErrNotFound
	}
	return nil
}
