package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

const commentColumns = `id, name, comment, blog_id, approved, created_at, updated_at`

func scanComment(row pgx.Row) (*comment.Comment, error) {
	var c comment.Comment
	var blogID *uuid.UUID
	err := row.Scan(&c.ID, &c.Name, &c.Comment, &blogID, &c.Approved, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrNotFound
		}
		return nil, err
	}
	if blogID != nil {
		c.BlogID = *blogID
	}
	return &c, nil
}

func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	query := `
		INSERT INTO comments (name, comment, blog_id, approved)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + commentColumns

	created, err := scanComment(r.pool.QueryRow(ctx, query,
		c.Name, c.Comment, nullableID(c.BlogID), c.Approved))
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]comment.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []comment.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
}

func (r *postgresRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*comment.Comment, error) {
	query := `
		UPDATE comments SET approved = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + commentColumns

	updated, err := scanComment(r.pool.QueryRow(ctx, query, id, approved))
	if err != nil {
		if errors.Is(err, comment.ErrNotFound) {
			return nil, comment.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update comment approval: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrNotFound
	}
	return nil
}
