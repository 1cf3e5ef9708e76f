package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/author"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, name, slug, title, bio, meta_title, meta_description,
	author_pic_url, author_pic_id, created_at, updated_at`

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(
		&a.ID, &a.Name, &a.Slug, &a.Title, &a.Bio, &a.MetaTitle, &a.MetaDescription,
		&a.AuthorPic.URL, &a.AuthorPic.StorageID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		INSERT INTO authors (name, slug, title, bio, meta_title, meta_description, author_pic_url, author_pic_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query,
		a.Name, a.Slug, a.Title, a.Bio, a.MetaTitle, a.MetaDescription,
		a.AuthorPic.URL, a.AuthorPic.StorageID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+authorColumns+` FROM authors ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return scanAuthor(r.pool.QueryRow(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id = $1`, id))
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*author.Author, error) {
	return scanAuthor(r.pool.QueryRow(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE slug = $1`, slug))
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]author.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authors by ids: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, *a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) Replace(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
		UPDATE authors
		SET name = $2, slug = $3, title = $4, bio = $5, meta_title = $6,
			meta_description = $7, author_pic_url = $8, author_pic_id = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query,
		a.ID, a.Name, a.Slug, a.Title, a.Bio, a.MetaTitle, a.MetaDescription,
		a.AuthorPic.URL, a.AuthorPic.StorageID,
	))
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			return nil, author.ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace author: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	var err error
	if excludeID == uuid.Nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM authors WHERE slug = $1)`, slug).Scan(&taken)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM authors WHERE slug = $1 AND id <> $2)`,
			slug, excludeID).Scan(&taken)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check author slug: %w", err)
	}
	return taken, nil
}
