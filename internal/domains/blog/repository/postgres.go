package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/blog"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) blog.Repository {
	return &postgresRepository{pool: pool}
}

const blogColumns = `id, title, subtitle, slug, release_date, description1, description2,
	brand_id, perfumer_id, author_id, top_note_ids, middle_note_ids, base_note_ids,
	image1_url, image1_id, image2_url, image2_id, created_at, updated_at`

func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func scanBlog(row pgx.Row) (*blog.Blog, error) {
	var b blog.Blog
	var brandID, perfumerID, authorID *uuid.UUID
	err := row.Scan(
		&b.ID, &b.Title, &b.Subtitle, &b.Slug, &b.ReleaseDate,
		&b.Description1, &b.Description2,
		&brandID, &perfumerID, &authorID,
		&b.TopNoteIDs, &b.MiddleNoteIDs, &b.BaseNoteIDs,
		&b.Image1.URL, &b.Image1.StorageID,
		&b.Image2.URL, &b.Image2.StorageID,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrNotFound
		}
		return nil, err
	}
	if brandID != nil {
		b.BrandID = *brandID
	}
	if perfumerID != nil {
		b.PerfumerID = *perfumerID
	}
	if authorID != nil {
		b.AuthorID = *authorID
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *blog.Blog) (*blog.Blog, error) {
	query := `
		INSERT INTO blogs (title, subtitle, slug, release_date, description1, description2,
			brand_id, perfumer_id, author_id, top_note_ids, middle_note_ids, base_note_ids,
			image1_url, image1_id, image2_url, image2_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + blogColumns

	created, err := scanBlog(r.pool.QueryRow(ctx, query,
		b.Title, b.Subtitle, b.Slug, b.ReleaseDate, b.Description1, b.Description2,
		nullableID(b.BrandID), nullableID(b.PerfumerID), nullableID(b.AuthorID),
		b.TopNoteIDs, b.MiddleNoteIDs, b.BaseNoteIDs,
		b.Image1.URL, b.Image1.StorageID, b.Image2.URL, b.Image2.StorageID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]blog.Blog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	blogs := []blog.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	return blogs, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	return scanBlog(r.pool.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id))
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	return scanBlog(r.pool.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug))
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]blog.Blog, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blogs by ids: %w", err)
	}
	defer rows.Close()

	var blogs []blog.Blog
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}
	return blogs, rows.Err()
}

func (r *postgresRepository) Replace(ctx context.Context, b *blog.Blog) (*blog.Blog, error) {
	query := `
		UPDATE blogs
		SET title = $2, subtitle = $3, slug = $4, release_date = $5, description1 = $6,
			description2 = $7, brand_id = $8, perfumer_id = $9, author_id = $10,
			top_note_ids = $11, middle_note_ids = $12, base_note_ids = $13,
			image1_url = $14, image1_id = $15, image2_url = $16, image2_id = $17,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + blogColumns

	updated, err := scanBlog(r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Subtitle, b.Slug, b.ReleaseDate, b.Description1, b.Description2,
		nullableID(b.BrandID), nullableID(b.PerfumerID), nullableID(b.AuthorID),
		b.TopNoteIDs, b.MiddleNoteIDs, b.BaseNoteIDs,
		b.Image1.URL, b.Image1.StorageID, b.Image2.URL, b.Image2.StorageID,
	))
	if err != nil {
		if errors.Is(err, blog.ErrNotFound) {
			return nil, blog.ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace blog: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return blog.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	var err error
	if excludeID == uuid.Nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1)`, slug).Scan(&taken)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1 AND id <> $2)`,
			slug, excludeID).Scan(&taken)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check blog slug: %w", err)
	}
	return taken, nil
}
