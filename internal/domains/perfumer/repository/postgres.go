package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/perfumer"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) perfumer.Repository {
	return &postgresRepository{pool: pool}
}

const perfumerColumns = `id, name, slug, title, intro, bio, meta_title, meta_description,
	image_url, image_id, created_at, updated_at`

func scanPerfumer(row pgx.Row) (*perfumer.Perfumer, error) {
	var p perfumer.Perfumer
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Title, &p.Intro, &p.Bio,
		&p.MetaTitle, &p.MetaDescription,
		&p.Image.URL, &p.Image.StorageID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, perfumer.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *perfumer.Perfumer) (*perfumer.Perfumer, error) {
	query := `
		INSERT INTO perfumers (name, slug, title, intro, bio, meta_title, meta_description, image_url, image_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + perfumerColumns

	created, err := scanPerfumer(r.pool.QueryRow(ctx, query,
		p.Name, p.Slug, p.Title, p.Intro, p.Bio, p.MetaTitle, p.MetaDescription,
		p.Image.URL, p.Image.StorageID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create perfumer: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]perfumer.Perfumer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+perfumerColumns+` FROM perfumers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list perfumers: %w", err)
	}
	defer rows.Close()

	perfumers := []perfumer.Perfumer{}
	for rows.Next() {
		p, err := scanPerfumer(rows)
		if err != nil {
			return nil, err
		}
		perfumers = append(perfumers, *p)
	}
	return perfumers, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*perfumer.Perfumer, error) {
	return scanPerfumer(r.pool.QueryRow(ctx,
		`SELECT `+perfumerColumns+` FROM perfumers WHERE id = $1`, id))
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*perfumer.Perfumer, error) {
	return scanPerfumer(r.pool.QueryRow(ctx,
		`SELECT `+perfumerColumns+` FROM perfumers WHERE slug = $1`, slug))
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]perfumer.Perfumer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+perfumerColumns+` FROM perfumers WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch perfumers by ids: %w", err)
	}
	defer rows.Close()

	var perfumers []perfumer.Perfumer
	for rows.Next() {
		p, err := scanPerfumer(rows)
		if err != nil {
			return nil, err
		}
		perfumers = append(perfumers, *p)
	}
	return perfumers, rows.Err()
}

func (r *postgresRepository) Replace(ctx context.Context, p *perfumer.Perfumer) (*perfumer.Perfumer, error) {
	query := `
		UPDATE perfumers
		SET name = $2, slug = $3, title = $4, intro = $5, bio = $6, meta_title = $7,
			meta_description = $8, image_url = $9, image_id = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + perfumerColumns

	updated, err := scanPerfumer(r.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Slug, p.Title, p.Intro, p.Bio, p.MetaTitle, p.MetaDescription,
		p.Image.URL, p.Image.StorageID,
	))
	if err != nil {
		if errors.Is(err, perfumer.ErrNotFound) {
			return nil, perfumer.ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace perfumer: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM perfumers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete perfumer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return perfumer.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	var err error
	if excludeID == uuid.Nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM perfumers WHERE slug = $1)`, slug).Scan(&taken)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM perfumers WHERE slug = $1 AND id <> $2)`,
			slug, excludeID).Scan(&taken)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check perfumer slug: %w", err)
	}
	return taken, nil
}
