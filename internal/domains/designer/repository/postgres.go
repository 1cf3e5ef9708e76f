package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/designer"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) designer.Repository {
	return &postgresRepository{pool: pool}
}

const designerColumns = `id, name, slug, description, meta_title, meta_description,
	logo_url, logo_id, created_at, updated_at`

func scanDesigner(row pgx.Row) (*designer.Designer, error) {
	var d designer.Designer
	err := row.Scan(
		&d.ID, &d.Name, &d.Slug, &d.Description, &d.MetaTitle, &d.MetaDescription,
		&d.Logo.URL, &d.Logo.StorageID, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, designer.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *postgresRepository) Create(ctx context.Context, d *designer.Designer) (*designer.Designer, error) {
	query := `
		INSERT INTO designers (name, slug, description, meta_title, meta_description, logo_url, logo_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + designerColumns

	created, err := scanDesigner(r.pool.QueryRow(ctx, query,
		d.Name, d.Slug, d.Description, d.MetaTitle, d.MetaDescription,
		d.Logo.URL, d.Logo.StorageID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create designer: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]designer.Designer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+designerColumns+` FROM designers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list designers: %w", err)
	}
	defer rows.Close()

	designers := []designer.Designer{}
	for rows.Next() {
		d, err := scanDesigner(rows)
		if err != nil {
			return nil, err
		}
		designers = append(designers, *d)
	}
	return designers, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*designer.Designer, error) {
	return scanDesigner(r.pool.QueryRow(ctx,
		`SELECT `+designerColumns+` FROM designers WHERE id = $1`, id))
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*designer.Designer, error) {
	return scanDesigner(r.pool.QueryRow(ctx,
		`SELECT `+designerColumns+` FROM designers WHERE slug = $1`, slug))
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]designer.Designer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+designerColumns+` FROM designers WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch designers by ids: %w", err)
	}
	defer rows.Close()

	var designers []designer.Designer
	for rows.Next() {
		d, err := scanDesigner(rows)
		if err != nil {
			return nil, err
		}
		designers = append(designers, *d)
	}
	return designers, rows.Err()
}

func (r *postgresRepository) Replace(ctx context.Context, d *designer.Designer) (*designer.Designer, error) {
	query := `
		UPDATE designers
		SET name = $2, slug = $3, description = $4, meta_title = $5,
			meta_description = $6, logo_url = $7, logo_id = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + designerColumns

	updated, err := scanDesigner(r.pool.QueryRow(ctx, query,
		d.ID, d.Name, d.Slug, d.Description, d.MetaTitle, d.MetaDescription,
		d.Logo.URL, d.Logo.StorageID,
	))
	if err != nil {
		if errors.Is(err, designer.ErrNotFound) {
			return nil, designer.ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace designer: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM designers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete designer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designer.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	var err error
	if excludeID == uuid.Nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM designers WHERE slug = $1)`, slug).Scan(&taken)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM designers WHERE slug = $1 AND id <> $2)`,
			slug, excludeID).Scan(&taken)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check designer slug: %w", err)
	}
	return taken, nil
}
