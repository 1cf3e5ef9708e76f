package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/category"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

const categoryColumns = `id, name, created_at, updated_at`

func scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	created, err := scanCategory(r.pool.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING `+categoryColumns, c.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []category.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return scanCategory(r.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]category.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories by ids: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *postgresRepository) Replace(ctx context.Context, c *category.Category) (*category.Category, error) {
	updated, err := scanCategory(r.pool.QueryRow(ctx,
		`UPDATE categories SET name = $2, updated_at = NOW() WHERE id = $1 RETURNING `+categoryColumns,
		c.ID, c.Name))
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, category.ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace category: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) IsNameTaken(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	var err error
	if excludeID == uuid.Nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1))`, name).Scan(&taken)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
			name, excludeID).Scan(&taken)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return taken, nil
}
