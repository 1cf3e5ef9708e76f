package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"scentpress-backend/internal/domains/note"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) note.Repository {
	return &postgresRepository{pool: pool}
}

const noteColumns = `id, name, slug, details, meta_title, meta_description, category_id,
	profile_pic_url, profile_pic_id, cover_pic_url, cover_pic_id, created_at, updated_at`

// category_id is nullable; a nil uuid in the entity maps to NULL in the row.
func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func scanNote(row pgx.Row) (*note.Note, error) {
	var n note.Note
	var categoryID *uuid.UUID
	err := row.Scan(
		&n.ID, &n.Name, &n.Slug, &n.Details, &n.MetaTitle, &n.MetaDescription,
		&categoryID,
		&n.ProfilePic.URL, &n.ProfilePic.StorageID,
		&n.CoverPic.URL, &n.CoverPic.StorageID,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, note.ErrNotFound
		}
		return nil, err
	}
	if categoryID != nil {
		n.CategoryID = *categoryID
	}
	return &n, nil
}

func (r *postgresRepository) Create(ctx context.Context, n *note.Note) (*note.Note, error) {
	query := `
		INSERT INTO notes (name, slug, details, meta_title, meta_description, category_id,
			profile_pic_url, profile_pic_id, cover_pic_url, cover_pic_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + noteColumns

	created, err := scanNote(r.pool.QueryRow(ctx, query,
		n.Name, n.Slug, n.Details, n.MetaTitle, n.MetaDescription, nullableID(n.CategoryID),
		n.ProfilePic.URL, n.ProfilePic.StorageID, n.CoverPic.URL, n.CoverPic.StorageID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]note.Note, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*note.Note, error) {
	return scanNote(r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*note.Note, error) {
	return scanNote(r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE slug = $1`, slug))
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]note.Note, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notes by ids: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

func (r *postgresRepository) Replace(ctx context.Context, n *note.Note) (*note.Note, error) {
	query := `
		UPDATE notes
		SET name = $2, slug = $3, details = $4, meta_title = $5, meta_description = $6,
			category_id = $7, profile_pic_url = $8, profile_pic_id = $9,
			cover_pic_url = $10, cover_pic_id = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + noteColumns

	updated, err := scanNote(r.pool.QueryRow(ctx, query,
		n.ID, n.Name, n.Slug, n.Details, n.MetaTitle, n.MetaDescription,
		nullableID(n.CategoryID),
		n.ProfilePic.URL, n.ProfilePic.StorageID, n.CoverPic.URL, n.CoverPic.StorageID,
	))
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return nil, note.ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace note: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) IsSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var taken bool
	var err error
	if excludeID == uuid.Nil {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM notes WHERE slug = $1)`, slug).Scan(&taken)
	} else {
		err = r.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM notes WHERE slug = $1 AND id <> $2)`,
			slug, excludeID).Scan(&taken)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check note slug: %w", err)
	}
	return taken, nil
}
