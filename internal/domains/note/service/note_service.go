package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/note"
	"scentpress-backend/internal/shared/upload"
	"scentpress-backend/internal/shared/utils"
)

type noteService struct {
	repo       note.Repository
	categories note.CategoryReader
	images     upload.Store
}

func NewNoteService(repo note.Repository, categories note.CategoryReader, images upload.Store) note.Service {
	return &noteService{repo: repo, categories: categories, images: images}
}

func (s *noteService) Create(ctx context.Context, form *note.NoteForm, files upload.Manifest) (n *note.Note, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", note.ErrValidation, verr)
	}

	profilePic, ok := files.Image("profilePic")
	if !ok {
		return nil, fmt.Errorf("%w: profilePic", note.ErrMissingImage)
	}
	coverPic, _ := files.Image("coverPic") // optional

	slug := utils.GenerateSlug(form.Name)
	taken, err := s.repo.IsSlugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if taken {
		return nil, note.ErrSlugTaken
	}

	// The category reference is stored as-is; existence is not checked.
	categoryID, _ := uuid.Parse(form.Category)

	created, err := s.repo.Create(ctx, &note.Note{
		Name:            strings.TrimSpace(form.Name),
		Slug:            slug,
		Details:         form.Details,
		MetaTitle:       form.MetaTitle,
		MetaDescription: form.MetaDescription,
		CategoryID:      categoryID,
		ProfilePic:      profilePic,
		CoverPic:        coverPic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return created, nil
}

func (s *noteService) GetAll(ctx context.Context) ([]note.Response, error) {
	notes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, notes)
}

func (s *noteService) GetBySlug(ctx context.Context, slug string) (*note.Response, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, note.ErrNotFound
	}
	n, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	responses, err := s.expand(ctx, []note.Note{*n})
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// expand resolves category references into embedded projections. Dangling
// references simply produce a nil category.
func (s *noteService) expand(ctx context.Context, notes []note.Note) ([]note.Response, error) {
	ids := make([]uuid.UUID, 0, len(notes))
	seen := map[uuid.UUID]bool{}
	for _, n := range notes {
		if n.CategoryID != uuid.Nil && !seen[n.CategoryID] {
			seen[n.CategoryID] = true
			ids = append(ids, n.CategoryID)
		}
	}

	names := map[uuid.UUID]string{}
	if len(ids) > 0 {
		categories, err := s.categories.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to expand note categories: %w", err)
		}
		for _, c := range categories {
			names[c.ID] = c.Name
		}
	}

	responses := make([]note.Response, len(notes))
	for i, n := range notes {
		responses[i] = note.Response{Note: n}
		if name, ok := names[n.CategoryID]; ok {
			responses[i].Category = &note.CategoryRef{ID: n.CategoryID, Name: name}
		}
	}
	return responses, nil
}

func (s *noteService) Update(ctx context.Context, id string, form *note.NoteForm, files upload.Manifest) (n *note.Note, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	noteID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid note id", note.ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", note.ErrValidation, verr)
	}

	updated := *existing
	name := strings.TrimSpace(form.Name)
	if name != existing.Name {
		newSlug := utils.GenerateSlug(name)
		if newSlug != existing.Slug {
			taken, err := s.repo.IsSlugTaken(ctx, newSlug, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
			}
			if taken {
				return nil, note.ErrSlugTaken
			}
			updated.Slug = newSlug
		}
		updated.Name = name
	}
	updated.Details = form.Details
	updated.MetaTitle = form.MetaTitle
	updated.MetaDescription = form.MetaDescription
	if form.Category != "" {
		categoryID, _ := uuid.Parse(form.Category)
		updated.CategoryID = categoryID
	}

	var replaced []upload.Image
	if newProfile, ok := files.Image("profilePic"); ok {
		replaced = append(replaced, existing.ProfilePic)
		updated.ProfilePic = newProfile
	}
	if newCover, ok := files.Image("coverPic"); ok {
		if !existing.CoverPic.IsZero() {
			replaced = append(replaced, existing.CoverPic)
		}
		updated.CoverPic = newCover
	}

	saved, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	upload.Cleanup(ctx, s.images, replaced...)
	return saved, nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) (*note.Note, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	upload.Cleanup(ctx, s.images, existing.ProfilePic, existing.CoverPic)
	return existing, nil
}
