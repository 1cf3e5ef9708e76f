package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scentpress-backend/internal/domains/author"
	"scentpress-backend/internal/domains/blog"
	"scentpress-backend/internal/domains/designer"
	"scentpress-backend/internal/domains/note"
	"scentpress-backend/internal/domains/perfumer"
	"scentpress-backend/internal/shared/upload"
	"scentpress-backend/internal/shared/utils"
	"scentpress-backend/pkg/cache"
	"scentpress-backend/pkg/logger"
)

const blogCacheTTL = 5 * time.Minute

type blogService struct {
	repo      blog.Repository
	designers blog.DesignerReader
	perfumers blog.PerfumerReader
	authors   blog.AuthorReader
	notes     blog.NoteReader
	images    upload.Store
	cache     cache.Cache
}

func NewBlogService(
	repo blog.Repository,
	designers blog.DesignerReader,
	perfumers blog.PerfumerReader,
	authors blog.AuthorReader,
	notes blog.NoteReader,
	images upload.Store,
	c cache.Cache,
) blog.Service {
	return &blogService{
		repo:      repo,
		designers: designers,
		perfumers: perfumers,
		authors:   authors,
		notes:     notes,
		images:    images,
		cache:     c,
	}
}

func blogCacheKey(slug string) string {
	return "blog:slug:" + slug
}

// parseIDList accepts repeated form values or a single comma-separated
// value. Unparseable entries are dropped, matching the as-is treatment of
// reference fields elsewhere.
func parseIDList(values []string) []uuid.UUID {
	var ids []uuid.UUID
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if id, err := uuid.Parse(part); err == nil {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func (s *blogService) Create(ctx context.Context, form *blog.BlogForm, files upload.Manifest) (b *blog.Blog, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", blog.ErrValidation, verr)
	}

	image1, ok := files.Image("image1")
	if !ok {
		return nil, fmt.Errorf("%w: image1", blog.ErrMissingImage)
	}
	image2, ok := files.Image("image2")
	if !ok {
		return nil, fmt.Errorf("%w: image2", blog.ErrMissingImage)
	}

	slug := utils.GenerateSlug(form.Title)
	taken, err := s.repo.IsSlugTaken(ctx, slug, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
	}
	if taken {
		return nil, blog.ErrSlugTaken
	}

	brandID, _ := uuid.Parse(form.Brand)
	perfumerID, _ := uuid.Parse(form.Perfumer)
	authorID, _ := uuid.Parse(form.Author)

	created, err := s.repo.Create(ctx, &blog.Blog{
		Title:         strings.TrimSpace(form.Title),
		Subtitle:      form.Subtitle,
		Slug:          slug,
		ReleaseDate:   form.ReleaseDate,
		Description1:  form.Description1,
		Description2:  form.Description2,
		BrandID:       brandID,
		PerfumerID:    perfumerID,
		AuthorID:      authorID,
		TopNoteIDs:    parseIDList(form.TopNotes),
		MiddleNoteIDs: parseIDList(form.MiddleNotes),
		BaseNoteIDs:   parseIDList(form.BaseNotes),
		Image1:        image1,
		Image2:        image2,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return created, nil
}

func (s *blogService) GetAll(ctx context.Context) ([]blog.Response, error) {
	blogs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, blogs)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*blog.Response, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, blog.ErrNotFound
	}

	var cached blog.Response
	if hit, err := s.cache.Get(ctx, blogCacheKey(slug), &cached); err != nil {
		logger.Error("blog cache read failed", err)
	} else if hit {
		return &cached, nil
	}

	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	responses, err := s.expand(ctx, []blog.Blog{*b})
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, blogCacheKey(slug), responses[0], blogCacheTTL); err != nil {
		logger.Error("blog cache write failed", err)
	}
	return &responses[0], nil
}

func (s *blogService) Update(ctx context.Context, id string, form *blog.BlogForm, files upload.Manifest) (b *blog.Blog, err error) {
	defer func() {
		if err != nil {
			files.Discard(ctx, s.images)
		}
	}()

	blogID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid blog id", blog.ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if verr := form.Validate(); verr != nil {
		return nil, fmt.Errorf("%w: %v", blog.ErrValidation, verr)
	}

	updated := *existing
	title := strings.TrimSpace(form.Title)
	if title != existing.Title {
		newSlug := utils.GenerateSlug(title)
		if newSlug != existing.Slug {
			taken, err := s.repo.IsSlugTaken(ctx, newSlug, existing.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check slug uniqueness: %w", err)
			}
			if taken {
				return nil, blog.ErrSlugTaken
			}
			updated.Slug = newSlug
		}
		updated.Title = title
	}
	updated.Subtitle = form.Subtitle
	updated.ReleaseDate = form.ReleaseDate
	updated.Description1 = form.Description1
	updated.Description2 = form.Description2
	if form.Brand != "" {
		updated.BrandID, _ = uuid.Parse(form.Brand)
	}
	if form.Perfumer != "" {
		updated.PerfumerID, _ = uuid.Parse(form.Perfumer)
	}
	if form.Author != "" {
		updated.AuthorID, _ = uuid.Parse(form.Author)
	}
	if len(form.TopNotes) > 0 {
		updated.TopNoteIDs = parseIDList(form.TopNotes)
	}
	if len(form.MiddleNotes) > 0 {
		updated.MiddleNoteIDs = parseIDList(form.MiddleNotes)
	}
	if len(form.BaseNotes) > 0 {
		updated.BaseNoteIDs = parseIDList(form.BaseNotes)
	}

	var replaced []upload.Image
	if img, ok := files.Image("image1"); ok {
		replaced = append(replaced, existing.Image1)
		updated.Image1 = img
	}
	if img, ok := files.Image("image2"); ok {
		replaced = append(replaced, existing.Image2)
		updated.Image2 = img
	}

	saved, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	upload.Cleanup(ctx, s.images, replaced...)
	s.invalidate(ctx, existing.Slug, saved.Slug)
	return saved, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete blog: %w", err)
	}

	upload.Cleanup(ctx, s.images, existing.Image1, existing.Image2)
	s.invalidate(ctx, existing.Slug)
	return existing, nil
}

func (s *blogService) invalidate(ctx context.Context, slugs ...string) {
	keys := make([]string, 0, len(slugs))
	seen := map[string]bool{}
	for _, slug := range slugs {
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		keys = append(keys, blogCacheKey(slug))
	}
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Error("blog cache invalidation failed", err)
	}
}

// expand resolves every reference across the batch with one lookup per
// entity kind, then assembles the per-blog projections.
func (s *blogService) expand(ctx context.Context, blogs []blog.Blog) ([]blog.Response, error) {
	var designerIDs, perfumerIDs, authorIDs, noteIDs []uuid.UUID
	seen := map[uuid.UUID]bool{}
	collect := func(dst *[]uuid.UUID, ids ...uuid.UUID) {
		for _, id := range ids {
			if id != uuid.Nil && !seen[id] {
				seen[id] = true
				*dst = append(*dst, id)
			}
		}
	}
	for _, b := range blogs {
		collect(&designerIDs, b.BrandID)
		collect(&perfumerIDs, b.PerfumerID)
		collect(&authorIDs, b.AuthorID)
		collect(&noteIDs, b.TopNoteIDs...)
		collect(&noteIDs, b.MiddleNoteIDs...)
		collect(&noteIDs, b.BaseNoteIDs...)
	}

	refs, err := s.fetchRefs(ctx, designerIDs, perfumerIDs, authorIDs, noteIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]blog.Response, len(blogs))
	for i, b := range blogs {
		r := blog.Response{Blog: b}
		if ref, ok := refs.designers[b.BrandID]; ok {
			r.Brand = &ref
		}
		if ref, ok := refs.perfumers[b.PerfumerID]; ok {
			r.Perfumer = &ref
		}
		if ref, ok := refs.authors[b.AuthorID]; ok {
			r.Author = &ref
		}
		r.Notes = blog.NotePyramid{
			Top:    refs.noteRefs(b.TopNoteIDs),
			Middle: refs.noteRefs(b.MiddleNoteIDs),
			Base:   refs.noteRefs(b.BaseNoteIDs),
		}
		responses[i] = r
	}
	return responses, nil
}

type refSet struct {
	designers map[uuid.UUID]designer.Ref
	perfumers map[uuid.UUID]perfumer.Ref
	authors   map[uuid.UUID]author.Ref
	notes     map[uuid.UUID]note.Ref
}

func (s *blogService) fetchRefs(ctx context.Context, designerIDs, perfumerIDs, authorIDs, noteIDs []uuid.UUID) (*refSet, error) {
	refs := &refSet{
		designers: map[uuid.UUID]designer.Ref{},
		perfumers: map[uuid.UUID]perfumer.Ref{},
		authors:   map[uuid.UUID]author.Ref{},
		notes:     map[uuid.UUID]note.Ref{},
	}

	if len(designerIDs) > 0 {
		designers, err := s.designers.GetByIDs(ctx, designerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to expand blog brands: %w", err)
		}
		for i := range designers {
			refs.designers[designers[i].ID] = designers[i].ToRef()
		}
	}
	if len(perfumerIDs) > 0 {
		perfumers, err := s.perfumers.GetByIDs(ctx, perfumerIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to expand blog perfumers: %w", err)
		}
		for i := range perfumers {
			refs.perfumers[perfumers[i].ID] = perfumers[i].ToRef()
		}
	}
	if len(authorIDs) > 0 {
		authors, err := s.authors.GetByIDs(ctx, authorIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to expand blog authors: %w", err)
		}
		for i := range authors {
			refs.authors[authors[i].ID] = authors[i].ToRef()
		}
	}
	if len(noteIDs) > 0 {
		notes, err := s.notes.GetByIDs(ctx, noteIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to expand blog notes: %w", err)
		}
		for i := range notes {
			refs.notes[notes[i].ID] = notes[i].ToRef()
		}
	}
	return refs, nil
}

// noteRefs preserves the stored ordering of a note layer and drops
// dangling ids.
func (r *refSet) noteRefs(ids []uuid.UUID) []note.Ref {
	refs := []note.Ref{}
	for _, id := range ids {
		if ref, ok := r.notes[id]; ok {
			refs = append(refs, ref)
		}
	}
	return refs
}
