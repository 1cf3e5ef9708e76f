package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scentpress-backend/internal/domains/author"
	"scentpress-backend/internal/domains/blog"
	"scentpress-backend/internal/domains/designer"
	"scentpress-backend/internal/domains/note"
	"scentpress-backend/internal/domains/perfumer"
	"scentpress-backend/internal/shared/upload"
)

type fakeStore struct {
	stored  int
	deleted []string
}

func (f *fakeStore) Store(_ context.Context, field string, _ []byte, _ string) (upload.Image, error) {
	f.stored++
	id := fmt.Sprintf("%s/%d", field, f.stored)
	return upload.Image{URL: "http://store/" + id, StorageID: id}, nil
}

func (f *fakeStore) Delete(_ context.Context, storageID string) error {
	f.deleted = append(f.deleted, storageID)
	return nil
}

// memCache is an in-memory stand-in for the redis cache.
type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memCache) Ping(_ context.Context) error { return nil }

type fakeRepo struct {
	records map[uuid.UUID]*blog.Blog
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[uuid.UUID]*blog.Blog{}}
}

func (r *fakeRepo) Create(_ context.Context, b *blog.Blog) (*blog.Blog, error) {
	stored := *b
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.records[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]blog.Blog, error) {
	var all []blog.Blog
	for _, b := range r.records {
		all = append(all, *b)
	}
	return all, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*blog.Blog, error) {
	if b, ok := r.records[id]; ok {
		out := *b
		return &out, nil
	}
	return nil, blog.ErrNotFound
}

func (r *fakeRepo) GetBySlug(_ context.Context, slug string) (*blog.Blog, error) {
	for _, b := range r.records {
		if b.Slug == slug {
			out := *b
			return &out, nil
		}
	}
	return nil, blog.ErrNotFound
}

func (r *fakeRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]blog.Blog, error) {
	var out []blog.Blog
	for _, id := range ids {
		if b, ok := r.records[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) Replace(_ context.Context, b *blog.Blog) (*blog.Blog, error) {
	if _, ok := r.records[b.ID]; !ok {
		return nil, blog.ErrNotFound
	}
	stored := *b
	stored.UpdatedAt = time.Now()
	r.records[b.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return blog.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRepo) IsSlugTaken(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, b := range r.records {
		if b.Slug == slug && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeDesigners struct{ byID map[uuid.UUID]designer.Designer }

func (f *fakeDesigners) GetByIDs(_ context.Context, ids []uuid.UUID) ([]designer.Designer, error) {
	var out []designer.Designer
	for _, id := range ids {
		if d, ok := f.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakePerfumers struct{ byID map[uuid.UUID]perfumer.Perfumer }

func (f *fakePerfumers) GetByIDs(_ context.Context, ids []uuid.UUID) ([]perfumer.Perfumer, error) {
	var out []perfumer.Perfumer
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAuthors struct{ byID map[uuid.UUID]author.Author }

func (f *fakeAuthors) GetByIDs(_ context.Context, ids []uuid.UUID) ([]author.Author, error) {
	var out []author.Author
	for _, id := range ids {
		if a, ok := f.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeNotes struct{ byID map[uuid.UUID]note.Note }

func (f *fakeNotes) GetByIDs(_ context.Context, ids []uuid.UUID) ([]note.Note, error) {
	var out []note.Note
	for _, id := range ids {
		if n, ok := f.byID[id]; ok {
			out = append(out, n)
		}
	}
	return out, nil
}

type fixture struct {
	repo      *fakeRepo
	store     *fakeStore
	cache     *memCache
	designers *fakeDesigners
	perfumers *fakePerfumers
	authors   *fakeAuthors
	notes     *fakeNotes
	svc       blog.Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:      newFakeRepo(),
		store:     &fakeStore{},
		cache:     newMemCache(),
		designers: &fakeDesigners{byID: map[uuid.UUID]designer.Designer{}},
		perfumers: &fakePerfumers{byID: map[uuid.UUID]perfumer.Perfumer{}},
		authors:   &fakeAuthors{byID: map[uuid.UUID]author.Author{}},
		notes:     &fakeNotes{byID: map[uuid.UUID]note.Note{}},
	}
	f.svc = NewBlogService(f.repo, f.designers, f.perfumers, f.authors, f.notes, f.store, f.cache)
	return f
}

func validForm(title string) *blog.BlogForm {
	return &blog.BlogForm{
		Title:        title,
		Subtitle:     "an honest review",
		ReleaseDate:  "2019",
		Description1: "opening impressions",
		Description2: "drydown impressions",
	}
}

func manifestWith(store *fakeStore, fields ...string) upload.Manifest {
	m := upload.Manifest{}
	for _, field := range fields {
		img, _ := store.Store(context.Background(), field, []byte("x"), field+".png")
		m[field] = img
	}
	return m
}

func TestCreateRequiresBothImages(t *testing.T) {
	f := newFixture()

	// image1 was already uploaded by the middleware; image2 never arrived.
	files := manifestWith(f.store, "image1")
	_, err := f.svc.Create(context.Background(), validForm("Aventus Review"), files)

	require.ErrorIs(t, err, blog.ErrMissingImage)
	require.Len(t, f.store.deleted, 1, "uploaded image1 must be deleted")
	assert.Equal(t, "image1/1", f.store.deleted[0])
	assert.Empty(t, f.repo.records)
}

func TestCreateAssignsSlugFromTitle(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), validForm("Baccarat Rouge 540!"),
		manifestWith(f.store, "image1", "image2"))

	require.NoError(t, err)
	assert.Equal(t, "baccarat-rouge-540", created.Slug)
	assert.Empty(t, f.store.deleted)
}

func TestCreateDuplicateTitleConflictsAndCompensates(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), validForm("Sauvage"),
		manifestWith(f.store, "image1", "image2"))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), validForm("SAUVAGE"),
		manifestWith(f.store, "image1", "image2"))

	require.ErrorIs(t, err, blog.ErrSlugTaken)
	assert.Len(t, f.store.deleted, 2, "both fresh uploads discarded")
	assert.Len(t, f.repo.records, 1)
}

func TestGetBySlugExpandsReferences(t *testing.T) {
	f := newFixture()

	brand := designer.Designer{ID: uuid.New(), Name: "Creed", Slug: "creed"}
	nose := perfumer.Perfumer{ID: uuid.New(), Name: "Olivier Creed", Slug: "olivier-creed"}
	writer := author.Author{ID: uuid.New(), Name: "Jane Smith", Slug: "jane-smith"}
	top := note.Note{ID: uuid.New(), Name: "Bergamot", Slug: "bergamot"}
	base := note.Note{ID: uuid.New(), Name: "Musk", Slug: "musk"}
	f.designers.byID[brand.ID] = brand
	f.perfumers.byID[nose.ID] = nose
	f.authors.byID[writer.ID] = writer
	f.notes.byID[top.ID] = top
	f.notes.byID[base.ID] = base

	form := validForm("Aventus")
	form.Brand = brand.ID.String()
	form.Perfumer = nose.ID.String()
	form.Author = writer.ID.String()
	form.TopNotes = []string{top.ID.String()}
	form.BaseNotes = []string{base.ID.String()}

	created, err := f.svc.Create(context.Background(), form, manifestWith(f.store, "image1", "image2"))
	require.NoError(t, err)

	got, err := f.svc.GetBySlug(context.Background(), created.Slug)

	require.NoError(t, err)
	require.NotNil(t, got.Brand)
	assert.Equal(t, "creed", got.Brand.Slug)
	require.NotNil(t, got.Perfumer)
	assert.Equal(t, "Olivier Creed", got.Perfumer.Name)
	require.NotNil(t, got.Author)
	require.Len(t, got.Notes.Top, 1)
	assert.Equal(t, "Bergamot", got.Notes.Top[0].Name)
	require.Len(t, got.Notes.Base, 1)
	assert.Empty(t, got.Notes.Middle)
}

func TestGetBySlugDropsDanglingReferences(t *testing.T) {
	f := newFixture()

	form := validForm("Phantom")
	form.Brand = uuid.NewString() // never created
	form.TopNotes = []string{uuid.NewString()}

	created, err := f.svc.Create(context.Background(), form, manifestWith(f.store, "image1", "image2"))
	require.NoError(t, err)

	got, err := f.svc.GetBySlug(context.Background(), created.Slug)

	require.NoError(t, err)
	assert.Nil(t, got.Brand)
	assert.Empty(t, got.Notes.Top)
}

func TestGetBySlugUsesCache(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), validForm("Layton"),
		manifestWith(f.store, "image1", "image2"))
	require.NoError(t, err)

	_, err = f.svc.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Contains(t, f.cache.entries, "blog:slug:"+created.Slug)

	// Remove from the repo; the cached projection still answers.
	delete(f.repo.records, created.ID)
	got, err := f.svc.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdateInvalidatesCacheForOldAndNewSlug(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), validForm("Herod"),
		manifestWith(f.store, "image1", "image2"))
	require.NoError(t, err)

	_, err = f.svc.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), created.ID.String(),
		validForm("Herod Extrait"), upload.Manifest{})
	require.NoError(t, err)

	assert.Equal(t, "herod-extrait", updated.Slug)
	assert.NotContains(t, f.cache.entries, "blog:slug:herod")
}

func TestUpdateReplacingOneImageKeepsTheOther(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), validForm("Interlude"),
		manifestWith(f.store, "image1", "image2"))
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), created.ID.String(),
		validForm("Interlude"), manifestWith(f.store, "image2"))

	require.NoError(t, err)
	assert.Equal(t, created.Image1, updated.Image1, "image1 carried over")
	assert.NotEqual(t, created.Image2, updated.Image2)
	require.Len(t, f.store.deleted, 1)
	assert.Equal(t, created.Image2.StorageID, f.store.deleted[0], "old image2 removed after persist")
}

func TestDeleteRemovesBothImagesAndCacheEntry(t *testing.T) {
	f := newFixture()

	created, err := f.svc.Create(context.Background(), validForm("Reflection"),
		manifestWith(f.store, "image1", "image2"))
	require.NoError(t, err)

	_, err = f.svc.GetBySlug(context.Background(), created.Slug)
	require.NoError(t, err)

	_, err = f.svc.Delete(context.Background(), created.ID)

	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{created.Image1.StorageID, created.Image2.StorageID},
		f.store.deleted)
	assert.NotContains(t, f.cache.entries, "blog:slug:"+created.Slug)
	assert.Empty(t, f.repo.records)
}
