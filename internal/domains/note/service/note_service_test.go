package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scentpress-backend/internal/domains/category"
	"scentpress-backend/internal/domains/note"
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

type fakeRepo struct {
	records map[uuid.UUID]*note.Note
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[uuid.UUID]*note.Note{}}
}

func (r *fakeRepo) Create(_ context.Context, n *note.Note) (*note.Note, error) {
	stored := *n
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.records[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]note.Note, error) {
	var all []note.Note
	for _, n := range r.records {
		all = append(all, *n)
	}
	return all, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*note.Note, error) {
	if n, ok := r.records[id]; ok {
		out := *n
		return &out, nil
	}
	return nil, note.ErrNotFound
}

func (r *fakeRepo) GetBySlug(_ context.Context, slug string) (*note.Note, error) {
	for _, n := range r.records {
		if n.Slug == slug {
			out := *n
			return &out, nil
		}
	}
	return nil, note.ErrNotFound
}

func (r *fakeRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]note.Note, error) {
	var out []note.Note
	for _, id := range ids {
		if n, ok := r.records[id]; ok {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeRepo) Replace(_ context.Context, n *note.Note) (*note.Note, error) {
	if _, ok := r.records[n.ID]; !ok {
		return nil, note.ErrNotFound
	}
	stored := *n
	stored.UpdatedAt = time.Now()
	r.records[n.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return note.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRepo) IsSlugTaken(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, n := range r.records {
		if n.Slug == slug && n.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryReader struct {
	categories map[uuid.UUID]category.Category
}

func (f *fakeCategoryReader) GetByIDs(_ context.Context, ids []uuid.UUID) ([]category.Category, error) {
	var out []category.Category
	for _, id := range ids {
		if c, ok := f.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func validForm(name string) *note.NoteForm {
	return &note.NoteForm{
		Name:            name,
		Details:         "a warm resinous note",
		MetaTitle:       name,
		MetaDescription: name + " in perfumery",
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

func newService(repo *fakeRepo, reader *fakeCategoryReader, store *fakeStore) note.Service {
	if reader == nil {
		reader = &fakeCategoryReader{categories: map[uuid.UUID]category.Category{}}
	}
	return NewNoteService(repo, reader, store)
}

func TestCreateWithoutCoverPicIsAllowed(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := newService(repo, nil, store)

	created, err := svc.Create(context.Background(), validForm("Oud"), manifestWith(store, "profilePic"))

	require.NoError(t, err)
	assert.Equal(t, "oud", created.Slug)
	assert.False(t, created.ProfilePic.IsZero())
	assert.True(t, created.CoverPic.IsZero(), "coverPic stays empty when not uploaded")
}

func TestCreateMissingProfilePicDiscardsCoverPic(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := newService(repo, nil, store)

	_, err := svc.Create(context.Background(), validForm("Iris"), manifestWith(store, "coverPic"))

	require.ErrorIs(t, err, note.ErrMissingImage)
	assert.Len(t, store.deleted, 1, "the uploaded coverPic must not be orphaned")
	assert.Empty(t, repo.records)
}

func TestDeleteRemovesBothImages(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := newService(repo, nil, store)

	created, err := svc.Create(context.Background(), validForm("Vanilla"),
		manifestWith(store, "profilePic", "coverPic"))
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), created.ID)

	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{created.ProfilePic.StorageID, created.CoverPic.StorageID},
		store.deleted, "both stored objects must be deleted")
}

func TestDeleteWithoutCoverPicDeletesOnlyProfilePic(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := newService(repo, nil, store)

	created, err := svc.Create(context.Background(), validForm("Musk"), manifestWith(store, "profilePic"))
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Len(t, store.deleted, 1, "empty coverPic storage id is skipped")
}

func TestGetBySlugExpandsCategory(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	catID := uuid.New()
	reader := &fakeCategoryReader{categories: map[uuid.UUID]category.Category{
		catID: {ID: catID, Name: "Woody"},
	}}
	svc := newService(repo, reader, store)

	form := validForm("Sandalwood")
	form.Category = catID.String()
	created, err := svc.Create(context.Background(), form, manifestWith(store, "profilePic"))
	require.NoError(t, err)

	got, err := svc.GetBySlug(context.Background(), created.Slug)

	require.NoError(t, err)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Woody", got.Category.Name)
}

func TestGetBySlugDanglingCategoryYieldsNilRef(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := newService(repo, nil, store)

	form := validForm("Bergamot")
	form.Category = uuid.NewString() // never created
	created, err := svc.Create(context.Background(), form, manifestWith(store, "profilePic"))
	require.NoError(t, err)

	got, err := svc.GetBySlug(context.Background(), created.Slug)

	require.NoError(t, err)
	assert.Nil(t, got.Category)
}

func TestUpdateInvalidIDCompensates(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := newService(repo, nil, store)

	_, err := svc.Update(context.Background(), "not-a-uuid", validForm("Amber"),
		manifestWith(store, "profilePic"))

	require.ErrorIs(t, err, note.ErrValidation)
	assert.Len(t, store.deleted, 1, "fresh upload discarded on a bad id")
}
