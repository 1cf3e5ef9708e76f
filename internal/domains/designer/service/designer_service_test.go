package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scentpress-backend/internal/domains/designer"
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
	records    map[uuid.UUID]*designer.Designer
	createErr  error
	replaceErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[uuid.UUID]*designer.Designer{}}
}

func (r *fakeRepo) Create(_ context.Context, d *designer.Designer) (*designer.Designer, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *d
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.records[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]designer.Designer, error) {
	var all []designer.Designer
	for _, d := range r.records {
		all = append(all, *d)
	}
	return all, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*designer.Designer, error) {
	if d, ok := r.records[id]; ok {
		out := *d
		return &out, nil
	}
	return nil, designer.ErrNotFound
}

func (r *fakeRepo) GetBySlug(_ context.Context, slug string) (*designer.Designer, error) {
	for _, d := range r.records {
		if d.Slug == slug {
			out := *d
			return &out, nil
		}
	}
	return nil, designer.ErrNotFound
}

func (r *fakeRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]designer.Designer, error) {
	var out []designer.Designer
	for _, id := range ids {
		if d, ok := r.records[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeRepo) Replace(_ context.Context, d *designer.Designer) (*designer.Designer, error) {
	if r.replaceErr != nil {
		return nil, r.replaceErr
	}
	if _, ok := r.records[d.ID]; !ok {
		return nil, designer.ErrNotFound
	}
	stored := *d
	stored.UpdatedAt = time.Now()
	r.records[d.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return designer.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRepo) IsSlugTaken(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	for _, d := range r.records {
		if d.Slug == slug && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func validForm(name string) *designer.DesignerForm {
	return &designer.DesignerForm{
		Name:            name,
		Description:     "a storied fashion house",
		MetaTitle:       name,
		MetaDescription: name + " perfumes",
	}
}

func uploadedLogo(store *fakeStore) upload.Manifest {
	img, _ := store.Store(context.Background(), "logo", []byte("x"), "logo.png")
	return upload.Manifest{"logo": img}
}

func TestCreateAssignsSlugAndKeepsLogo(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	created, err := svc.Create(context.Background(), validForm("Tom Ford"), uploadedLogo(store))

	require.NoError(t, err)
	assert.Equal(t, "tom-ford", created.Slug)
	assert.Equal(t, "logo/1", created.Logo.StorageID)
	assert.Empty(t, store.deleted, "no compensation on success")
}

func TestCreateConflictDeletesFreshUpload(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	_, err := svc.Create(context.Background(), validForm("Chanel"), uploadedLogo(store))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validForm("chanel "), uploadedLogo(store))

	require.ErrorIs(t, err, designer.ErrSlugTaken)
	require.Len(t, store.deleted, 1, "the second upload must be discarded")
	assert.Equal(t, "logo/2", store.deleted[0])
	assert.Len(t, repo.records, 1)
}

func TestCreateValidationFailureDeletesFreshUpload(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	form := validForm("Dior")
	form.Description = ""

	_, err := svc.Create(context.Background(), form, uploadedLogo(store))

	require.ErrorIs(t, err, designer.ErrValidation)
	assert.Len(t, store.deleted, 1)
	assert.Empty(t, repo.records)
}

func TestCreateMissingLogoRejected(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	_, err := svc.Create(context.Background(), validForm("Dior"), upload.Manifest{})

	require.ErrorIs(t, err, designer.ErrMissingImage)
	assert.Empty(t, repo.records)
}

func TestCreatePersistFailureDeletesFreshUpload(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("db down")
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	_, err := svc.Create(context.Background(), validForm("Guerlain"), uploadedLogo(store))

	require.Error(t, err)
	assert.Len(t, store.deleted, 1, "persistence failure must still compensate")
}

func TestUpdateWithoutNewLogoCarriesOver(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	created, err := svc.Create(context.Background(), validForm("Creed"), uploadedLogo(store))
	require.NoError(t, err)

	form := validForm("Creed")
	form.Description = "updated description"
	updated, err := svc.Update(context.Background(), created.Slug, form, upload.Manifest{})

	require.NoError(t, err)
	assert.Equal(t, created.Slug, updated.Slug, "slug unchanged when name unchanged")
	assert.Equal(t, created.Logo, updated.Logo, "stored logo carried over")
	assert.Empty(t, store.deleted)
}

func TestUpdateNewLogoDeletesOldAfterPersist(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	created, err := svc.Create(context.Background(), validForm("Amouage"), uploadedLogo(store))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.Slug, validForm("Amouage"), uploadedLogo(store))

	require.NoError(t, err)
	assert.Equal(t, "logo/2", updated.Logo.StorageID)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, created.Logo.StorageID, store.deleted[0], "old logo removed")
}

func TestUpdatePersistFailureKeepsOldLogoAndDiscardsNew(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	created, err := svc.Create(context.Background(), validForm("Byredo"), uploadedLogo(store))
	require.NoError(t, err)

	repo.replaceErr = errors.New("db down")
	_, err = svc.Update(context.Background(), created.Slug, validForm("Byredo"), uploadedLogo(store))

	require.Error(t, err)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, "logo/2", store.deleted[0], "only the fresh upload is discarded")
	kept, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Logo, kept.Logo, "persisted record still references its logo")
}

func TestUpdateRenameBackToOwnSlugIsNotAConflict(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	created, err := svc.Create(context.Background(), validForm("Le Labo"), uploadedLogo(store))
	require.NoError(t, err)

	// Different raw name, same computed slug: the record excludes itself.
	_, err = svc.Update(context.Background(), created.Slug, validForm("le labo"), upload.Manifest{})
	require.NoError(t, err)
}

func TestUpdateRenameToTakenSlugConflicts(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	_, err := svc.Create(context.Background(), validForm("Prada"), uploadedLogo(store))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validForm("Gucci"), uploadedLogo(store))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.Slug, validForm("Prada"), upload.Manifest{})
	require.ErrorIs(t, err, designer.ErrSlugTaken)
}

func TestDeleteRemovesRecordAndLogo(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	svc := NewDesignerService(repo, store)

	created, err := svc.Create(context.Background(), validForm("Xerjoff"), uploadedLogo(store))
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, repo.records)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, created.Logo.StorageID, store.deleted[0])
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := NewDesignerService(newFakeRepo(), &fakeStore{})

	_, err := svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, designer.ErrNotFound)
}
