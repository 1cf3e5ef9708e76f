package upload

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func multipartBody(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for field, name := range files {
		part, err := w.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func runFiles(store Store, fields []string, body *bytes.Buffer, contentType string) (Manifest, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	var got Manifest

	router := gin.New()
	router.POST("/x", Files(store, fields...), func(c *gin.Context) {
		got = FromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/x", body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	router.ServeHTTP(rec, req)
	return got, rec
}

func TestFilesUploadsListedFields(t *testing.T) {
	store := &fakeStore{}
	body, ct := multipartBody(t, map[string]string{
		"image1": "front.png",
		"image2": "back.png",
	})

	manifest, rec := runFiles(store, []string{"image1", "image2"}, body, ct)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, store.stored)
	assert.True(t, manifest.Has("image1"))
	assert.True(t, manifest.Has("image2"))
}

func TestFilesMissingFieldIsNotAnError(t *testing.T) {
	// Required-field enforcement belongs to the pipeline, after upload.
	store := &fakeStore{}
	body, ct := multipartBody(t, map[string]string{"image1": "front.png"})

	manifest, rec := runFiles(store, []string{"image1", "image2"}, body, ct)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, manifest.Has("image1"))
	assert.False(t, manifest.Has("image2"))
}

func TestFilesWithoutMultipartFormYieldsEmptyManifest(t *testing.T) {
	store := &fakeStore{}

	manifest, rec := runFiles(store, []string{"logo"}, bytes.NewBuffer(nil), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, manifest)
	assert.Zero(t, store.stored)
}

func TestFilesStoreFailureDiscardsEarlierUploads(t *testing.T) {
	store := &fakeStore{}
	body, ct := multipartBody(t, map[string]string{
		"image1": "front.png",
		"image2": "back.png",
	})

	// Fail the second upload by flipping the error after the first store.
	failing := &failAfterStore{inner: store, failFrom: 2}
	_, rec := runFiles(failing, []string{"image1", "image2"}, body, ct)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, store.deleted, 1, "the already-uploaded file must be discarded")
}

type failAfterStore struct {
	inner    *fakeStore
	calls    int
	failFrom int
}

func (f *failAfterStore) Store(ctx context.Context, field string, data []byte, name string) (Image, error) {
	f.calls++
	if f.calls >= f.failFrom {
		return Image{}, errors.New("upload failed")
	}
	return f.inner.Store(ctx, field, data, name)
}

func (f *failAfterStore) Delete(ctx context.Context, id string) error {
	return f.inner.Delete(ctx, id)
}
