package upload

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Image is a stored asset reference. The StorageID is the only handle
// usable to delete the underlying object later; the URL is what clients see.
type Image struct {
	URL       string `json:"url"`
	StorageID string `json:"storageId"`
}

func (i Image) IsZero() bool {
	return i.URL == "" && i.StorageID == ""
}

// Store is the object-store gateway contract the write pipeline depends on.
// The MinIO implementation lives in internal/infrastructure/storage.
type Store interface {
	// Store uploads a file for the named form field and returns its
	// stored reference. The field name selects the target folder.
	Store(ctx context.Context, fieldName string, data []byte, originalName string) (Image, error)

	// Delete removes a stored object. An empty storage id is a no-op.
	Delete(ctx context.Context, storageID string) error
}

// Manifest maps form field names to the images freshly uploaded for one
// request. It is produced by the Files middleware before the handler runs
// and is what the pipeline compensates against on failure.
type Manifest map[string]Image

func (m Manifest) Image(field string) (Image, bool) {
	img, ok := m[field]
	return img, ok
}

func (m Manifest) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Discard deletes every image in the manifest. Used as compensation when a
// create/update fails after the upload phase already ran.
func (m Manifest) Discard(ctx context.Context, store Store) {
	for field, img := range m {
		Cleanup(ctx, store, img)
		delete(m, field)
	}
}

// Cleanup best-effort deletes stored images. Deletion failures are logged
// and swallowed: they must never abort or fail the surrounding write.
func Cleanup(ctx context.Context, store Store, images ...Image) {
	for _, img := range images {
		if img.StorageID == "" {
			continue
		}
		if err := store.Delete(ctx, img.StorageID); err != nil {
			log.Warn().
				Err(err).
				Str("storage_id", img.StorageID).
				Msg("image delete failed, leaving orphan")
		}
	}
}
