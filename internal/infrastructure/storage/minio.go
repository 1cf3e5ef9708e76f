package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"scentpress-backend/internal/config"
	"scentpress-backend/internal/shared/upload"
)

// fieldFolders is the fixed mapping from upload form fields to bucket
// folders. Unknown fields land in "others".
var fieldFolders = map[string]string{
	"image1":     "blogs",
	"image2":     "blogs",
	"logo":       "designers",
	"image":      "perfumers",
	"profilePic": "notes",
	"coverPic":   "notes",
	"authorPic":  "authors",
}

const fallbackFolder = "others"

// MinIOStorage implements upload.Store against a MinIO/S3 bucket.
type MinIOStorage struct {
	client    *minio.Client
	bucket    string
	processor *ImageProcessor
}

func NewMinIOStorage(cfg config.MinIOConfig, processor *ImageProcessor) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client:    client,
		bucket:    cfg.Bucket,
		processor: processor,
	}, nil
}

// Store validates and normalizes the file to JPEG, then uploads it under
// the folder derived from the field name. The returned storage id is the
// object key: <folder>/<unixnano>-<base name>.jpg.
func (s *MinIOStorage) Store(ctx context.Context, fieldName string, data []byte, originalName string) (upload.Image, error) {
	if err := s.processor.Validate(data); err != nil {
		return upload.Image{}, err
	}

	normalized, err := s.processor.Normalize(data)
	if err != nil {
		return upload.Image{}, err
	}

	key := fmt.Sprintf("%s/%d-%s.jpg",
		folderFor(fieldName),
		time.Now().UnixNano(),
		baseName(originalName),
	)

	_, err = s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(normalized),
		int64(len(normalized)),
		minio.PutObjectOptions{ContentType: "image/jpeg"},
	)
	if err != nil {
		return upload.Image{}, fmt.Errorf("failed to upload to minio: %w", err)
	}

	return upload.Image{
		URL:       fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key),
		StorageID: key,
	}, nil
}

func (s *MinIOStorage) Delete(ctx context.Context, storageID string) error {
	if storageID == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, storageID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", storageID, err)
	}
	return nil
}

func folderFor(fieldName string) string {
	if folder, ok := fieldFolders[fieldName]; ok {
		return folder
	}
	return fallbackFolder
}

func baseName(originalName string) string {
	base := filepath.Base(originalName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, base)
	if base == "" {
		return "upload"
	}
	return base
}
