package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"samajam-backend/internal/core/domain"
)

// StoredObject is one listed object in a bucket
type StoredObject struct {
	Key          string
	LastModified time.Time
}

// ObjectStore abstracts the S3-compatible bucket API
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, data []byte, contentType string) error
	Exists(ctx context.Context, bucket, key string) (bool, error)
	Remove(ctx context.Context, bucket, key string) error
	List(ctx context.Context, bucket string) ([]StoredObject, error)
}

// StorageService uploads photo blobs to the external bucket and turns
// previously issued public URLs back into bucket keys for deletion.
type StorageService struct {
	store      ObjectStore
	publicBase string
	buckets    []string
}

// NewStorageService creates a new storage service. buckets lists every
// bucket whose public URLs this service may be asked to delete.
func NewStorageService(store ObjectStore, publicBase string, buckets ...string) *StorageService {
	return &StorageService{
		store:      store,
		publicBase: strings.TrimRight(publicBase, "/"),
		buckets:    buckets,
	}
}

// Upload writes a blob and returns its public URL. When overwrite is
// false an already existing key is an error.
func (s *StorageService) Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error) {
	if !overwrite {
		exists, err := s.store.Exists(ctx, bucket, key)
		if err != nil {
			return "", err
		}
		if exists {
			return "", fmt.Errorf("%w: %s/%s", domain.ErrObjectExists, bucket, key)
		}
	}

	if err := s.store.Put(ctx, bucket, key, data, contentType); err != nil {
		return "", err
	}

	return s.PublicURL(bucket, key), nil
}

// PublicURL returns the stable unauthenticated URL for a bucket key
func (s *StorageService) PublicURL(bucket, key string) string {
	return s.publicBase + "/" + bucket + "/" + key
}

// Delete removes the object a public URL points at. An empty URL is a
// no-op success (nothing to delete). A URL that does not contain a
// known bucket path segment is an error.
func (s *StorageService) Delete(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		return nil
	}

	bucket, key, err := s.ParseURL(rawURL)
	if err != nil {
		return err
	}

	return s.store.Remove(ctx, bucket, key)
}

// ParseURL extracts the bucket and key from a previously issued public
// URL by locating the bucket path segment.
func (s *StorageService) ParseURL(rawURL string) (string, string, error) {
	for _, bucket := range s.buckets {
		marker := "/" + bucket + "/"
		if idx := strings.Index(rawURL, marker); idx >= 0 {
			key := rawURL[idx+len(marker):]
			if key != "" {
				return bucket, key, nil
			}
		}
	}
	return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidURL, rawURL)
}
