package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"samajam-backend/internal/adapters/persistence/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	return db
}

// fakeStore is an in-memory ObjectStore for service tests
type fakeStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	modified map[string]time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:  make(map[string][]byte),
		modified: make(map[string]time.Time),
	}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

func (f *fakeStore) Put(_ context.Context, bucket, key string, data []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	full := objectKey(bucket, key)
	f.objects[full] = data
	f.modified[full] = time.Now()
	return nil
}

func (f *fakeStore) Exists(_ context.Context, bucket, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[objectKey(bucket, key)]
	return ok, nil
}

func (f *fakeStore) Remove(_ context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	full := objectKey(bucket, key)
	if _, ok := f.objects[full]; !ok {
		return fmt.Errorf("object not found: %s", full)
	}
	delete(f.objects, full)
	delete(f.modified, full)
	return nil
}

func (f *fakeStore) List(_ context.Context, bucket string) ([]StoredObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prefix := bucket + "/"
	var objects []StoredObject
	for full := range f.objects {
		if len(full) > len(prefix) && full[:len(prefix)] == prefix {
			objects = append(objects, StoredObject{
				Key:          full[len(prefix):],
				LastModified: f.modified[full],
			})
		}
	}
	return objects, nil
}

// age backdates an object's modification time for sweep tests
func (f *fakeStore) age(bucket, key string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.modified[objectKey(bucket, key)] = time.Now().Add(-d)
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}
