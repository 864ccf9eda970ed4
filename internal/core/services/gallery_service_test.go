package services

import (
	"context"
	"testing"

	"samajam-backend/internal/adapters/persistence/models"
	"samajam-backend/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGallery(t *testing.T, db *gorm.DB, photos []models.GalleryPhoto) {
	t.Helper()
	require.NoError(t, db.Create(&photos).Error)
}

func newTestGalleryService(t *testing.T) (*GalleryService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewGalleryService(repositories.NewGalleryRepository(db)), db
}

func TestGalleryByYearOrder(t *testing.T) {
	svc, db := newTestGalleryService(t)
	seedGallery(t, db, []models.GalleryPhoto{
		{PhotoURL: "u3", Year: 2025, EventName: "Onam", DisplayOrder: 3},
		{PhotoURL: "u1", Year: 2025, EventName: "Onam", DisplayOrder: 1},
		{PhotoURL: "u2", Year: 2025, EventName: "Vishu", DisplayOrder: 2},
		{PhotoURL: "other-year", Year: 2024, EventName: "Onam", DisplayOrder: 1},
	})

	photos, err := svc.ByYear(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, "u1", photos[0].PhotoURL)
	assert.Equal(t, "u2", photos[1].PhotoURL)
	assert.Equal(t, "u3", photos[2].PhotoURL)
}

func TestGalleryByEvent(t *testing.T) {
	svc, db := newTestGalleryService(t)
	seedGallery(t, db, []models.GalleryPhoto{
		{PhotoURL: "a", Year: 2025, EventName: "Onam Sadya", DisplayOrder: 2},
		{PhotoURL: "b", Year: 2025, EventName: "Onam Sadya", DisplayOrder: 1},
		{PhotoURL: "c", Year: 2025, EventName: "Vishu", DisplayOrder: 1},
	})

	photos, err := svc.ByEvent(context.Background(), "Onam Sadya")
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "b", photos[0].PhotoURL)
}

func TestGalleryAvailableYearsExcludesSocialWork(t *testing.T) {
	svc, db := newTestGalleryService(t)
	seedGallery(t, db, []models.GalleryPhoto{
		{PhotoURL: "a", Year: 2023, EventName: "Onam"},
		{PhotoURL: "b", Year: 2025, EventName: "Onam"},
		{PhotoURL: "c", Year: 2025, EventName: "Vishu"},
		{PhotoURL: "d", Year: 2020, Category: repositories.SocialWorkCategory},
	})

	years, err := svc.AvailableYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2025, 2023}, years)
}

func TestGallerySocialWork(t *testing.T) {
	svc, db := newTestGalleryService(t)
	seedGallery(t, db, []models.GalleryPhoto{
		{PhotoURL: "event-photo", Year: 2025, EventName: "Onam"},
		{PhotoURL: "sw1", Year: 2024, Category: repositories.SocialWorkCategory, DisplayOrder: 2},
		{PhotoURL: "sw2", Year: 2024, Category: repositories.SocialWorkCategory, DisplayOrder: 1},
	})

	photos, err := svc.SocialWork(context.Background())
	require.NoError(t, err)
	require.Len(t, photos, 2)
	assert.Equal(t, "sw2", photos[0].PhotoURL)
}

func TestGalleryEventsByYearDedupes(t *testing.T) {
	svc, db := newTestGalleryService(t)
	seedGallery(t, db, []models.GalleryPhoto{
		{PhotoURL: "a", Year: 2025, EventName: "Onam", Description: "first", DisplayOrder: 1},
		{PhotoURL: "b", Year: 2025, EventName: "Onam", Description: "second", DisplayOrder: 2},
		{PhotoURL: "c", Year: 2025, EventName: "Vishu", Description: "spring", DisplayOrder: 3},
		{PhotoURL: "d", Year: 2024, EventName: "Christmas", DisplayOrder: 1},
	})

	events, err := svc.EventsByYear(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Onam", events[0].EventName)
	assert.Equal(t, "first", events[0].Description, "keeps the first-encountered description")
	assert.Equal(t, "Vishu", events[1].EventName)
}

func TestGalleryRandomLimit(t *testing.T) {
	svc, db := newTestGalleryService(t)

	var photos []models.GalleryPhoto
	for i := 0; i < 20; i++ {
		photos = append(photos, models.GalleryPhoto{PhotoURL: "p", Year: 2025, EventName: "Onam", DisplayOrder: i})
	}
	seedGallery(t, db, photos)

	t.Run("caps at limit", func(t *testing.T) {
		got, err := svc.Random(context.Background(), 2025, 5)
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("returns all when limit exceeds count", func(t *testing.T) {
		got, err := svc.Random(context.Background(), 2025, 100)
		require.NoError(t, err)
		assert.Len(t, got, 20)
	})

	t.Run("empty year", func(t *testing.T) {
		got, err := svc.Random(context.Background(), 1999, 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
