package repositories

import (
	"context"

	"samajam-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SocialWorkCategory marks photos that belong to the social work
// collection instead of a yearly event gallery.
const SocialWorkCategory = "social_work"

// galleryRepository implements GalleryRepository interface
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

// GetByYear gets photos of a year in presentation order
func (r *galleryRepository) GetByYear(ctx context.Context, year int) ([]*models.GalleryPhoto, error) {
	var photos []*models.GalleryPhoto
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("display_order ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetByEvent gets photos of an event in presentation order
func (r *galleryRepository) GetByEvent(ctx context.Context, eventName string) ([]*models.GalleryPhoto, error) {
	var photos []*models.GalleryPhoto
	err := r.db.WithContext(ctx).
		Where("event_name = ?", eventName).
		Order("display_order ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetByCategory gets photos of a category in presentation order
func (r *galleryRepository) GetByCategory(ctx context.Context, category string) ([]*models.GalleryPhoto, error) {
	var photos []*models.GalleryPhoto
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("display_order ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetYears gets the distinct gallery years, newest first. Social work
// photos live outside the yearly galleries and are excluded.
func (r *galleryRepository) GetYears(ctx context.Context) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).
		Model(&models.GalleryPhoto{}).
		Where("category <> ?", SocialWorkCategory).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

// GetEventRows gets the raw event/description projection for a year in
// a stable order, so callers can deduplicate by first appearance.
func (r *galleryRepository) GetEventRows(ctx context.Context, year int) ([]*models.GalleryPhoto, error) {
	var rows []*models.GalleryPhoto
	err := r.db.WithContext(ctx).
		Select("event_name", "description").
		Where("year = ?", year).
		Order("display_order ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
