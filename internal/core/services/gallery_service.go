package services

import (
	"context"
	"math/rand"

	"samajam-backend/internal/adapters/persistence/models"
	"samajam-backend/internal/adapters/persistence/repositories"
)

// GalleryService serves the public photo gallery reads.
type GalleryService struct {
	galleryRepo repositories.GalleryRepository
}

// NewGalleryService creates a new gallery service
func NewGalleryService(galleryRepo repositories.GalleryRepository) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo}
}

// ByYear returns a year's photos in presentation order
func (s *GalleryService) ByYear(ctx context.Context, year int) ([]*models.GalleryPhoto, error) {
	return s.galleryRepo.GetByYear(ctx, year)
}

// ByEvent returns an event's photos in presentation order
func (s *GalleryService) ByEvent(ctx context.Context, eventName string) ([]*models.GalleryPhoto, error) {
	return s.galleryRepo.GetByEvent(ctx, eventName)
}

// SocialWork returns the social work collection
func (s *GalleryService) SocialWork(ctx context.Context) ([]*models.GalleryPhoto, error) {
	return s.galleryRepo.GetByCategory(ctx, repositories.SocialWorkCategory)
}

// Random returns up to limit photos of a year in a fresh random order.
// Each call reshuffles, so concurrent callers see different subsets.
func (s *GalleryService) Random(ctx context.Context, year, limit int) ([]*models.GalleryPhoto, error) {
	photos, err := s.galleryRepo.GetByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(photos), func(i, j int) {
		photos[i], photos[j] = photos[j], photos[i]
	})

	if limit > 0 && limit < len(photos) {
		photos = photos[:limit]
	}
	return photos, nil
}

// AvailableYears returns the distinct gallery years
func (s *GalleryService) AvailableYears(ctx context.Context) ([]int, error) {
	return s.galleryRepo.GetYears(ctx)
}

// EventsByYear returns the distinct events of a year in first-seen
// order, each with its first-encountered description.
func (s *GalleryService) EventsByYear(ctx context.Context, year int) ([]*models.GalleryEvent, error) {
	rows, err := s.galleryRepo.GetEventRows(ctx, year)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	events := make([]*models.GalleryEvent, 0, len(rows))
	for _, row := range rows {
		if seen[row.EventName] {
			continue
		}
		seen[row.EventName] = true
		events = append(events, &models.GalleryEvent{
			EventName:   row.EventName,
			Description: row.Description,
		})
	}
	return events, nil
}
