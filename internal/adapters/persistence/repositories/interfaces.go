package repositories

import (
	"context"

	"samajam-backend/internal/adapters/persistence/models"
)

// MemberRepository defines member repository interface
type MemberRepository interface {
	GetAll(ctx context.Context) ([]*models.Member, error)
	GetBySlNo(ctx context.Context, slNo int) (*models.Member, error)
	Exists(ctx context.Context, slNo int) (bool, error)
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, slNo int, fields map[string]interface{}) (*models.Member, error)
	Delete(ctx context.Context, slNo int) (bool, error)
}

// NewsRepository defines news repository interface
type NewsRepository interface {
	GetAll(ctx context.Context) ([]*models.NewsArticle, error)
	GetByID(ctx context.Context, id uint) (*models.NewsArticle, error)
	Create(ctx context.Context, article *models.NewsArticle) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.NewsArticle, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// OfficeBearerRepository defines read-only access to office bearer
// reference data
type OfficeBearerRepository interface {
	GetByTerm(ctx context.Context, termStart, termEnd string) ([]*models.OfficeBearer, error)
	GetAll(ctx context.Context) ([]*models.OfficeBearer, error)
}

// GalleryRepository defines read-only access to gallery photos
type GalleryRepository interface {
	GetByYear(ctx context.Context, year int) ([]*models.GalleryPhoto, error)
	GetByEvent(ctx context.Context, eventName string) ([]*models.GalleryPhoto, error)
	GetByCategory(ctx context.Context, category string) ([]*models.GalleryPhoto, error)
	GetYears(ctx context.Context) ([]int, error)
	GetEventRows(ctx context.Context, year int) ([]*models.GalleryPhoto, error)
}
