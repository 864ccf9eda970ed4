package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"samajam-backend/internal/adapters/persistence/models"
	"samajam-backend/internal/adapters/persistence/repositories"
	"samajam-backend/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newsUpdatableFields is the allow-list for news patches. Timestamps
// and the id are repository-assigned and never client-supplied.
var newsUpdatableFields = map[string]bool{
	"title":     true,
	"date":      true,
	"excerpt":   true,
	"content":   true,
	"image_url": true,
}

// NewsService covers the public news listing and the admin news CRUD.
type NewsService struct {
	newsRepo     repositories.NewsRepository
	storage      *StorageService
	imagesBucket string
}

// NewNewsService creates a new news service
func NewNewsService(newsRepo repositories.NewsRepository, storage *StorageService, imagesBucket string) *NewsService {
	return &NewsService{
		newsRepo:     newsRepo,
		storage:      storage,
		imagesBucket: imagesBucket,
	}
}

// CreateNewsInput represents news creation input
type CreateNewsInput struct {
	Title    string
	Date     string
	Excerpt  string
	Content  string
	ImageURL *string
}

// GetAll returns all articles, newest date first
func (s *NewsService) GetAll(ctx context.Context) ([]*models.NewsArticle, error) {
	return s.newsRepo.GetAll(ctx)
}

// GetByID returns one article
func (s *NewsService) GetByID(ctx context.Context, id uint) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

// Create creates an article
func (s *NewsService) Create(ctx context.Context, input *CreateNewsInput) (*models.NewsArticle, error) {
	article := &models.NewsArticle{
		Title:    input.Title,
		Date:     input.Date,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}

	if err := s.newsRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

// Update applies a partial patch. Unknown keys are silently dropped.
func (s *NewsService) Update(ctx context.Context, id uint, updates map[string]interface{}) (*models.NewsArticle, error) {
	article, err := s.newsRepo.Update(ctx, id, filterFields(updates, newsUpdatableFields))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return article, nil
}

// Delete hard deletes an article. A missing id is reported as false,
// not an error.
func (s *NewsService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.newsRepo.Delete(ctx, id)
}

// UploadImage stores an article image and returns its public URL. News
// image keys never overwrite an existing object.
func (s *NewsService) UploadImage(ctx context.Context, blob []byte, filename, mimeType string) (string, error) {
	key := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(filename))
	return s.storage.Upload(ctx, s.imagesBucket, key, blob, mimeType, false)
}
