package repositories

import (
	"context"

	"samajam-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// newsRepository implements NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// GetAll gets all news articles ordered by date descending
func (r *newsRepository) GetAll(ctx context.Context) ([]*models.NewsArticle, error) {
	var articles []*models.NewsArticle
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// GetByID gets a news article by id
func (r *newsRepository) GetByID(ctx context.Context, id uint) (*models.NewsArticle, error) {
	var article models.NewsArticle
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Create creates a new news article
func (r *newsRepository) Create(ctx context.Context, article *models.NewsArticle) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// Update applies the given fields to an article and returns the updated
// record. Returns gorm.ErrRecordNotFound when no row matched.
func (r *newsRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.NewsArticle, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.NewsArticle{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// Delete hard deletes a news article. Returns false when the id did not
// exist.
func (r *newsRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.NewsArticle{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
