package repositories

import (
	"context"

	"samajam-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// officeBearerRepository implements OfficeBearerRepository interface.
// The table is maintained outside this API; only reads are exposed.
type officeBearerRepository struct {
	db *gorm.DB
}

// NewOfficeBearerRepository creates a new office bearer repository
func NewOfficeBearerRepository(db *gorm.DB) OfficeBearerRepository {
	return &officeBearerRepository{db: db}
}

// GetByTerm gets office bearers for one term, in presentation order
func (r *officeBearerRepository) GetByTerm(ctx context.Context, termStart, termEnd string) ([]*models.OfficeBearer, error) {
	var bearers []*models.OfficeBearer
	err := r.db.WithContext(ctx).
		Where("term_start = ? AND term_end = ?", termStart, termEnd).
		Order("display_order ASC").
		Find(&bearers).Error
	if err != nil {
		return nil, err
	}
	return bearers, nil
}

// GetAll gets office bearers of every term, latest term first
func (r *officeBearerRepository) GetAll(ctx context.Context) ([]*models.OfficeBearer, error) {
	var bearers []*models.OfficeBearer
	err := r.db.WithContext(ctx).
		Order("term_start DESC").
		Order("display_order ASC").
		Find(&bearers).Error
	if err != nil {
		return nil, err
	}
	return bearers, nil
}
