package repositories

import (
	"context"

	"samajam-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// GetAll gets all members ordered by serial number
func (r *memberRepository) GetAll(ctx context.Context) ([]*models.Member, error) {
	var members []*models.Member
	err := r.db.WithContext(ctx).
		Order("sl_no ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// GetBySlNo gets a member by serial number
func (r *memberRepository) GetBySlNo(ctx context.Context, slNo int) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Where("sl_no = ?", slNo).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Exists checks if a member with the serial number exists
func (r *memberRepository) Exists(ctx context.Context, slNo int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("sl_no = ?", slNo).
		Count(&count).Error
	return count > 0, err
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Update applies the given fields to a member and returns the updated
// record. Returns gorm.ErrRecordNotFound when no row matched.
func (r *memberRepository) Update(ctx context.Context, slNo int, fields map[string]interface{}) (*models.Member, error) {
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.Member{}).
			Where("sl_no = ?", slNo).
			Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetBySlNo(ctx, slNo)
}

// Delete hard deletes a member. Returns false when the serial number
// did not exist.
func (r *memberRepository) Delete(ctx context.Context, slNo int) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("sl_no = ?", slNo).
		Delete(&models.Member{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
