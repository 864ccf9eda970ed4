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
	"samajam-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// adminUpdatableFields is the allow-list for admin-side member patches.
// The serial number is immutable after creation and never appears here.
var adminUpdatableFields = map[string]bool{
	"name":           true,
	"address":        true,
	"family_members": true,
	"mobile_no":      true,
	"occupation":     true,
	"blood_group":    true,
	"native_place":   true,
	"email":          true,
	"current_status": true,
	"profile_photo":  true,
}

// selfUpdatableFields is the allow-list for member self-service
// patches. Members cannot rename themselves or change their password
// through this path.
var selfUpdatableFields = map[string]bool{
	"address":        true,
	"family_members": true,
	"mobile_no":      true,
	"occupation":     true,
	"blood_group":    true,
	"native_place":   true,
	"email":          true,
	"current_status": true,
	"profile_photo":  true,
}

// MemberService covers the admin member CRUD and the member
// self-service profile flow.
type MemberService struct {
	memberRepo   repositories.MemberRepository
	storage      *StorageService
	photosBucket string
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo repositories.MemberRepository, storage *StorageService, photosBucket string) *MemberService {
	return &MemberService{
		memberRepo:   memberRepo,
		storage:      storage,
		photosBucket: photosBucket,
	}
}

// CreateMemberInput represents admin member creation input
type CreateMemberInput struct {
	SlNo          int
	Name          string
	Address       string
	FamilyMembers string
	MobileNo      string
	Occupation    string
	BloodGroup    string
	NativePlace   string
	Email         string
	CurrentStatus string
	ProfilePhoto  *string
	OtpPassword   string
}

// GetAll returns every member in serial number order (admin view)
func (s *MemberService) GetAll(ctx context.Context) ([]*models.Member, error) {
	return s.memberRepo.GetAll(ctx)
}

// GetBySlNo returns one member (admin view)
func (s *MemberService) GetBySlNo(ctx context.Context, slNo int) (*models.Member, error) {
	member, err := s.memberRepo.GetBySlNo(ctx, slNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// GetProfile returns the member-facing view of one record
func (s *MemberService) GetProfile(ctx context.Context, slNo int) (*models.MemberProfile, error) {
	member, err := s.GetBySlNo(ctx, slNo)
	if err != nil {
		return nil, err
	}
	return member.ToProfile(), nil
}

// Create creates a member. The OTP password is stored hashed plus a
// plaintext mirror for the admin OTP lookup screen.
func (s *MemberService) Create(ctx context.Context, input *CreateMemberInput) (*models.Member, error) {
	exists, err := s.memberRepo.Exists(ctx, input.SlNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSerialInUse
	}

	hash, err := password.Hash(input.OtpPassword)
	if err != nil {
		return nil, err
	}

	status := input.CurrentStatus
	if status == "" {
		status = "Active"
	}

	member := &models.Member{
		SlNo:          input.SlNo,
		Name:          input.Name,
		Address:       input.Address,
		FamilyMembers: input.FamilyMembers,
		MobileNo:      input.MobileNo,
		Occupation:    input.Occupation,
		BloodGroup:    input.BloodGroup,
		NativePlace:   input.NativePlace,
		Email:         input.Email,
		CurrentStatus: status,
		ProfilePhoto:  input.ProfilePhoto,
		OtpPassword:   hash,
		OtpPlain:      input.OtpPassword,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// AdminUpdate applies an admin patch. Fields outside the allow-list are
// silently dropped. An otp_password value is re-hashed and the plain
// mirror refreshed alongside.
func (s *MemberService) AdminUpdate(ctx context.Context, slNo int, updates map[string]interface{}) (*models.Member, error) {
	fields := filterFields(updates, adminUpdatableFields)

	if raw, ok := updates["otp_password"]; ok {
		if plain, ok := raw.(string); ok && plain != "" {
			hash, err := password.Hash(plain)
			if err != nil {
				return nil, err
			}
			fields["otp_password"] = hash
			fields["otp_plain"] = plain
		}
	}

	return s.applyUpdate(ctx, slNo, fields)
}

// SelfUpdate applies a member self-service patch. Name, serial number
// and password changes are dropped, not rejected.
func (s *MemberService) SelfUpdate(ctx context.Context, slNo int, updates map[string]interface{}) (*models.Member, error) {
	return s.applyUpdate(ctx, slNo, filterFields(updates, selfUpdatableFields))
}

func (s *MemberService) applyUpdate(ctx context.Context, slNo int, fields map[string]interface{}) (*models.Member, error) {
	member, err := s.memberRepo.Update(ctx, slNo, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// Delete hard deletes a member. A missing serial number is reported as
// false, not an error, so repeated deletes stay safe.
func (s *MemberService) Delete(ctx context.Context, slNo int) (bool, error) {
	return s.memberRepo.Delete(ctx, slNo)
}

// ReplacePhoto swaps a member's profile photo: the old object is
// removed, the new blob uploaded under a fresh key, and the row
// updated. The three steps are not atomic; a failure after the delete
// leaves the member briefly without a photo until the cleanup sweep or
// a retry.
func (s *MemberService) ReplacePhoto(ctx context.Context, slNo int, blob []byte, filename, mimeType string) (*models.Member, error) {
	member, err := s.GetBySlNo(ctx, slNo)
	if err != nil {
		return nil, err
	}

	if member.ProfilePhoto != nil && *member.ProfilePhoto != "" {
		if err := s.storage.Delete(ctx, *member.ProfilePhoto); err != nil {
			return nil, err
		}
	}

	key := s.photoKey(slNo, filename)
	url, err := s.storage.Upload(ctx, s.photosBucket, key, blob, mimeType, true)
	if err != nil {
		return nil, err
	}

	return s.applyUpdate(ctx, slNo, map[string]interface{}{"profile_photo": url})
}

// UploadPhoto stores a photo blob for a member without touching any
// existing object, returning the public URL. Used by the admin create
// and update flows where the row is written afterwards.
func (s *MemberService) UploadPhoto(ctx context.Context, slNo int, blob []byte, filename, mimeType string) (string, error) {
	key := s.photoKey(slNo, filename)
	return s.storage.Upload(ctx, s.photosBucket, key, blob, mimeType, false)
}

// RemovePhoto deletes a member's profile photo object and clears the
// column.
func (s *MemberService) RemovePhoto(ctx context.Context, slNo int) (*models.Member, error) {
	member, err := s.GetBySlNo(ctx, slNo)
	if err != nil {
		return nil, err
	}

	if member.ProfilePhoto == nil || *member.ProfilePhoto == "" {
		return nil, domain.ErrNoPhoto
	}

	if err := s.storage.Delete(ctx, *member.ProfilePhoto); err != nil {
		return nil, err
	}

	return s.applyUpdate(ctx, slNo, map[string]interface{}{"profile_photo": nil})
}

// photoKey builds a collision-resistant object key from the owning
// serial number, the current timestamp and the original extension.
func (s *MemberService) photoKey(slNo int, filename string) string {
	return fmt.Sprintf("%d_%d%s", slNo, time.Now().UnixMilli(), filepath.Ext(filename))
}

// filterFields keeps only allow-listed keys
func filterFields(updates map[string]interface{}, allowed map[string]bool) map[string]interface{} {
	fields := make(map[string]interface{})
	for key, value := range updates {
		if allowed[key] {
			fields[key] = value
		}
	}
	return fields
}
