package services

import (
	"context"
	"errors"

	"samajam-backend/internal/adapters/persistence/models"
	"samajam-backend/internal/adapters/persistence/repositories"
	"samajam-backend/internal/core/domain"
	"samajam-backend/internal/pkg/password"

	"gorm.io/gorm"
)

// MemberAuthService authenticates members by serial number and OTP
// password.
type MemberAuthService struct {
	memberRepo repositories.MemberRepository
}

// NewMemberAuthService creates a new member auth service
func NewMemberAuthService(memberRepo repositories.MemberRepository) *MemberAuthService {
	return &MemberAuthService{memberRepo: memberRepo}
}

// Authenticate looks up the member and verifies the OTP password.
// Unknown serial numbers and wrong passwords both come back as
// ErrInvalidCredentials so the two cases cannot be told apart. The
// returned record never serializes the password hash.
func (s *MemberAuthService) Authenticate(ctx context.Context, slNo int, otpPassword string) (*models.Member, error) {
	member, err := s.memberRepo.GetBySlNo(ctx, slNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(otpPassword, member.OtpPassword) {
		return nil, domain.ErrInvalidCredentials
	}

	return member, nil
}
