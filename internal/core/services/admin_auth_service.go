package services

import (
	"samajam-backend/internal/config"
	"samajam-backend/internal/pkg/password"
)

// AdminIdentity is the public shape of the admin account. The hash is
// never part of it.
type AdminIdentity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AdminAuthService authenticates the single env-configured admin
// identity.
type AdminAuthService struct {
	admin config.AdminConfig
}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService(admin config.AdminConfig) *AdminAuthService {
	return &AdminAuthService{admin: admin}
}

// Authenticate checks admin credentials. A username mismatch returns
// false without touching the hash; with a single admin account there is
// nothing to protect against timing probes on the username.
func (s *AdminAuthService) Authenticate(username, pass string) bool {
	if username != s.admin.Username {
		return false
	}
	return password.Verify(pass, s.admin.PasswordHash)
}

// GetIdentity returns the public admin identity for a matching
// username, nil otherwise.
func (s *AdminAuthService) GetIdentity(username string) *AdminIdentity {
	if username != s.admin.Username {
		return nil
	}
	return &AdminIdentity{
		Username: s.admin.Username,
		Role:     "admin",
	}
}
