package services

import (
	"testing"

	"samajam-backend/internal/config"
	"samajam-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminAuth(t *testing.T) *AdminAuthService {
	t.Helper()
	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)
	return NewAdminAuthService(config.AdminConfig{
		Username:     "admin",
		PasswordHash: hash,
	})
}

func TestAdminAuthenticate(t *testing.T) {
	svc := newTestAdminAuth(t)

	tests := []struct {
		name     string
		username string
		pass     string
		want     bool
	}{
		{"valid credentials", "admin", "correct-horse", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "root", "correct-horse", false},
		{"empty credentials", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Authenticate(tt.username, tt.pass))
		})
	}
}

func TestAdminGetIdentity(t *testing.T) {
	svc := newTestAdminAuth(t)

	identity := svc.GetIdentity("admin")
	require.NotNil(t, identity)
	assert.Equal(t, "admin", identity.Username)
	assert.Equal(t, "admin", identity.Role)

	assert.Nil(t, svc.GetIdentity("someone-else"))
}
