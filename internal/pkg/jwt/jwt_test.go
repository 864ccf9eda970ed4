package jwt

import (
	"errors"
	"testing"
)

const testSecret = "test-secret"

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("admin", "admin", testSecret)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != "admin" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "admin")
	}
}

func TestTokenHasNoExpiry(t *testing.T) {
	token, err := GenerateToken("admin", "admin", testSecret)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatal(err)
	}
	if claims.ExpiresAt != nil {
		t.Error("issued tokens should carry no expiry claim")
	}
}

func TestValidateTokenRejects(t *testing.T) {
	good, err := GenerateToken("admin", "admin", testSecret)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", good, "other-secret"},
		{"garbage token", "not.a.token", testSecret},
		{"empty token", "", testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, tt.secret); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("ValidateToken err = %v, want ErrTokenInvalid", err)
			}
		})
	}
}
