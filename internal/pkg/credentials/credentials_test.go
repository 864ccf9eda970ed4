package credentials

import (
	"encoding/base64"
	"errors"
	"testing"
)

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestDecodeBasic(t *testing.T) {
	tests := []struct {
		name     string
		encoded  string
		wantUser string
		wantPass string
		wantErr  error
	}{
		{"simple pair", encode("admin:secret123"), "admin", "secret123", nil},
		{"password with colon", encode("admin:se:cr:et"), "admin", "se:cr:et", nil},
		{"numeric serial", encode("42:1234"), "42", "1234", nil},
		{"empty password", encode("admin:"), "admin", "", nil},
		{"no colon", encode("adminsecret"), "", "", ErrMalformed},
		{"not base64", "%%%not-base64%%%", "", "", ErrMalformed},
		{"empty input", "", "", "", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, pass, err := DecodeBasic(tt.encoded)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeBasic(%q) err = %v, want %v", tt.encoded, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeBasic(%q) returned error: %v", tt.encoded, err)
			}
			if user != tt.wantUser || pass != tt.wantPass {
				t.Errorf("DecodeBasic(%q) = (%q, %q), want (%q, %q)",
					tt.encoded, user, pass, tt.wantUser, tt.wantPass)
			}
		})
	}
}
