package utils

import (
	"encoding/base64"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestDecodeClaimsUnverified(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-1",
		"name":  "Ada",
		"email": "ada@example.com",
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		wantErr   bool
		wantName  string
		wantSubj  string
		wantEmail string
	}{
		{
			name:      "signed token",
			token:     signed,
			wantName:  "Ada",
			wantSubj:  "user-1",
			wantEmail: "ada@example.com",
		},
		{
			name:     "padded payload",
			token:    "h." + base64.URLEncoding.EncodeToString([]byte(`{"name":"Bo"}`)) + ".s",
			wantName: "Bo",
		},
		{
			name:    "two segments",
			token:   "a.b",
			wantErr: true,
		},
		{
			name:    "empty payload",
			token:   "a..c",
			wantErr: true,
		},
		{
			name:    "payload not base64",
			token:   "a.!!!.c",
			wantErr: true,
		},
		{
			name:    "payload not json",
			token:   "a." + segment("not json") + ".c",
			wantErr: true,
		},
		{
			name:    "empty string",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := DecodeClaimsUnverified(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			name, _ := claims["name"].(string)
			sub, _ := claims["sub"].(string)
			email, _ := claims["email"].(string)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantSubj, sub)
			assert.Equal(t, tt.wantEmail, email)
		})
	}
}
