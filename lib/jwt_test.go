package lib

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-please-rotate"

func TestGenerateAndParseToken(t *testing.T) {
	sub := uuid.Must(uuid.NewV7())

	tokenStr, err := GenerateToken(sub, "admin@example.com", "admin", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ParseToken(tokenStr, testSecret)
	require.NoError(t, err)
	assert.Equal(t, sub, claims.Sub)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEqual(t, uuid.Nil, claims.Jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Exp, time.Minute)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken(uuid.Must(uuid.NewV7()), "admin@example.com", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tokenStr, "a-different-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tokenStr, err := GenerateToken(uuid.Must(uuid.NewV7()), "admin@example.com", "admin", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenStr, testSecret)
	assert.Error(t, err)
}

func TestExtractClaims(t *testing.T) {
	sub := uuid.Must(uuid.NewV7())
	tokenStr, err := GenerateToken(sub, "admin@example.com", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/vendors", nil)
	r.Header.Set("Authorization", "Bearer "+tokenStr)

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	assert.Equal(t, sub, claims.Sub)
}

func TestExtractClaimsRejectsMissingOrMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "Basic abc123"},
		{name: "bearer but garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/vendors", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			_, err := ExtractClaims(r, testSecret)
			assert.Error(t, err)
		})
	}
}
