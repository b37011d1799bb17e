package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HexaCluster/pg-summarize/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"well formed", "Bearer abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"missing token", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(r))
		})
	}
}

func TestValidateToken(t *testing.T) {
	secret := []byte("unit-test-secret")
	restore := config.SetJWTSecret(secret)
	defer restore()

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, secret, time.Now().Add(time.Hour))
		assert.True(t, ValidateToken(token))
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, secret, time.Now().Add(-time.Hour))
		assert.False(t, ValidateToken(token))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, []byte("some-other-secret"), time.Now().Add(time.Hour))
		assert.False(t, ValidateToken(token))
	})

	t.Run("garbage", func(t *testing.T) {
		assert.False(t, ValidateToken("not-a-jwt"))
	})
}

func TestEnabled(t *testing.T) {
	restore := config.SetJWTSecret(nil)
	assert.False(t, Enabled())
	restore()

	restore = config.SetJWTSecret([]byte("s"))
	assert.True(t, Enabled())
	restore()
}

func TestEnabledAfterDotenvLoad(t *testing.T) {
	// main loads .env well after package init; a secret provided only
	// there must still arm the guard.
	os.Unsetenv("JWT_SECRET")
	require.False(t, Enabled())

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("JWT_SECRET=from-dotenv\n"), 0o600))
	require.NoError(t, godotenv.Load(envFile))
	defer os.Unsetenv("JWT_SECRET")

	assert.True(t, Enabled())
	assert.Equal(t, "from-dotenv", string(config.GetJWTSecret()))
}
