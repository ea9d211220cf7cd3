package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateToken(t *testing.T) {
	m := NewManager("secret")

	t.Run("valid", func(t *testing.T) {
		token := sign(t, "secret", Claims{
			Scope:            "ADMIN AUTHOR",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		})

		claims, err := m.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, claims.HasScope("ADMIN"))
		assert.True(t, claims.HasScope("AUTHOR"))
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := m.ValidateToken(sign(t, "other", Claims{Scope: "ADMIN"}))
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token := sign(t, "secret", Claims{
			Scope:            "ADMIN",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		})
		_, err := m.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestHasScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		check string
		want  bool
	}{
		{"plain", "ADMIN", "ADMIN", true},
		{"prefixed claim", "SCOPE_ADMIN", "ADMIN", true},
		{"prefixed check", "AUTHOR", "SCOPE_AUTHOR", true},
		{"among many", "read  AUTHOR write", "AUTHOR", true},
		{"missing", "AUTHOR", "ADMIN", false},
		{"case sensitive", "admin", "ADMIN", false},
		{"empty", "", "ADMIN", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Claims{Scope: tt.scope}
			assert.Equal(t, tt.want, c.HasScope(tt.check))
		})
	}
}
