package jwt

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const scopePrefix = "SCOPE_"

// Claims carries the space separated scope list issued by the auth server
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// Scopes returns the granted scopes with any SCOPE_ prefix stripped
func (c *Claims) Scopes() []string {
	fields := strings.Fields(c.Scope)
	for i, f := range fields {
		fields[i] = strings.TrimPrefix(f, scopePrefix)
	}
	return fields
}

func (c *Claims) HasScope(scope string) bool {
	want := strings.TrimPrefix(scope, scopePrefix)
	for _, s := range c.Scopes() {
		if s == want {
			return true
		}
	}
	return false
}

// Manager verifies HS256 bearer tokens
type Manager struct {
	secret string
}

func NewManager(secret string) *Manager {
	return &Manager{secret: secret}
}

// ValidateToken validates and parses token
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
