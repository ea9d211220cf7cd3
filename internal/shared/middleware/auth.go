package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/jwt"
)

const claimsKey = "claims"

type TokenVerifier interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// Auth verifies the bearer token and stores its claims on the context
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Missing authorization header")
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := verifier.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			log.Debug().
				Err(err).
				Str("request_id", c.GetString("request_id")).
				Msg("Token rejected")
			response.Unauthorized(c, "Invalid token")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireScope must run after Auth
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			response.Unauthorized(c, "Missing credentials")
			return
		}
		if !claims.HasScope(scope) {
			response.Forbidden(c, "Access denied: "+scope+" scope required")
			return
		}
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
