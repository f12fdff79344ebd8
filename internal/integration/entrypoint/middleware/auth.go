// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// PrincipalKey is the context key for the authenticated principal.
	PrincipalKey ContextKey = "principal"

	bearerPrefix = "Bearer "
)

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID uuid.UUID
	Email  string
}

// AuthMiddleware authenticates requests from bearer tokens.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a handler that binds the caller's identity to the
// request context when a valid bearer token is presented. It never rejects:
// requests with a missing, malformed or expired token simply proceed without
// a principal, and rejection is left to RequireAuth on protected routes.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenService.Validate(c.Request.Context(), token)
		if err != nil {
			slog.Debug("request carried an unusable token", "error", err)
			c.Next()
			return
		}

		c.Set(string(PrincipalKey), Principal{
			UserID: claims.UserID,
			Email:  claims.Email,
		})
		c.Next()
	}
}

// RequireAuth returns a handler that aborts with 401 when no principal was
// bound by Authenticate.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipalFromContext(c); !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authentication required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetPrincipalFromContext extracts the authenticated principal from the Gin
// context.
func GetPrincipalFromContext(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(string(PrincipalKey))
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// GetUserIDFromContext extracts the authenticated user's ID from the Gin
// context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipalFromContext(c)
	if !ok {
		return uuid.Nil, false
	}
	return principal.UserID, true
}
