package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeTokenService accepts exactly one token string.
type fakeTokenService struct {
	validToken string
	claims     *adapter.TokenClaims
}

func (s *fakeTokenService) Issue(_ context.Context, _ uuid.UUID, _ string) (string, error) {
	return s.validToken, nil
}

func (s *fakeTokenService) Validate(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token == s.validToken {
		return s.claims, nil
	}
	return nil, domainerror.ErrInvalidToken
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, uuid.UUID, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	tokenService := &fakeTokenService{
		validToken: "good-token",
		claims: &adapter.TokenClaims{
			UserID:    userID,
			Email:     "user@example.com",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	m := NewAuthMiddleware(tokenService)

	router := gin.New()
	router.Use(m.Authenticate())
	router.GET("/open", func(c *gin.Context) {
		if principal, ok := GetPrincipalFromContext(c); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID.String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": ""})
	})
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})

	return router, userID, "good-token"
}

func TestAuthenticate_BindsPrincipalForValidToken(t *testing.T) {
	router, userID, token := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !containsString(body, userID.String()) {
		t.Errorf("expected the principal's user ID in %s", body)
	}
}

func TestAuthenticate_ProceedsWithoutTokenOnOpenRoutes(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"invalid token", "Bearer garbage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/open", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("expected open route to answer 200, got %d", rec.Code)
			}
			if body := rec.Body.String(); !containsString(body, `"user_id":""`) {
				t.Errorf("expected no principal, got %s", body)
			}
		})
	}
}

func TestRequireAuth_RejectsUnauthenticatedRequests(t *testing.T) {
	router, _, _ := newAuthTestRouter(t)

	for _, header := range []string{"", "Bearer garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for header %q, got %d", header, rec.Code)
		}
	}
}

func TestRequireAuth_AllowsAuthenticatedRequests(t *testing.T) {
	router, userID, token := newAuthTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !containsString(body, userID.String()) {
		t.Errorf("expected the principal's user ID in %s", body)
	}
}

func containsString(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
