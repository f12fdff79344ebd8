package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", nil, time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(context.Background(), userID, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %s", claims.Email)
	}
	if remaining := time.Until(claims.ExpiresAt); remaining <= 0 || remaining > time.Hour {
		t.Errorf("expected expiry within the next hour, got %s", claims.ExpiresAt)
	}
}

func TestTokenService_DefaultDuration(t *testing.T) {
	svc := NewTokenService("test-secret", nil, 0)

	token, err := svc.Issue(context.Background(), uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := svc.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining := time.Until(claims.ExpiresAt)
	if remaining < DefaultTokenDuration-time.Minute || remaining > DefaultTokenDuration {
		t.Errorf("expected roughly the default duration, got %s remaining", remaining)
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", nil, -time.Minute)

	token, err := svc.Issue(context.Background(), uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Validate(context.Background(), token)
	if !errors.Is(err, domainerror.ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	svc := NewTokenService("test-secret", nil, time.Hour)

	token, err := svc.Issue(context.Background(), uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Validate(context.Background(), tampered); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", nil, time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer := NewTokenService("secret-a", nil, time.Hour)
	validator := NewTokenService("secret-b", nil, time.Hour)

	token, err := issuer.Issue(context.Background(), uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := validator.Validate(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_AcceptsRotatedSecret(t *testing.T) {
	oldSvc := NewTokenService("old-secret", nil, time.Hour)
	newSvc := NewTokenService("new-secret", []string{"old-secret"}, time.Hour)

	userID := uuid.New()
	oldToken, err := oldSvc.Issue(context.Background(), userID, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := newSvc.Validate(context.Background(), oldToken)
	if err != nil {
		t.Fatalf("expected token signed with the previous secret to validate, got %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
	}

	// New tokens must be signed with the newest secret.
	newToken, err := newSvc.Issue(context.Background(), userID, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := oldSvc.Validate(context.Background(), newToken); !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected the old service to reject a newly signed token, got %v", err)
	}
}
