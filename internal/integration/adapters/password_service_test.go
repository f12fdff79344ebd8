package adapters

import (
	"errors"
	"strings"
	"testing"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}

	if err := svc.VerifyPassword(hash, "correct horse battery"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}
	if err := svc.VerifyPassword(hash, "wrong password"); err == nil {
		t.Error("expected mismatching password to fail verification")
	}
}

func TestPasswordService_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.HashPassword("same password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.HashPassword("same password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	svc := NewPasswordService()

	if err := svc.ValidatePasswordStrength("short"); !errors.Is(err, domainerror.ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
	if err := svc.ValidatePasswordStrength("long enough password"); err != nil {
		t.Errorf("expected valid password to pass, got %v", err)
	}
}
