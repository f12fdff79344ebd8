package auth

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func newLoginFixture(t *testing.T) *LoginUserUseCase {
	t.Helper()

	userRepo := newFakeUserRepository()
	register := NewRegisterUserUseCase(userRepo, newFakeCategoryRepository(), fakePasswordService{}, &fakeTokenService{})
	if _, err := register.Execute(context.Background(), RegisterUserInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "SecurePass123!",
	}); err != nil {
		t.Fatalf("register fixture user: %v", err)
	}

	return NewLoginUserUseCase(userRepo, fakePasswordService{}, &fakeTokenService{})
}

func TestLoginUser_ValidCredentials(t *testing.T) {
	uc := newLoginFixture(t)

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "alice@example.com",
		Password: "SecurePass123!",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Token == "" {
		t.Error("expected a token to be issued")
	}
	if output.User.Email != "alice@example.com" {
		t.Errorf("user email = %q, want %q", output.User.Email, "alice@example.com")
	}
}

func TestLoginUser_FailuresAreIndistinguishable(t *testing.T) {
	uc := newLoginFixture(t)

	_, unknownEmailErr := uc.Execute(context.Background(), LoginUserInput{
		Email:    "nobody@example.com",
		Password: "SecurePass123!",
	})
	_, wrongPasswordErr := uc.Execute(context.Background(), LoginUserInput{
		Email:    "alice@example.com",
		Password: "WrongPass123!",
	})

	for _, err := range []error{unknownEmailErr, wrongPasswordErr} {
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
	}

	// The caller must not be able to tell which check failed.
	if unknownEmailErr.Error() != wrongPasswordErr.Error() {
		t.Errorf("unknown email error %q differs from wrong password error %q",
			unknownEmailErr, wrongPasswordErr)
	}
}
