// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// DefaultTokenDuration is how long an issued token stays valid.
	DefaultTokenDuration = 7 * 24 * time.Hour

	tokenIssuer = "expense-tracker"
)

// CustomClaims represents the custom claims carried by issued tokens.
type CustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with HS256
// signed tokens. New tokens are always signed with the newest secret;
// validation also accepts tokens signed with any of the previous secrets so
// the signing key can be rotated without cutting off live sessions.
type tokenService struct {
	secrets  [][]byte
	duration time.Duration
}

// NewTokenService creates a new token service instance. The first secret is
// the signing key; previousSecrets are accepted for validation only.
func NewTokenService(secret string, previousSecrets []string, duration time.Duration) adapter.TokenService {
	if duration <= 0 {
		duration = DefaultTokenDuration
	}

	secrets := [][]byte{[]byte(secret)}
	for _, s := range previousSecrets {
		if s != "" {
			secrets = append(secrets, []byte(s))
		}
	}

	return &tokenService{
		secrets:  secrets,
		duration: duration,
	}
}

// Issue produces a signed token for the given principal.
func (s *tokenService) Issue(_ context.Context, userID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secrets[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies a token's signature and expiry and returns its claims.
func (s *tokenService) Validate(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses a token, trying each known secret in order.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	var lastErr error
	for _, secret := range s.secrets {
		token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			lastErr = err
			// A signature mismatch may just mean the token was signed
			// with an older secret; an expired or malformed token will
			// fail the same way against every secret.
			if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
				continue
			}
			return nil, err
		}

		claims, ok := token.Claims.(*CustomClaims)
		if !ok || !token.Valid {
			return nil, errors.New("invalid token claims")
		}
		return claims, nil
	}
	return nil, lastErr
}
