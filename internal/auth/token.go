package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"task-manager.com/task-manager/internal/constants"
	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/revocation"
)

// Claims is the decoded payload of a session token: subject id, role,
// jti and expiry.
type Claims struct {
	Role constants.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthority issues and validates signed session tokens, checking
// every validated token against the revocation registry.
type TokenAuthority struct {
	secret   []byte
	ttl      time.Duration
	registry revocation.Registry
}

func NewTokenAuthority(secret string, ttl time.Duration, registry revocation.Registry) *TokenAuthority {
	return &TokenAuthority{
		secret:   []byte(secret),
		ttl:      ttl,
		registry: registry,
	}
}

// Issue produces a signed token for the subject with a fresh jti and
// expiry now + TTL. It has no side effect on the registry.
func (a *TokenAuthority) Issue(subjectID string, role constants.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Validate checks signature and expiry, then the revocation registry.
// All token failures surface as 401-class errors; a registry store
// failure is returned as-is.
func (a *TokenAuthority) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthorized
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrUnauthorized
	}

	revoked, err := a.registry.Contains(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, apperrors.ErrTokenRevoked
	}

	return claims, nil
}

// Revoke marks a jti as invalid for the rest of its lifetime.
// Revoking an already revoked jti is a no-op.
func (a *TokenAuthority) Revoke(ctx context.Context, jti string) error {
	return a.registry.Insert(ctx, jti)
}

func (a *TokenAuthority) TTL() time.Duration {
	return a.ttl
}
