// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	AccessToken string
	TokenID     string
	ExpiresAt   time.Time
}

// TokenClaims represents the claims contained in a bearer token.
type TokenClaims struct {
	TokenID   string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// IssueToken signs a new bearer token for the user.
	IssueToken(ctx context.Context, userID uuid.UUID, email string) (*IssuedToken, error)

	// ValidateToken verifies signature, expiry and revocation and returns the claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeToken invalidates the token identified by claims until it would have expired.
	RevokeToken(ctx context.Context, claims *TokenClaims) error
}

// TokenRevocationStore records revoked token IDs until their expiry.
type TokenRevocationStore interface {
	// Revoke marks tokenID as revoked until expiresAt.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether tokenID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
