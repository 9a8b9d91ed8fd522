package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind discriminates what a token may be used for.
type TokenKind string

const (
	// TokenKindAccess is the short-lived token authorizing ordinary requests
	TokenKindAccess TokenKind = "access"
	// TokenKindRefresh is the long-lived token whose sole purpose is to
	// obtain a new access token
	TokenKindRefresh TokenKind = "refresh"
)

// TokenClaims is the fixed-shape claims payload embedded in every signed
// token: {sub, login, type, iat, exp} plus the registered jti/iss/aud set by
// the codec. Claims are built fresh at issuance and never mutated.
type TokenClaims struct {
	jwt.RegisteredClaims
	Login string    `json:"login,omitempty"`
	Kind  TokenKind `json:"type,omitempty"`
}

// Subject returns the subject claim: the credential record's id as a string.
func (c *TokenClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID is an alias for Subject.
func (c *TokenClaims) UserID() string {
	return c.Subject()
}

// TokenKind returns the declared token kind as a plain string.
func (c *TokenClaims) TokenKind() string {
	return string(c.Kind)
}

// LoginName returns the denormalized login captured at issuance. It may go
// stale if the user renames; acceptable because tokens are short-lived.
func (c *TokenClaims) LoginName() string {
	return c.Login
}

// RequireKind verifies the declared type matches the expected use.
func (c *TokenClaims) RequireKind(kind TokenKind) error {
	if c.Kind == kind {
		return nil
	}
	return WrongTokenKindError(c.Kind, kind)
}

// Expires returns the expiration time
func (c *TokenClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *TokenClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}
