package auth

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes of an authenticated identity
type Identity interface {
	ID() string
	Login() string
	Email() string
	Role() string
}

// IdentityProvider ensures we have a store to verify and retrieve identities
type IdentityProvider interface {
	VerifyIdentity(ctx context.Context, login, password string) (Identity, error)
	FindIdentityByID(ctx context.Context, id string) (Identity, error)
}

// CredentialStore is the read surface the auth core needs from persistence.
// The core never writes through it; uniqueness of logins is the store's
// concern.
type CredentialStore interface {
	GetByLogin(ctx context.Context, login string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// PasswordHasher hashes secrets at registration and compares them at login
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) error
}

// TokenSigner encodes a claims payload into a signed, time-bound token
type TokenSigner interface {
	Sign(claims *TokenClaims, ttl time.Duration) (string, error)
}

// TokenValidator validates tokens and extracts claims without tying callers
// to a specific signing implementation.
type TokenValidator interface {
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenService is the full codec: it signs with the private key and
// verifies with the public one.
type TokenService interface {
	TokenSigner
	TokenValidator
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, login, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// Config holds auth options
type Config interface {
	GetSigningMethod() string
	GetIssuer() string
	GetAudience() []string
	GetAccessTokenTTL() int
	GetRefreshTokenTTL() int
	GetTokenLookup() string
	GetAuthScheme() string
	GetContextKey() string
	GetAccessCookieName() string
	GetRefreshCookieName() string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
