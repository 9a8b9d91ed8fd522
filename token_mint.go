package auth

import (
	"time"

	"github.com/goliatone/go-errors"
)

// TokenOptions controls how MintToken issues a token.
type TokenOptions struct {
	// TTL overrides the configured lifetime. Zero uses the kind's default:
	// the minutes setting for access tokens, the days setting for refresh.
	TTL time.Duration
}

// TokenPair is the response shape of the login and refresh endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// TokenMinter builds access and refresh tokens with distinct typed claims
// and distinct lifetimes. It keeps no state: issued tokens are not recorded
// and cannot be revoked before expiry.
type TokenMinter struct {
	signer     TokenSigner
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenMinter creates a minter with lifetimes from cfg.
func NewTokenMinter(signer TokenSigner, cfg Config) *TokenMinter {
	return &TokenMinter{
		signer:     signer,
		accessTTL:  time.Duration(cfg.GetAccessTokenTTL()) * time.Minute,
		refreshTTL: time.Duration(cfg.GetRefreshTokenTTL()) * 24 * time.Hour,
	}
}

// IssueAccessToken issues a short-lived token with claims
// {sub, login, type: "access"}.
func (m *TokenMinter) IssueAccessToken(identity Identity) (string, error) {
	return m.MintToken(identity, TokenKindAccess, TokenOptions{})
}

// IssueRefreshToken issues a long-lived token with claims
// {sub, login, type: "refresh"}.
func (m *TokenMinter) IssueRefreshToken(identity Identity) (string, error) {
	return m.MintToken(identity, TokenKindRefresh, TokenOptions{})
}

// MintToken issues a token of the given kind. An explicit TTL in opts takes
// precedence over the configured lifetime.
func (m *TokenMinter) MintToken(identity Identity, kind TokenKind, opts TokenOptions) (string, error) {
	if identity == nil {
		return "", errors.New("identity is required", errors.CategoryBadInput)
	}

	ttl := opts.TTL
	if ttl == 0 {
		switch kind {
		case TokenKindRefresh:
			ttl = m.refreshTTL
		default:
			ttl = m.accessTTL
		}
	}

	claims := &TokenClaims{
		Login: identity.Login(),
		Kind:  kind,
	}
	claims.RegisteredClaims.Subject = identity.ID()

	return m.signer.Sign(claims, ttl)
}
