package auth

import (
	"context"
)

// Auther composes credential verification, token minting, and session
// resolution into the login/refresh operations the HTTP layer exposes.
type Auther struct {
	provider IdentityProvider
	minter   *TokenMinter
	resolver *SessionResolver
	logger   Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, minter *TokenMinter, resolver *SessionResolver) *Auther {
	return &Auther{
		provider: provider,
		minter:   minter,
		resolver: resolver,
		logger:   defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// Minter returns the TokenMinter used by this Authenticator
func (s *Auther) Minter() *TokenMinter {
	return s.minter
}

// Resolver returns the SessionResolver used by this Authenticator
func (s *Auther) Resolver() *SessionResolver {
	return s.resolver
}

// Login verifies the credential pair and issues a fresh access+refresh token
// pair. The error carries no hint of whether the login existed.
func (s *Auther) Login(ctx context.Context, login, password string) (*TokenPair, error) {
	identity, err := s.provider.VerifyIdentity(ctx, login, password)
	if err != nil {
		s.logger.Info("login verification failed", "login_present", login != "")
		return nil, err
	}

	access, err := s.minter.IssueAccessToken(identity)
	if err != nil {
		s.logger.Error("login failed to issue access token", "error", err)
		return nil, err
	}

	refresh, err := s.minter.IssueRefreshToken(identity)
	if err != nil {
		s.logger.Error("login failed to issue refresh token", "error", err)
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// Refresh exchanges a refresh token for a new access token. Refresh tokens
// are not rotated or invalidated on use; a presented token stays valid until
// its natural expiry.
func (s *Auther) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	user, err := s.resolver.ResolveRefresh(ctx, refreshToken)
	if err != nil {
		s.logger.Info("refresh resolution failed", "error", err)
		return nil, err
	}

	access, err := s.minter.IssueAccessToken(NewIdentityFromUser(user))
	if err != nil {
		s.logger.Error("refresh failed to issue access token", "error", err)
		return nil, err
	}

	return &TokenPair{
		AccessToken: access,
		TokenType:   "bearer",
	}, nil
}

var _ Authenticator = (*Auther)(nil)
