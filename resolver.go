package auth

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
)

// SessionResolver turns a presented token into a concrete, authenticated
// credential record. Resolution is a pure read path: decode, type-check,
// point lookup. Each outcome is terminal; nothing is retried.
type SessionResolver struct {
	store  CredentialStore
	tokens TokenValidator
	logger Logger
}

// NewSessionResolver creates a resolver over the given store and validator.
func NewSessionResolver(store CredentialStore, tokens TokenValidator) *SessionResolver {
	return &SessionResolver{
		store:  store,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (r *SessionResolver) WithLogger(l Logger) *SessionResolver {
	r.logger = l
	return r
}

// Validator exposes the underlying token validator so middleware can share
// the same decode path.
func (r *SessionResolver) Validator() TokenValidator {
	return r.tokens
}

// ResolveAccess resolves a token presented on an ordinary endpoint.
func (r *SessionResolver) ResolveAccess(ctx context.Context, raw string) (*User, error) {
	return r.Resolve(ctx, raw, TokenKindAccess)
}

// ResolveRefresh resolves a token presented on the refresh endpoint.
func (r *SessionResolver) ResolveRefresh(ctx context.Context, raw string) (*User, error) {
	return r.Resolve(ctx, raw, TokenKindRefresh)
}

// Resolve runs the full chain: missing token, then decode, then the declared
// type against the expected kind, then the subject lookup.
func (r *SessionResolver) Resolve(ctx context.Context, raw string, kind TokenKind) (*User, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrUnableToFindSession
	}

	claims, err := r.tokens.Validate(raw)
	if err != nil {
		r.logger.Debug("session resolve token validation failed", "error", err)
		return nil, err
	}

	if err := claims.RequireKind(kind); err != nil {
		return nil, err
	}

	return r.ResolveClaims(ctx, claims)
}

// ResolveClaims looks up the credential record behind already-verified
// claims. A subject that does not parse or does not resolve surfaces as
// ErrUnknownSubject, indistinguishable from an expired token at the HTTP
// level.
func (r *SessionResolver) ResolveClaims(ctx context.Context, claims *TokenClaims) (*User, error) {
	return r.ResolveSubject(ctx, claims.Subject())
}

// ResolveSubject looks up the credential record behind a token subject.
func (r *SessionResolver) ResolveSubject(ctx context.Context, subject string) (*User, error) {
	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, ErrUnknownSubject
	}

	user, err := r.store.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrUnknownSubject
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to resolve token subject")
	}

	return user, nil
}
