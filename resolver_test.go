package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auth "github.com/skillquest/go-auth"
)

type resolverFixture struct {
	store    *MockCredentialStore
	service  *auth.TokenServiceImpl
	minter   *auth.TokenMinter
	resolver *auth.SessionResolver
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()
	cfg := auth.SimpleConfig{}
	store := &MockCredentialStore{}
	service := testTokenService(t, cfg)

	return &resolverFixture{
		store:    store,
		service:  service,
		minter:   auth.NewTokenMinter(service, cfg),
		resolver: auth.NewSessionResolver(store, service),
	}
}

func TestSessionResolver_ResolveAccess(t *testing.T) {
	fix := newResolverFixture(t)
	alice := &auth.User{ID: 42, Login: "alice", Nickname: "Alice"}

	fix.store.On("GetByID", mock.Anything, int64(42)).Return(alice, nil)

	token, err := fix.minter.IssueAccessToken(newMockIdentity("42", "alice"))
	require.NoError(t, err)

	user, err := fix.resolver.ResolveAccess(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "alice", user.Login)

	fix.store.AssertExpectations(t)
}

func TestSessionResolver_MissingToken(t *testing.T) {
	fix := newResolverFixture(t)

	for _, raw := range []string{"", "   "} {
		_, err := fix.resolver.ResolveAccess(context.Background(), raw)
		assert.ErrorIs(t, err, auth.ErrUnableToFindSession)
	}
}

func TestSessionResolver_ExpiredToken(t *testing.T) {
	fix := newResolverFixture(t)

	claims := &auth.TokenClaims{Login: "alice", Kind: auth.TokenKindAccess}
	claims.RegisteredClaims.Subject = "42"

	token, err := fix.service.Sign(claims, time.Millisecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	_, err = fix.resolver.ResolveAccess(context.Background(), token)
	require.Error(t, err)
	assert.True(t, auth.IsTokenExpiredError(err))
}

func TestSessionResolver_WrongTokenKind(t *testing.T) {
	fix := newResolverFixture(t)
	identity := newMockIdentity("42", "alice")

	t.Run("refresh token on access endpoint", func(t *testing.T) {
		token, err := fix.minter.IssueRefreshToken(identity)
		require.NoError(t, err)

		_, err = fix.resolver.ResolveAccess(context.Background(), token)
		require.Error(t, err)
		assert.True(t, auth.IsWrongTokenKindError(err))
		assert.Contains(t, err.Error(), "Invalid token type 'refresh' expected 'access'")
	})

	t.Run("access token on refresh endpoint", func(t *testing.T) {
		token, err := fix.minter.IssueAccessToken(identity)
		require.NoError(t, err)

		_, err = fix.resolver.ResolveRefresh(context.Background(), token)
		require.Error(t, err)
		assert.True(t, auth.IsWrongTokenKindError(err))
		assert.Contains(t, err.Error(), "Invalid token type 'access' expected 'refresh'")
	})

	// the store is never consulted for a mistyped token
	fix.store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSessionResolver_UnknownSubject(t *testing.T) {
	fix := newResolverFixture(t)

	fix.store.On("GetByID", mock.Anything, int64(42)).Return(nil, auth.ErrIdentityNotFound)

	token, err := fix.minter.IssueAccessToken(newMockIdentity("42", "alice"))
	require.NoError(t, err)

	_, err = fix.resolver.ResolveAccess(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrUnknownSubject)
}

func TestSessionResolver_NonNumericSubject(t *testing.T) {
	fix := newResolverFixture(t)

	token, err := fix.minter.IssueAccessToken(newMockIdentity("not-a-number", "alice"))
	require.NoError(t, err)

	_, err = fix.resolver.ResolveAccess(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrUnknownSubject)
}
