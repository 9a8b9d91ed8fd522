package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	auth "github.com/skillquest/go-auth"
)

func aliceRecord(t *testing.T) *auth.User {
	t.Helper()
	hash, err := auth.BcryptHasher{Cost: 4}.Hash("secret123")
	require.NoError(t, err)
	return &auth.User{
		ID:           42,
		Login:        "alice",
		Nickname:     "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         auth.RoleUser,
	}
}

func TestUserProvider_VerifyIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		store := &MockCredentialStore{}
		store.On("GetByLogin", mock.Anything, "alice").Return(aliceRecord(t), nil)

		provider := auth.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "42", identity.ID())
		assert.Equal(t, "alice", identity.Login())
		assert.Equal(t, "alice@example.com", identity.Email())
	})

	t.Run("unknown login and wrong password are indistinguishable", func(t *testing.T) {
		store := &MockCredentialStore{}
		store.On("GetByLogin", mock.Anything, "alice").Return(aliceRecord(t), nil)
		store.On("GetByLogin", mock.Anything, "nobody").Return(nil, auth.ErrIdentityNotFound)

		provider := auth.NewUserProvider(store)

		_, errUnknownLogin := provider.VerifyIdentity(ctx, "nobody", "secret123")
		_, errWrongPassword := provider.VerifyIdentity(ctx, "alice", "wrong")

		require.Error(t, errUnknownLogin)
		require.Error(t, errWrongPassword)
		assert.ErrorIs(t, errUnknownLogin, auth.ErrMismatchedLoginPassword)
		assert.ErrorIs(t, errWrongPassword, auth.ErrMismatchedLoginPassword)
		assert.Equal(t, errUnknownLogin.Error(), errWrongPassword.Error())
	})

	t.Run("legacy sha256 store", func(t *testing.T) {
		digest, err := auth.SHA256Hasher{}.Hash("secret123")
		require.NoError(t, err)

		legacy := aliceRecord(t)
		legacy.PasswordHash = digest

		store := &MockCredentialStore{}
		store.On("GetByLogin", mock.Anything, "alice").Return(legacy, nil)

		provider := auth.NewUserProvider(store).WithHasher(auth.SHA256Hasher{})

		identity, err := provider.VerifyIdentity(ctx, "alice", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Login())
	})
}

func TestUserProvider_FindIdentityByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := &MockCredentialStore{}
		store.On("GetByID", mock.Anything, int64(42)).Return(aliceRecord(t), nil)

		provider := auth.NewUserProvider(store)

		identity, err := provider.FindIdentityByID(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Login())
	})

	t.Run("non numeric id", func(t *testing.T) {
		provider := auth.NewUserProvider(&MockCredentialStore{})

		_, err := provider.FindIdentityByID(ctx, "abc")
		assert.ErrorIs(t, err, auth.ErrUnknownSubject)
	})

	t.Run("missing record", func(t *testing.T) {
		store := &MockCredentialStore{}
		store.On("GetByID", mock.Anything, int64(7)).Return(nil, auth.ErrIdentityNotFound)

		provider := auth.NewUserProvider(store)

		_, err := provider.FindIdentityByID(ctx, "7")
		assert.ErrorIs(t, err, auth.ErrUnknownSubject)
	})
}
