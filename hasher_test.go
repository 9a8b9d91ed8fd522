package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/skillquest/go-auth"
)

func TestBcryptHasher(t *testing.T) {
	// cost 4 keeps the round trip fast; production uses DefaultBcryptCost
	hasher := auth.BcryptHasher{Cost: 4}

	t.Run("round trip", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "secret123", hash)

		assert.NoError(t, hasher.Compare("secret123", hash))
	})

	t.Run("salted hashes differ", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)
		second, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("mismatch", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)

		err = hasher.Compare("wrong-password", hash)
		assert.ErrorIs(t, err, auth.ErrMismatchedLoginPassword)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.ErrorIs(t, err, auth.ErrNoEmptyString)
	})
}

func TestSHA256Hasher(t *testing.T) {
	hasher := auth.SHA256Hasher{}

	t.Run("deterministic known digest", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)
		assert.Equal(t, "fcf730b6d95236ecd3c9fc2d92d7b6b2bb061514961aec041d6c7a7192f592e4", hash)

		again, err := hasher.Hash("secret123")
		require.NoError(t, err)
		assert.Equal(t, hash, again)
	})

	t.Run("compare", func(t *testing.T) {
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.NoError(t, hasher.Compare("secret123", hash))
		assert.ErrorIs(t, hasher.Compare("wrong", hash), auth.ErrMismatchedLoginPassword)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.ErrorIs(t, err, auth.ErrNoEmptyString)
	})
}

func TestHashPasswordHelpers(t *testing.T) {
	hash := auth.RandomPasswordHash()
	assert.NotEmpty(t, hash)
}
