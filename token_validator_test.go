package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/skillquest/go-auth"
)

func TestMultiTokenValidator_KeyRotation(t *testing.T) {
	cfg := auth.SimpleConfig{}

	oldKeys := testSigningKeys(t)
	newKeys := testSigningKeys(t)

	oldService := auth.NewTokenService(oldKeys, cfg, nil)
	newService := auth.NewTokenService(newKeys, cfg, nil)

	multi := auth.NewMultiTokenValidator(newService, oldService)

	identity := newMockIdentity("9", "alice")

	oldToken, err := auth.NewTokenMinter(oldService, cfg).IssueAccessToken(identity)
	require.NoError(t, err)
	newToken, err := auth.NewTokenMinter(newService, cfg).IssueAccessToken(identity)
	require.NoError(t, err)

	t.Run("accepts tokens from either key", func(t *testing.T) {
		for _, token := range []string{oldToken, newToken} {
			claims, err := multi.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, "9", claims.Subject())
		}
	})

	t.Run("rejects tokens from an unknown key", func(t *testing.T) {
		strangerService := testTokenService(t, cfg)
		strangerToken, err := auth.NewTokenMinter(strangerService, cfg).IssueAccessToken(identity)
		require.NoError(t, err)

		_, err = multi.Validate(strangerToken)
		require.Error(t, err)
		assert.True(t, auth.IsMalformedError(err))
	})

	t.Run("expired is final, not try-next", func(t *testing.T) {
		claims := &auth.TokenClaims{Login: "alice", Kind: auth.TokenKindAccess}
		claims.RegisteredClaims.Subject = "9"

		expired, err := newService.Sign(claims, time.Millisecond)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)

		_, err = multi.Validate(expired)
		require.Error(t, err)
		assert.True(t, auth.IsTokenExpiredError(err))
	})
}

func TestMultiTokenValidator_Empty(t *testing.T) {
	multi := auth.NewMultiTokenValidator(nil, nil)
	_, err := multi.Validate("anything")
	require.Error(t, err)
	assert.True(t, auth.IsMalformedError(err))
}

func TestKindValidator(t *testing.T) {
	cfg := auth.SimpleConfig{}
	service := testTokenService(t, cfg)
	minter := auth.NewTokenMinter(service, cfg)
	identity := newMockIdentity("3", "bob")

	accessOnly := auth.KindValidator(service, auth.TokenKindAccess)

	t.Run("accepts matching kind", func(t *testing.T) {
		token, err := minter.IssueAccessToken(identity)
		require.NoError(t, err)

		claims, err := accessOnly.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "access", claims.TokenKind())
	})

	t.Run("rejects other kind with both names in message", func(t *testing.T) {
		token, err := minter.IssueRefreshToken(identity)
		require.NoError(t, err)

		_, err = accessOnly.Validate(token)
		require.Error(t, err)
		assert.True(t, auth.IsWrongTokenKindError(err))
		assert.Contains(t, err.Error(), "Invalid token type 'refresh' expected 'access'")
	})
}
