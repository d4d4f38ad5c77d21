package auth_test

import (
	"testing"
	"time"

	"github.com/creatorbasehq/creatorbase/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test_secret", time.Hour)
	userID := uuid.New()

	signed, err := tokens.Generate(userID, "maria@example.com")
	require.NoError(t, err)

	claims, err := tokens.Validate(signed)
	require.NoError(t, err)

	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenRejection(t *testing.T) {
	tokens := auth.NewTokenManager("test_secret", time.Hour)
	userID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		signed, err := tokens.Generate(userID, "maria@example.com")
		require.NoError(t, err)

		other := auth.NewTokenManager("other_secret", time.Hour)
		_, err = other.Validate(signed)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := auth.NewTokenManager("test_secret", -time.Minute)
		signed, err := shortLived.Generate(userID, "maria@example.com")
		require.NoError(t, err)

		_, err = tokens.Validate(signed)
		assert.Error(t, err)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := foreign.SignedString([]byte("test_secret"))
		require.NoError(t, err)

		_, err = tokens.Validate(signed)
		assert.Error(t, err)
	})
}
