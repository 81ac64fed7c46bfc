package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret"

func TestEncodeAndDecodeJWT(t *testing.T) {
	token, err := EncodeJWT(NewTokenClaims("kontacts-cli", time.Hour), testSecret)
	require.Nil(t, err)

	claims, err := DecodeJWT(token, testSecret)
	require.Nil(t, err)
	assert.Equal(t, "kontacts-cli", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestEncodeJWTWithoutSecret(t *testing.T) {
	_, err := EncodeJWT(NewTokenClaims("kontacts-cli", time.Hour), "")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestDecodeJWTInvalid(t *testing.T) {
	validToken, err := EncodeJWT(NewTokenClaims("kontacts-cli", time.Hour), testSecret)
	require.Nil(t, err)

	expiredToken, err := EncodeJWT(NewTokenClaims("kontacts-cli", -time.Minute), testSecret)
	require.Nil(t, err)

	foreignClaims := NewTokenClaims("kontacts-cli", time.Hour)
	foreignClaims.Issuer = "someone-else"
	foreignToken, err := EncodeJWT(foreignClaims, testSecret)
	require.Nil(t, err)

	unsignedToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, NewTokenClaims("kontacts-cli", time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.Nil(t, err)

	cases := []struct {
		description string
		token       string
		secret      string
	}{
		{"Should reject a token signed with another secret", validToken, "another-secret"},
		{"Should reject an expired token", expiredToken, testSecret},
		{"Should reject a token from another issuer", foreignToken, testSecret},
		{"Should reject an unsigned token", unsignedToken, testSecret},
		{"Should reject garbage", "not-a-token", testSecret},
		{"Should reject any token without a secret", validToken, ""},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			_, err := DecodeJWT(c.token, c.secret)
			assert.NotNil(t, err)
		})
	}
}
