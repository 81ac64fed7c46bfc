package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "kontacts"

var ErrNoSecret = errors.New("no auth secret configured")

// TokenClaims are the claims of a kontacts access token
type TokenClaims struct {
	jwt.StandardClaims
}

// NewTokenClaims returns claims for 'subject' that expire after 'ttl'
func NewTokenClaims(subject string, ttl time.Duration) TokenClaims {
	now := time.Now()
	return TokenClaims{jwt.StandardClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}}
}

func EncodeJWT(claims TokenClaims, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func DecodeJWT(tokenString string, secret string) (*TokenClaims, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// only accept the alg tokens are signed with
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid jwt: %v", err)
	}

	tokenClaims, ok := token.Claims.(*TokenClaims)
	if !ok {
		return nil, fmt.Errorf("unable to assert token.Claims to TokenClaims")
	}

	if tokenClaims.Issuer != issuer {
		return nil, fmt.Errorf("invalid jwt: unexpected issuer %q", tokenClaims.Issuer)
	}

	return tokenClaims, nil
}
