package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claim shapes match what the platform's auth service signs. The client
// never verifies signatures (it has no key); it only reads claims.

type AccessTokenClaims struct {
	jwt.StandardClaims

	IsAccessToken bool   `json:"is_access_tok"`
	UserID        string `json:"user_id"`
}

type RefreshTokenClaims struct {
	jwt.StandardClaims

	RefreshTokenValue string `json:"refresh_tok_val"`
	UserID            string `json:"user_id"`
}

// expirySkew renews tokens slightly early so a request does not leave
// with a token that expires in flight.
const expirySkew = 30 * time.Second

// InspectAccessToken decodes the claims of an access token without
// verifying its signature.
func InspectAccessToken(token string) (*AccessTokenClaims, error) {
	var claims AccessTokenClaims
	parser := jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, err
	}
	if !claims.IsAccessToken {
		return nil, errors.New("auth: not an access token")
	}
	return &claims, nil
}

func tokenExpired(token string) bool {
	claims, err := InspectAccessToken(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == 0 {
		return false
	}
	return time.Now().Add(expirySkew).Unix() >= claims.ExpiresAt
}
