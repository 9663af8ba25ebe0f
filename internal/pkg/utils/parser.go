package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims is the readable part of a bearer token. The signature is not verified,
// the backend does that.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
	Claims    jwt.MapClaims
}

func ParseJWTUnverified(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, err
	}

	if len(claims) == 0 {
		return nil, errors.New("token carries no claims")
	}

	parsed := &TokenClaims{Claims: claims}
	if subject, ok := claims["sub"].(string); ok {
		parsed.Subject = subject
	}
	if role, ok := claims["role"].(string); ok {
		parsed.Role = role
	}
	if exp, ok := claims["exp"].(float64); ok {
		parsed.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return parsed, nil
}

func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
