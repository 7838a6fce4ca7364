package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// Claims is the payload baked into an access token. The role claim is
// informational; authorization reads the stored role fresh on every request.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256-signed access tokens. The signing
// key is process-wide configuration; rotating it invalidates every token
// issued before the rotation.
type TokenCodec struct {
	key        []byte
	defaultTTL time.Duration
}

// NewTokenCodec returns a codec signing with secret. defaultTTL applies
// when Issue is called with a non-positive ttl.
func NewTokenCodec(secret string, defaultTTL time.Duration) *TokenCodec {
	if defaultTTL <= 0 {
		defaultTTL = time.Hour
	}
	return &TokenCodec{key: []byte(secret), defaultTTL: defaultTTL}
}

// Issue mints a token for subject with the given role, expiring ttl from
// now (the codec default when ttl <= 0). Tokens for identical subject,
// role, expiry, and key are byte-identical.
func (c *TokenCodec) Issue(subject string, role domain.Role, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.key)
}

// Decode verifies the signature and expiry and returns the claims.
// Failures map to the domain taxonomy: domain.ErrTokenExpired,
// domain.ErrTokenSignatureInvalid, or domain.ErrTokenMalformed. Expiry is
// exclusive: a token inspected at its exact expiry instant is expired.
func (c *TokenCodec) Decode(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}
	return claims, nil
}
