// Package auth issues and verifies the session tokens backing the single
// operator login. Tokens are stateless: validity is determined entirely by
// the HMAC signature and the embedded expiry, with no server-side session
// state.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrKeyNotConfigured    = errors.New("token signing key is not configured")
	ErrExpiryNotConfigured = errors.New("token expiry is not configured")
	ErrInvalidToken        = errors.New("invalid token")
)

// IssuerConfig carries the externally supplied token settings.
type IssuerConfig struct {
	Key           string
	Issuer        string
	Audience      string
	ExpireMinutes int
}

// Issuer mints HS256-signed tokens carrying the authenticated username as
// their sole subject claim, and verifies them on protected requests.
type Issuer struct {
	key      []byte
	issuer   string
	audience string
	expiry   time.Duration
	now      func() time.Time
}

// NewIssuer fails rather than fall back to a default key or expiry: a
// service signing tokens with an unconfigured key must not start.
func NewIssuer(cfg IssuerConfig) (*Issuer, error) {
	if cfg.Key == "" {
		return nil, ErrKeyNotConfigured
	}
	if cfg.ExpireMinutes <= 0 {
		return nil, ErrExpiryNotConfigured
	}

	return &Issuer{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		expiry:   time.Duration(cfg.ExpireMinutes) * time.Minute,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Generate produces a signed token for username, expiring at issue time
// plus the configured duration.
func (i *Issuer) Generate(username string) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    i.issuer,
		Audience:  jwt.ClaimStrings{i.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

// Verify checks signature, algorithm, issuer, audience and expiry, and
// returns the subject username on success.
func (i *Issuer) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return i.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
