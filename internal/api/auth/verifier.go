// Package auth verifies bearer tokens and carries the caller identity
// through the request lifecycle.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	Subject string `json:"subject"`
	Email   string `json:"email"`
}

// TokenVerifier validates a raw bearer token and returns the caller
// identity. Implementations must be safe for concurrent use.
type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// JWTVerifier verifies HS256 tokens signed with a shared secret.
type JWTVerifier struct {
	secret []byte
	issuer string
}

// NewJWTVerifier builds a verifier over the configured signing secret.
func NewJWTVerifier(secret, issuer string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret), issuer: issuer}
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify parses and validates the token. Any failure is reported as an
// invalid-token error; the HTTP layer decides the status code.
func (v *JWTVerifier) Verify(raw string) (*Identity, error) {
	claims := &tokenClaims{}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, parserOpts...)
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	if claims.Email == "" {
		return nil, common.ErrTokenInvalid
	}

	return &Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
	}, nil
}

// IssueToken signs an HS256 token for the given identity. Used by tests
// and by tooling that needs a local token source.
func (v *JWTVerifier) IssueToken(identity Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "failed to sign token", common.StatusInternalServerError, err)
	}
	return signed, nil
}
