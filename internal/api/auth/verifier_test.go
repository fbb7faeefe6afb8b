package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

func TestJWTVerifier_RoundTrip(t *testing.T) {
	v := NewJWTVerifier("test-secret", "trustlife")

	token, err := v.IssueToken(Identity{Subject: "uid-1", Email: "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	identity, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "uid-1", identity.Subject)
}

func TestJWTVerifier_WrongSecret(t *testing.T) {
	issuer := NewJWTVerifier("secret-a", "trustlife")
	verifier := NewJWTVerifier("secret-b", "trustlife")

	token, err := issuer.IssueToken(Identity{Email: "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestJWTVerifier_Expired(t *testing.T) {
	v := NewJWTVerifier("test-secret", "trustlife")

	token, err := v.IssueToken(Identity{Email: "alice@example.com"}, -time.Minute)
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestJWTVerifier_WrongIssuer(t *testing.T) {
	issuer := NewJWTVerifier("test-secret", "someone-else")
	verifier := NewJWTVerifier("test-secret", "trustlife")

	token, err := issuer.IssueToken(Identity{Email: "alice@example.com"}, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestJWTVerifier_MissingEmail(t *testing.T) {
	v := NewJWTVerifier("test-secret", "trustlife")

	token, err := v.IssueToken(Identity{Subject: "uid-1"}, time.Hour)
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestJWTVerifier_Garbage(t *testing.T) {
	v := NewJWTVerifier("test-secret", "trustlife")
	_, err := v.Verify("not-a-token")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}
