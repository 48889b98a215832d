package pkg

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTokenRoundTrip(t *testing.T) {
	token, err := MintIdentityToken("alice")
	require.NoError(t, err)

	principal, err := ParsePrincipal(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal)
}

func TestParsePrincipalRejectsBadToken(t *testing.T) {
	_, err := ParsePrincipal("not-a-token")
	assert.Error(t, err)
}

func TestParsePrincipalRejectsExpired(t *testing.T) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		Principal: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})
	signed, err := tok.SignedString(IdentitySecret)
	require.NoError(t, err)

	_, err = ParsePrincipal(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParsePrincipalRejectsEmptyPrincipal(t *testing.T) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := tok.SignedString(IdentitySecret)
	require.NoError(t, err)

	_, err = ParsePrincipal(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
