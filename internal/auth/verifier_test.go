package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	v := NewVerifier(testSecret, "tetsukizone")
	tok := signToken(t, testSecret, jwt.MapClaims{
		"userName": "alice",
		"userRole": "user",
		"type":     "access",
		"iss":      "tetsukizone",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, "user", claims.UserRole)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "tetsukizone", claims.Issuer)
	assert.False(t, claims.Expires.IsZero())
}

func TestVerify_EmptyToken(t *testing.T) {
	v := NewVerifier(testSecret, "")
	_, err := v.Verify("   ")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestVerify_Malformed(t *testing.T) {
	v := NewVerifier(testSecret, "")
	_, err := v.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerify_Expired(t *testing.T) {
	v := NewVerifier(testSecret, "")
	tok := signToken(t, testSecret, jwt.MapClaims{
		"userName": "alice",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	_, err := v.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier(testSecret, "")
	tok := signToken(t, "some-other-secret", jwt.MapClaims{
		"userName": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	_, err := v.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerify_WrongIssuer(t *testing.T) {
	v := NewVerifier(testSecret, "tetsukizone")
	tok := signToken(t, testSecret, jwt.MapClaims{
		"userName": "alice",
		"iss":      "somebody-else",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	_, err := v.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenIssuer)
}

func TestVerify_IssuerCheckDisabled(t *testing.T) {
	v := NewVerifier(testSecret, "")
	tok := signToken(t, testSecret, jwt.MapClaims{
		"userName": "alice",
		"iss":      "anything",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	_, err := v.Verify(tok)
	assert.NoError(t, err)
}

func TestVerify_RejectsUnexpectedAlg(t *testing.T) {
	v := NewVerifier(testSecret, "")
	// alg=none style token; the parser must refuse it.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userName": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
