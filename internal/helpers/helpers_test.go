package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList(" 3, 1,,3 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, ids)

	ids, err = ParseIDList("")
	require.NoError(t, err)
	assert.Nil(t, ids)

	_, err = ParseIDList("1,x")
	assert.Error(t, err)
}

func signHS256(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestTokenVerifierHMAC(t *testing.T) {
	tv, err := NewTokenVerifier("s3cret", "", nil)
	require.NoError(t, err)
	defer tv.Close()

	token := signHS256(t, "s3cret", Claims{
		Role: "organizer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := tv.Verify(token)
	require.NoError(t, err)
	assert.True(t, claims.IsOwner(42))
	assert.True(t, claims.HasRole("organizer", "admin"))
	assert.False(t, claims.IsAdmin())
}

func TestTokenVerifierRejects(t *testing.T) {
	tv, err := NewTokenVerifier("s3cret", "", nil)
	require.NoError(t, err)

	wrongKey := signHS256(t, "other", Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}})
	_, err = tv.Verify(wrongKey)
	assert.Error(t, err)

	expired := signHS256(t, "s3cret", Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}})
	_, err = tv.Verify(expired)
	assert.Error(t, err)

	badSubject := signHS256(t, "s3cret", Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}})
	_, err = tv.Verify(badSubject)
	assert.Error(t, err)
}

func TestNewTokenVerifierRequiresKey(t *testing.T) {
	_, err := NewTokenVerifier("", "", nil)
	assert.Error(t, err)
}

func TestClaimsSafeRole(t *testing.T) {
	assert.Equal(t, "guest", (&Claims{}).GetSafeRole())
	assert.Equal(t, "admin", (&Claims{Role: "admin"}).GetSafeRole())
}
