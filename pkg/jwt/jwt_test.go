package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(1, "admin")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserId)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "rn-aneka-jaya", claims.Issuer)
}

func TestParseRejectsExpired(t *testing.T) {
	claims := &Claims{
		UserId:   1,
		Username: "admin",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    "rn-aneka-jaya",
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("your-secret-key"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, jwtlib.ErrTokenExpired)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "admin")
	require.NoError(t, err)

	SetSecret("another-secret")
	defer SetSecret("your-secret-key")

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestSetSecretIgnoresEmpty(t *testing.T) {
	token, err := GenerateToken(1, "admin")
	require.NoError(t, err)

	SetSecret("")
	_, err = ParseToken(token)
	assert.NoError(t, err)
}
