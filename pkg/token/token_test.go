package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	signed, err := GenerateJWT(42, "dt", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ValidateJWT(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "dt", claims.Role)
	assert.Equal(t, "virtualzone-api", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "admin", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "another-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	signed, err := GenerateJWT(42, "user", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateJWTEmptyInputs(t *testing.T) {
	_, err := ValidateJWT("", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", testSecret)
	assert.Error(t, err)
}
