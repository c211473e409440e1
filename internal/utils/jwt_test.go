package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	ConfigureJWT("test-secret")

	token, err := GenerateJWT("68b1c0ffee0000000000cafe", "user1@timsachnhabe.com", "user")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "68b1c0ffee0000000000cafe", claims.UserID)
	assert.Equal(t, "user1@timsachnhabe.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	ConfigureJWT("test-secret")

	token, err := GenerateJWT("id", "a@b.c", "user")
	require.NoError(t, err)

	_, err = ValidateJWT(token + "x")
	assert.Error(t, err)

	ConfigureJWT("other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
