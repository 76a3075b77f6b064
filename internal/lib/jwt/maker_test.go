package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParse(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour, "campusfit", "campusfit-clients")

	token, err := maker.GenerateToken("uid-1", "student", "a@x.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserUID)
	assert.Equal(t, "student", claims.UserType)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "campusfit", claims.Issuer)
}

func TestMaker_ExpiredToken(t *testing.T) {
	maker := NewMaker("test-secret", -time.Minute, "campusfit", "campusfit-clients")

	token, err := maker.GenerateToken("uid-1", "public", "a@x.com", "user")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_WrongSecret(t *testing.T) {
	maker := NewMaker("secret-one", time.Hour, "campusfit", "campusfit-clients")
	other := NewMaker("secret-two", time.Hour, "campusfit", "campusfit-clients")

	token, err := maker.GenerateToken("uid-1", "staff", "b@x.com", "user")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestMaker_WrongIssuerOrAudience(t *testing.T) {
	maker := NewMaker("test-secret", time.Hour, "campusfit", "campusfit-clients")
	foreign := NewMaker("test-secret", time.Hour, "other-service", "other-clients")

	token, err := foreign.GenerateToken("uid-1", "public", "c@x.com", "user")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	assert.Error(t, err)
}
