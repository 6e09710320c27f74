package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	staffId := 7
	token, err := CreateToken(AccessToken, 3, &staffId, []string{"user", "moderator"}, time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserId)
	require.NotNil(t, claims.StaffId)
	assert.Equal(t, 7, *claims.StaffId)

	actor := claims.Actor()
	assert.True(t, actor.HasRole("admin", "moderator"))
	assert.False(t, actor.HasRole("admin"))
}

func TestTokenWithoutStaffHasNilStaffId(t *testing.T) {
	token, err := CreateToken(AccessToken, 1, nil, []string{"user"}, time.Minute)
	require.NoError(t, err)
	claims, err := ParseToken(token, AccessToken)
	require.NoError(t, err)
	assert.Nil(t, claims.Actor().StaffId)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	token, err := CreateToken(RefreshToken, 1, nil, nil, time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, AccessToken)
	assert.Error(t, err)

	claims, err := ParseToken(token, RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.Type)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := CreateToken(AccessToken, 1, nil, nil, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(token, AccessToken)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
