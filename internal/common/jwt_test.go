package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, "alice", claims.Nickname)
	require.Equal(t, "socialcore", claims.Issuer)
}

func TestValidToken_Garbage(t *testing.T) {
	_, err := ValidToken("not.a.token")
	require.Error(t, err)

	_, err = ValidToken("")
	require.Error(t, err)
}

func TestValidToken_Tampered(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	require.NoError(t, err)

	_, err = ValidToken(token + "x")
	require.Error(t, err)
}
