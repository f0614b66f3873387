package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateUserID(t *testing.T) {
	require.NoError(t, ValidateUserID(1))

	err := ValidateUserID(0)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)
}

func TestValidateGroupID(t *testing.T) {
	require.NoError(t, ValidateGroupID(10))
	require.ErrorIs(t, ValidateGroupID(0), ErrValidation)
}

func TestValidateNickname(t *testing.T) {
	require.NoError(t, ValidateNickname("BestFriend"))

	require.ErrorIs(t, ValidateNickname(""), ErrValidation)
	require.ErrorIs(t, ValidateNickname("   "), ErrValidation)
	require.ErrorIs(t, ValidateNickname(strings.Repeat("a", 65)), ErrValidation)

	// 64 chars is still fine
	require.NoError(t, ValidateNickname(strings.Repeat("a", 64)))
}

func TestValidateRequestMessage(t *testing.T) {
	require.NoError(t, ValidateRequestMessage(""))
	require.NoError(t, ValidateRequestMessage("want to be friends?"))
	require.NoError(t, ValidateRequestMessage(strings.Repeat("a", 200)))

	require.ErrorIs(t, ValidateRequestMessage(strings.Repeat("a", 201)), ErrValidation)
}
