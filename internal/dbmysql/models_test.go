package dbmysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRequestPairKey(t *testing.T) {
	// order independent
	require.Equal(t, RequestPairKey(1, 2), RequestPairKey(2, 1))
	require.Equal(t, "1:2", RequestPairKey(2, 1))
	require.Equal(t, "5:5", RequestPairKey(5, 5))

	require.NotEqual(t, RequestPairKey(1, 2), RequestPairKey(1, 3))
}

func TestGroupInvite_Expired(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	permanent := &GroupInvite{InviteType: InviteTypePermanent}
	require.False(t, permanent.Expired(now))

	live := &GroupInvite{ExpiredAt: &future}
	require.False(t, live.Expired(now))

	dead := &GroupInvite{ExpiredAt: &past}
	require.True(t, dead.Expired(now))

	// the expiry instant itself is already expired
	exact := &GroupInvite{ExpiredAt: &now}
	require.True(t, exact.Expired(now))
}
