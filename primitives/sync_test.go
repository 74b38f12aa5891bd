package primitives

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncingStatus(t *testing.T) {
	var s SyncingStatus
	require.NoError(t, json.Unmarshal([]byte(`false`), &s))
	require.False(t, s.Syncing)
	require.EqualValues(t, 0, s.Remaining())

	require.NoError(t, json.Unmarshal([]byte(`{"startingBlock": 1, "currentBlock": 12345, "highestBlock": 23456}`), &s))
	require.True(t, s.Syncing)
	require.EqualValues(t, 11111, s.Remaining())

	require.Error(t, json.Unmarshal([]byte(`"yes"`), &s))
}
