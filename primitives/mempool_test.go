package primitives

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMempool(t *testing.T) {
	var m Mempool
	require.NoError(t, json.Unmarshal([]byte(`{"total": 6, "buckets": [10000, 2, 1], "10000": 2, "2": 3, "1": 1}`), &m))
	require.Equal(t, 6, m.Total)
	require.Equal(t, []FeeBucket{10000, 2, 1}, m.Buckets)

	sum := 0
	for _, b := range m.Buckets {
		sum += m.Count(b)
	}
	require.Equal(t, m.Total, sum)
	require.Equal(t, 3, m.Count(2))
	require.Equal(t, 0, m.Count(500))
	require.Equal(t, 0, m.Count(0))
}

func TestMempool_Empty(t *testing.T) {
	var m Mempool
	require.NoError(t, json.Unmarshal([]byte(`{"total": 0, "buckets": []}`), &m))
	require.Equal(t, 0, m.Total)
	require.Empty(t, m.Buckets)
	require.Equal(t, 0, m.Count(1))
}

func TestMempool_Invalid(t *testing.T) {
	tests := []struct {
		in  string
		err string
	}{
		{`{"total": 1, "buckets": [3], "3": 1}`, "unrecognized FeeBucket value 3"},
		{`{"total": 5, "buckets": [1], "1": 4}`, "buckets sum to 4, total is 5"},
		{`{"total": 2, "buckets": [1, 1], "1": 1}`, "listed twice"},
		{`{"total": "x"}`, "field total"},
		{`{"total": 1, "buckets": [1], "1": "one"}`, "field 1"},
	}
	for _, test := range tests {
		var m Mempool
		err := json.Unmarshal([]byte(test.in), &m)
		require.Error(t, err)
		require.Contains(t, err.Error(), test.err)
	}
}
