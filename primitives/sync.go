package primitives

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// SyncingStatus is the result of the syncing call. The node answers a bare
// false when it is not syncing.
type SyncingStatus struct {
	Syncing       bool
	StartingBlock int64
	CurrentBlock  int64
	HighestBlock  int64
}

func (s *SyncingStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("false")):
		*s = SyncingStatus{}
		return nil
	case bytes.Equal(data, []byte("true")):
		*s = SyncingStatus{Syncing: true}
		return nil
	case len(data) > 0 && data[0] == '{':
		var aux struct {
			StartingBlock int64 `json:"startingBlock"`
			CurrentBlock  int64 `json:"currentBlock"`
			HighestBlock  int64 `json:"highestBlock"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return err
		}
		*s = SyncingStatus{
			Syncing:       true,
			StartingBlock: aux.StartingBlock,
			CurrentBlock:  aux.CurrentBlock,
			HighestBlock:  aux.HighestBlock,
		}
		return nil
	default:
		return errors.Errorf("syncing status must be false or an object, got %s", data)
	}
}

// Remaining returns the number of blocks left to sync.
func (s *SyncingStatus) Remaining() int64 {
	if !s.Syncing || s.HighestBlock < s.CurrentBlock {
		return 0
	}
	return s.HighestBlock - s.CurrentBlock
}
