package primitives

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// FeeBucket is a fee-per-byte threshold of the node's mempool histogram.
type FeeBucket int

// FeeBuckets is the fixed ladder of thresholds, highest first.
var FeeBuckets = []FeeBucket{10000, 5000, 2000, 1000, 500, 200, 100, 50, 20, 10, 5, 2, 1, 0}

func ParseFeeBucket(v int) (FeeBucket, error) {
	for _, b := range FeeBuckets {
		if int(b) == v {
			return b, nil
		}
	}
	return 0, &EnumError{Enum: "FeeBucket", Value: v}
}

func (b FeeBucket) String() string {
	return strconv.Itoa(int(b))
}

// Mempool summarizes the node's mempool. Buckets lists only the thresholds
// that hold at least one transaction.
type Mempool struct {
	Total   int
	Buckets []FeeBucket
	counts  map[FeeBucket]int
}

// Count returns the number of transactions in bucket b, or 0 if the bucket
// is not present.
func (m *Mempool) Count(b FeeBucket) int {
	return m.counts[b]
}

func (m *Mempool) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var total int
	if raw, ok := fields["total"]; ok {
		if err := json.Unmarshal(raw, &total); err != nil {
			return &FieldError{Field: "total", Err: err}
		}
	}
	var listed []int
	if raw, ok := fields["buckets"]; ok {
		if err := json.Unmarshal(raw, &listed); err != nil {
			return &FieldError{Field: "buckets", Err: err}
		}
	}

	buckets := make([]FeeBucket, 0, len(listed))
	counts := make(map[FeeBucket]int, len(listed))
	sum := 0
	for _, v := range listed {
		b, err := ParseFeeBucket(v)
		if err != nil {
			return &FieldError{Field: "buckets", Err: err}
		}
		if _, dup := counts[b]; dup {
			return &FieldError{Field: "buckets", Err: errors.Errorf("bucket %d listed twice", v)}
		}
		var n int
		if raw, ok := fields[b.String()]; ok {
			if err := json.Unmarshal(raw, &n); err != nil {
				return &FieldError{Field: b.String(), Err: err}
			}
		}
		buckets = append(buckets, b)
		counts[b] = n
		sum += n
	}
	if sum != total {
		return &FieldError{Field: "total", Err: errors.Errorf("buckets sum to %d, total is %d", sum, total)}
	}

	m.Total = total
	m.Buckets = buckets
	m.counts = counts
	return nil
}
