package client

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"nimiq/primitives"
	"nimiq/rpc"
)

const (
	DefaultFetchWorkers   = 4
	DefaultFetchBatchSize = 25
)

type FetchOpts struct {
	IncludeTransactions bool
	Workers             int
	BatchSize           int
}

// FetchBlocks fetches count blocks starting at height from. Blocks are
// requested in batches, with at most Workers batches in flight, and are
// returned in height order.
func (c *Client) FetchBlocks(ctx context.Context, from int64, count int, opts FetchOpts) ([]*primitives.Block, error) {
	if count <= 0 {
		return nil, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultFetchWorkers
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultFetchBatchSize
	}

	blocks := make([]*primitives.Block, count)
	sem := semaphore.NewWeighted(int64(workers))
	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < count; start += batchSize {
		end := start + batchSize
		if end > count {
			end = count
		}
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		start := start
		g.Go(func() error {
			defer sem.Release(1)
			return c.fetchBatch(gctx, from, blocks[start:end], start, opts.IncludeTransactions)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "error fetching blocks")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.lgr.Debug("fetched blocks", "from", from, "count", count)
	return blocks, nil
}

func (c *Client) fetchBatch(ctx context.Context, from int64, out []*primitives.Block, offset int, includeTransactions bool) error {
	calls := make([]*rpc.BatchCall, len(out))
	for i := range out {
		out[i] = new(primitives.Block)
		calls[i] = &rpc.BatchCall{
			Method: rpc.GetBlockByNumber,
			Args:   []interface{}{from + int64(offset+i), optionalFlag(includeTransactions)},
			Result: out[i],
		}
	}
	if err := c.caller.CallBatch(ctx, calls); err != nil {
		return err
	}
	for i, call := range calls {
		height := from + int64(offset+i)
		if call.Err != nil {
			return errors.Wrapf(call.Err, "error fetching block %d", height)
		}
		if !call.Found {
			return errors.Errorf("block %d not found", height)
		}
	}
	return nil
}
