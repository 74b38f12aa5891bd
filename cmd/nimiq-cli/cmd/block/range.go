package block

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/client"
)

var rangeOpts client.FetchOpts

var rangeCmd = &cobra.Command{
	Use:   "range <from> <count>",
	Short: "Fetches a range of consecutive blocks.",
	Long: `Fetches count blocks starting at height from. Blocks are requested in
JSON-RPC batches, several batches at a time.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid start height")
		}
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrap(err, "invalid count")
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		blocks, err := env.Client.FetchBlocks(cmd.Context(), from, count, rangeOpts)
		if err != nil {
			return err
		}
		return env.Out.Print(blocks, func() {
			rows := make([][]string, 0, len(blocks))
			for _, b := range blocks {
				if b == nil {
					continue
				}
				rows = append(rows, []string{
					strconv.FormatInt(b.Number, 10),
					b.Hash,
					b.Miner.Friendly(),
					strconv.Itoa(len(b.Transactions)),
					cli.FormatTime(b.Timestamp),
				})
			}
			env.Out.Table([]string{"Number", "Hash", "Miner", "Txs", "Time"}, rows)
		})
	},
}

func init() {
	cmd.AddCommand(rangeCmd)
	rangeCmd.Flags().BoolVar(&rangeOpts.IncludeTransactions, "txs", false, "Include full transactions instead of hashes")
	rangeCmd.Flags().IntVar(&rangeOpts.Workers, "workers", client.DefaultFetchWorkers, "Number of batches in flight")
	rangeCmd.Flags().IntVar(&rangeOpts.BatchSize, "batch-size", client.DefaultFetchBatchSize, "Blocks per JSON-RPC batch")
}
