package block

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var cmd = &cobra.Command{
	Use:   "block",
	Short: "Commands to inspect the chain.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

// parseHeight reports whether arg is a block height rather than a hash.
func parseHeight(arg string) (int64, bool) {
	height, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, false
	}
	return height, true
}

func printBlock(env *cli.Env, b *primitives.Block) error {
	if b == nil {
		return errors.New("block not found")
	}
	return env.Out.Print(b, func() {
		env.Out.Table(nil, cli.BlockRows(b))
		if txs := b.FullTransactions(); len(txs) > 0 {
			env.Out.Table(cli.TransactionListHeader, cli.TransactionListRows(txs))
			return
		}
		for _, h := range b.TransactionHashes() {
			env.Out.Line("%s", h)
		}
	})
}
