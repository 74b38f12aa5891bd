package mempool

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var fullTransactions bool

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Lists the transactions in the mempool.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		refs, err := env.Client.MempoolContent(cmd.Context(), fullTransactions)
		if err != nil {
			return err
		}
		if !fullTransactions {
			hashes := make([]string, 0, len(refs))
			for _, ref := range refs {
				hashes = append(hashes, ref.Hash)
			}
			return env.Out.Print(hashes, func() {
				for _, h := range hashes {
					env.Out.Line("%s", h)
				}
			})
		}

		txs := make([]*primitives.Transaction, 0, len(refs))
		for _, ref := range refs {
			if ref.Transaction != nil {
				txs = append(txs, ref.Transaction)
			}
		}
		return env.Out.Print(txs, func() {
			env.Out.Table(cli.TransactionListHeader, cli.TransactionListRows(txs))
		})
	},
}

func init() {
	cmd.AddCommand(contentCmd)
	contentCmd.Flags().BoolVar(&fullTransactions, "full", false, "Return full transactions instead of hashes")
}
