package tx

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var byAddressLimit int

var byAddressCmd = &cobra.Command{
	Use:   "by-address <address>",
	Short: "Lists the transactions sent from or to an address.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := primitives.ParseAddress(args[0])
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		txs, err := env.Client.GetTransactionsByAddress(cmd.Context(), addr, byAddressLimit)
		if err != nil {
			return err
		}
		return env.Out.Print(txs, func() {
			env.Out.Table(cli.TransactionListHeader, cli.TransactionListRows(txs))
		})
	},
}

func init() {
	cmd.AddCommand(byAddressCmd)
	byAddressCmd.Flags().IntVar(&byAddressLimit, "limit", 0, "Maximum number of transactions to return. Zero uses the node's default.")
}
