package tx

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var cmd = &cobra.Command{
	Use:   "tx",
	Short: "Commands to look up, create and send transactions.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

func printTransaction(env *cli.Env, tx *primitives.Transaction) error {
	if tx == nil {
		return errors.New("transaction not found")
	}
	return env.Out.Print(tx, func() {
		env.Out.Table(nil, cli.TransactionRows(tx))
	})
}
