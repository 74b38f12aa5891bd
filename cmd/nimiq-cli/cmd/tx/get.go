package tx

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/crypto"
)

var getCmd = &cobra.Command{
	Use:   "get <hash>",
	Short: "Returns a transaction by its hash.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := crypto.ValidateHashHex(args[0]); err != nil {
			return errors.Wrap(err, "invalid transaction hash")
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		tx, err := env.Client.GetTransactionByHash(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printTransaction(env, tx)
	},
}

func init() {
	cmd.AddCommand(getCmd)
}
