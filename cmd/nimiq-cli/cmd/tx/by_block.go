package tx

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/crypto"
	"nimiq/primitives"
)

var byBlockCmd = &cobra.Command{
	Use:   "by-block <block-hash|height> <index>",
	Short: "Returns the transaction at an index of a block.",
	Long: `Returns the transaction at an index of a block. The block is looked up by
height when the first argument is a number and by hash otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrap(err, "invalid index")
		}
		height, perr := strconv.ParseInt(args[0], 10, 64)
		if perr != nil {
			if err := crypto.ValidateHashHex(args[0]); err != nil {
				return errors.Wrap(err, "invalid block hash")
			}
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}

		var tx *primitives.Transaction
		if perr == nil {
			tx, err = env.Client.GetTransactionByBlockNumberAndIndex(cmd.Context(), height, index)
		} else {
			tx, err = env.Client.GetTransactionByBlockHashAndIndex(cmd.Context(), args[0], index)
		}
		if err != nil {
			return err
		}
		return printTransaction(env, tx)
	},
}

func init() {
	cmd.AddCommand(byBlockCmd)
}
