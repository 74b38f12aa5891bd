package block

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/crypto"
)

var txCountCmd = &cobra.Command{
	Use:   "tx-count <hash|height>",
	Short: "Returns the number of transactions in a block.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		height, byHeight := parseHeight(args[0])
		if !byHeight {
			if err := crypto.ValidateHashHex(args[0]); err != nil {
				return errors.Wrap(err, "invalid block hash")
			}
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		var (
			count int
			found bool
		)
		if byHeight {
			count, found, err = env.Client.GetBlockTransactionCountByNumber(cmd.Context(), height)
		} else {
			count, found, err = env.Client.GetBlockTransactionCountByHash(cmd.Context(), args[0])
		}
		if err != nil {
			return err
		}
		if !found {
			return errors.New("block not found")
		}
		return env.Out.Print(map[string]int{"count": count}, func() {
			env.Out.Line("%d", count)
		})
	},
}

func init() {
	cmd.AddCommand(txCountCmd)
}
