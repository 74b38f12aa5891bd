package block

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/crypto"
	"nimiq/primitives"
)

var getIncludeTxs bool

var getCmd = &cobra.Command{
	Use:   "get <hash|height>",
	Short: "Returns a block by hash or height.",
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
		var b *primitives.Block
		if byHeight {
			b, err = env.Client.GetBlockByNumber(cmd.Context(), height, getIncludeTxs)
		} else {
			b, err = env.Client.GetBlockByHash(cmd.Context(), args[0], getIncludeTxs)
		}
		if err != nil {
			return err
		}
		return printBlock(env, b)
	},
}

func init() {
	cmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getIncludeTxs, "txs", false, "Include full transactions instead of hashes")
}
