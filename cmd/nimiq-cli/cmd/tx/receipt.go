package tx

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/crypto"
)

var receiptCmd = &cobra.Command{
	Use:   "receipt <hash>",
	Short: "Returns the receipt of a mined transaction.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := crypto.ValidateHashHex(args[0]); err != nil {
			return errors.Wrap(err, "invalid transaction hash")
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		receipt, err := env.Client.GetTransactionReceipt(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if receipt == nil {
			return errors.New("no receipt found")
		}
		return env.Out.Print(receipt, func() {
			env.Out.Table(nil, [][]string{
				{"Transaction Hash", receipt.TransactionHash},
				{"Block Hash", receipt.BlockHash},
				{"Block Number", strconv.FormatInt(receipt.BlockNumber, 10)},
				{"Index", strconv.Itoa(receipt.TransactionIndex)},
				{"Time", cli.FormatTime(receipt.Timestamp)},
				{"Confirmations", strconv.Itoa(receipt.Confirmations)},
			})
		})
	},
}

func init() {
	cmd.AddCommand(receiptCmd)
}
