package tx

import (
	"strconv"

	"github.com/spf13/cobra"
	"nimiq/cli"
)

var infoCmd = &cobra.Command{
	Use:   "info <hex?>",
	Short: "Decodes a serialized transaction without broadcasting it.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := cli.ArgOrStdin(args, 0, "Enter the serialized transaction:")
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		info, err := env.Client.GetRawTransactionInfo(cmd.Context(), raw)
		if err != nil {
			return err
		}
		return env.Out.Print(info, func() {
			rows := cli.TransactionRows(&info.Transaction)
			rows = append(rows,
				[]string{"Valid", strconv.FormatBool(info.Valid)},
				[]string{"In Mempool", strconv.FormatBool(info.InMempool)},
			)
			env.Out.Table(nil, rows)
		})
	},
}

func init() {
	cmd.AddCommand(infoCmd)
}
