package tx

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var sendRawCmd = &cobra.Command{
	Use:   "send-raw <hex?>",
	Short: "Broadcasts a serialized transaction.",
	Long:  `Broadcasts a serialized transaction. The hex is read from stdin when omitted.`,
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
		hash, err := env.Client.SendRawTransaction(cmd.Context(), raw)
		if err != nil {
			return err
		}
		return printHash(env, hash)
	},
}

func init() {
	cmd.AddCommand(sendRawCmd)
}
