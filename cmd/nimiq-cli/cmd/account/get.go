package account

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var getCmd = &cobra.Command{
	Use:   "get <address>",
	Short: "Returns the details of an account.",
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
		acct, err := env.Client.GetAccount(cmd.Context(), addr)
		if err != nil {
			return err
		}
		return env.Out.Print(acct, func() {
			env.Out.Table(nil, cli.AccountRows(acct))
		})
	},
}

func init() {
	cmd.AddCommand(getCmd)
}
