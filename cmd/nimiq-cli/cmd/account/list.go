package account

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the accounts held by the node's wallet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		accounts, err := env.Client.Accounts(cmd.Context())
		if err != nil {
			return err
		}
		return env.Out.Print(accounts, func() {
			rows := make([][]string, 0, len(accounts))
			for _, acct := range accounts {
				info := acct.Info()
				rows = append(rows, []string{info.Address.Friendly(), acct.Type().String(), cli.FormatAmount(info.Balance)})
			}
			env.Out.Table([]string{"Address", "Type", "Balance"}, rows)
		})
	},
}

func init() {
	cmd.AddCommand(listCmd)
}
