package account

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/coin"
	"nimiq/primitives"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Returns the balance of an address.",
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
		lunas, err := env.Client.GetBalance(cmd.Context(), addr)
		if err != nil {
			return err
		}
		res := struct {
			Address string `json:"address"`
			Lunas   int64  `json:"lunas"`
			Coins   string `json:"coins"`
		}{addr.Friendly(), lunas, coin.FormatLunas(lunas)}
		return env.Out.Print(res, func() {
			env.Out.Line("%s", cli.FormatAmount(lunas))
		})
	},
}

func init() {
	cmd.AddCommand(balanceCmd)
}
