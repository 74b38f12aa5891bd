package account

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates a new account in the node's wallet.",
	Long: `Creates a new account in the node's wallet and prints its key pair. The
private key is only shown once, so store it somewhere safe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		wallet, err := env.Client.CreateAccount(cmd.Context())
		if err != nil {
			return err
		}
		res := map[string]string{
			"address":    wallet.Address.Friendly(),
			"publicKey":  wallet.PublicKey,
			"privateKey": wallet.PrivateKey,
		}
		return env.Out.Print(res, func() {
			env.Out.Table(nil, [][]string{
				{"Address", res["address"]},
				{"Public Key", res["publicKey"]},
				{"Private Key", res["privateKey"]},
			})
		})
	},
}

func init() {
	cmd.AddCommand(createCmd)
}
