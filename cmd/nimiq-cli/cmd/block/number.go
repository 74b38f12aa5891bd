package block

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Returns the height of the node's chain head.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		height, err := env.Client.BlockNumber(cmd.Context())
		if err != nil {
			return err
		}
		return env.Out.Print(map[string]int64{"blockNumber": height}, func() {
			env.Out.Line("%d", height)
		})
	},
}

func init() {
	cmd.AddCommand(numberCmd)
}
