package mining

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var setCmd = &cobra.Command{
	Use:   "set <true|false>",
	Short: "Starts or stops the node's miner.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := strconv.ParseBool(args[0])
		if err != nil {
			return errors.Wrap(err, "expected true or false")
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		mining, err := env.Client.SetMining(cmd.Context(), enabled)
		if err != nil {
			return err
		}
		return env.Out.Print(map[string]bool{"mining": mining}, func() {
			env.Out.Line("%t", mining)
		})
	},
}

func init() {
	cmd.AddCommand(setCmd)
}
