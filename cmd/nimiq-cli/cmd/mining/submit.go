package mining

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var submitCmd = &cobra.Command{
	Use:   "submit <block-hex?>",
	Short: "Submits a mined block to the node.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		block, err := cli.ArgOrStdin(args, 0, "Enter the serialized block:")
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		if err := env.Client.SubmitBlock(cmd.Context(), block); err != nil {
			return err
		}
		return env.Out.Print(map[string]bool{"submitted": true}, func() {
			env.Out.Line("Block submitted.")
		})
	},
}

func init() {
	cmd.AddCommand(submitCmd)
}
