package node

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var resetConstant bool

var constantCmd = &cobra.Command{
	Use:   "constant <name> <value?>",
	Short: "Gets, overrides or resets a node constant.",
	Long: `Gets, overrides or resets a node constant such as
BaseConsensus.MAX_ATTEMPTS_TO_FETCH. Pass --reset to restore the default.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if resetConstant && len(args) == 2 {
			return errors.New("cannot set and reset a constant at once")
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		name := args[0]
		var value int64
		switch {
		case resetConstant:
			value, err = env.Client.ResetConstant(cmd.Context(), name)
		case len(args) == 2:
			next, perr := strconv.ParseInt(args[1], 10, 64)
			if perr != nil {
				return errors.Wrap(perr, "invalid value")
			}
			value, err = env.Client.SetConstant(cmd.Context(), name, next)
		default:
			value, err = env.Client.Constant(cmd.Context(), name)
		}
		if err != nil {
			return err
		}
		return env.Out.Print(map[string]int64{name: value}, func() {
			env.Out.Line("%d", value)
		})
	},
}

func init() {
	cmd.AddCommand(constantCmd)
	constantCmd.Flags().BoolVar(&resetConstant, "reset", false, "Restore the constant's default value")
}
