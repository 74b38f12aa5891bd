package mempool

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var minFeeCmd = &cobra.Command{
	Use:   "min-fee <lunas-per-byte?>",
	Short: "Gets or sets the minimum fee per byte the mempool accepts.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		var fee int64
		if len(args) == 1 {
			next, perr := strconv.ParseInt(args[0], 10, 64)
			if perr != nil {
				return errors.Wrap(perr, "invalid fee")
			}
			fee, err = env.Client.SetMinFeePerByte(cmd.Context(), next)
		} else {
			fee, err = env.Client.MinFeePerByte(cmd.Context())
		}
		if err != nil {
			return err
		}
		return env.Out.Print(map[string]int64{"minFeePerByte": fee}, func() {
			env.Out.Line("%d", fee)
		})
	},
}

func init() {
	cmd.AddCommand(minFeeCmd)
}
