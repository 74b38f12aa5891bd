package mining

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var threadsCmd = &cobra.Command{
	Use:   "threads <count?>",
	Short: "Gets or sets the number of miner threads.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		var threads int
		if len(args) == 1 {
			next, perr := strconv.Atoi(args[0])
			if perr != nil {
				return errors.Wrap(perr, "invalid thread count")
			}
			threads, err = env.Client.SetMinerThreads(cmd.Context(), next)
		} else {
			threads, err = env.Client.MinerThreads(cmd.Context())
		}
		if err != nil {
			return err
		}
		return env.Out.Print(map[string]int{"threads": threads}, func() {
			env.Out.Line("%d", threads)
		})
	},
}

func init() {
	cmd.AddCommand(threadsCmd)
}
