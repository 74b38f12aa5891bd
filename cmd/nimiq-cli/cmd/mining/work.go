package mining

import (
	"strconv"

	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var workCmd = &cobra.Command{
	Use:   "work",
	Short: "Returns a proof-of-work job for an external miner.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := jobAddress()
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		work, err := env.Client.GetWork(cmd.Context(), addr, extraData)
		if err != nil {
			return err
		}
		return env.Out.Print(work, func() {
			target := primitives.CompactToTarget(work.Target)
			env.Out.Table(nil, [][]string{
				{"Data", work.Data},
				{"Suffix", work.Suffix},
				{"Target", strconv.FormatUint(uint64(work.Target), 10)},
				{"Difficulty", primitives.TargetToDifficulty(target).String()},
				{"Algorithm", work.Algorithm},
			})
		})
	},
}

func init() {
	addJobFlags(workCmd)
	cmd.AddCommand(workCmd)
}
