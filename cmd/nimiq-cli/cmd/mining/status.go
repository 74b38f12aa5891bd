package mining

import (
	"strconv"

	"github.com/spf13/cobra"
	"nimiq/cli"
)

type status struct {
	Mining               bool    `json:"mining"`
	Hashrate             float64 `json:"hashrate"`
	Threads              int     `json:"threads"`
	MinerAddress         string  `json:"minerAddress"`
	Pool                 string  `json:"pool,omitempty"`
	PoolConnectionState  string  `json:"poolConnectionState"`
	PoolConfirmedBalance int64   `json:"poolConfirmedBalance"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Returns the state of the node's miner.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		c := env.Client

		res := new(status)
		if res.Mining, err = c.Mining(ctx); err != nil {
			return err
		}
		if res.Hashrate, err = c.Hashrate(ctx); err != nil {
			return err
		}
		if res.Threads, err = c.MinerThreads(ctx); err != nil {
			return err
		}
		addr, err := c.MinerAddress(ctx)
		if err != nil {
			return err
		}
		res.MinerAddress = addr.Friendly()
		if res.Pool, _, err = c.Pool(ctx); err != nil {
			return err
		}
		poolState, err := c.PoolConnectionState(ctx)
		if err != nil {
			return err
		}
		res.PoolConnectionState = poolState.String()
		if res.PoolConfirmedBalance, err = c.PoolConfirmedBalance(ctx); err != nil {
			return err
		}

		return env.Out.Print(res, func() {
			env.Out.Table(nil, [][]string{
				{"Mining", strconv.FormatBool(res.Mining)},
				{"Hashrate", strconv.FormatFloat(res.Hashrate, 'f', 2, 64) + " H/s"},
				{"Threads", strconv.Itoa(res.Threads)},
				{"Miner Address", res.MinerAddress},
				{"Pool", res.Pool},
				{"Pool Connection", res.PoolConnectionState},
				{"Pool Confirmed Balance", cli.FormatAmount(res.PoolConfirmedBalance)},
			})
		})
	},
}

func init() {
	cmd.AddCommand(statusCmd)
}
