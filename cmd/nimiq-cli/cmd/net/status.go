package net

import (
	"strconv"

	"github.com/spf13/cobra"
	"nimiq/cli"
)

type status struct {
	PeerCount     int    `json:"peerCount"`
	Consensus     string `json:"consensus"`
	Syncing       bool   `json:"syncing"`
	StartingBlock int64  `json:"startingBlock,omitempty"`
	CurrentBlock  int64  `json:"currentBlock,omitempty"`
	HighestBlock  int64  `json:"highestBlock,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Returns network status information.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		peers, err := env.Client.PeerCount(ctx)
		if err != nil {
			return err
		}
		consensus, err := env.Client.Consensus(ctx)
		if err != nil {
			return err
		}
		syncing, err := env.Client.Syncing(ctx)
		if err != nil {
			return err
		}

		res := &status{
			PeerCount:     peers,
			Consensus:     string(consensus),
			Syncing:       syncing.Syncing,
			StartingBlock: syncing.StartingBlock,
			CurrentBlock:  syncing.CurrentBlock,
			HighestBlock:  syncing.HighestBlock,
		}
		return env.Out.Print(res, func() {
			rows := [][]string{
				{"Peer Count", strconv.Itoa(res.PeerCount)},
				{"Consensus", res.Consensus},
				{"Syncing", strconv.FormatBool(res.Syncing)},
			}
			if res.Syncing {
				rows = append(rows,
					[]string{"Current Block", strconv.FormatInt(res.CurrentBlock, 10)},
					[]string{"Highest Block", strconv.FormatInt(res.HighestBlock, 10)},
					[]string{"Remaining", strconv.FormatInt(syncing.Remaining(), 10)},
				)
			}
			env.Out.Table(nil, rows)
		})
	},
}

func init() {
	cmd.AddCommand(statusCmd)
}
