package net

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var onlyConnected bool

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Lists the peers known to the node.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		peers, err := env.Client.PeerList(cmd.Context())
		if err != nil {
			return err
		}
		if onlyConnected {
			var connected []*primitives.PeerInfo
			for _, p := range peers {
				if p.Connected() {
					connected = append(connected, p)
				}
			}
			peers = connected
		}
		return env.Out.Print(peers, func() {
			rows := make([][]string, 0, len(peers))
			for _, p := range peers {
				rows = append(rows, cli.PeerRow(p))
			}
			env.Out.Table(cli.PeerListHeader, rows)
		})
	},
}

func init() {
	cmd.AddCommand(peersCmd)
	peersCmd.Flags().BoolVar(&onlyConnected, "connected", false, "Only list peers with an established connection")
}
