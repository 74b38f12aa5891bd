package net

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var peerCmd = &cobra.Command{
	Use:   "peer <address>",
	Short: "Returns the state of a single peer.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		peer, err := env.Client.PeerState(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printPeer(env, peer)
	},
}

func printPeer(env *cli.Env, peer *primitives.PeerInfo) error {
	return env.Out.Print(peer, func() {
		env.Out.Table(cli.PeerListHeader, [][]string{cli.PeerRow(peer)})
	})
}

func init() {
	cmd.AddCommand(peerCmd)
}
