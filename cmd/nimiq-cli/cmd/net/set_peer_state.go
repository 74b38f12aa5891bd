package net

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var setPeerStateCmd = &cobra.Command{
	Use:   "set-peer-state <address> <connect|disconnect|ban|unban>",
	Short: "Connects, disconnects, bans or unbans a peer.",
	Long: `Applies a state command to a peer and returns the peer's resulting state.
Banning a peer closes any existing connection to it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		command, err := primitives.ParsePeerStateCommand(args[1])
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		peer, err := env.Client.SetPeerState(cmd.Context(), args[0], command)
		if err != nil {
			return err
		}
		return printPeer(env, peer)
	},
}

func init() {
	cmd.AddCommand(setPeerStateCmd)
}
