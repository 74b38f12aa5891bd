package node

import (
	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/primitives"
)

var logCmd = &cobra.Command{
	Use:   "log <tag> <level>",
	Short: "Sets the node's log level for a tag.",
	Long:  `Sets the node's log level for a tag. Use "*" as the tag to change every tag.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := primitives.ParseNodeLogLevel(args[1])
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		ok, err := env.Client.SetLogLevel(cmd.Context(), args[0], level)
		if err != nil {
			return err
		}
		return env.Out.Print(map[string]bool{"ok": ok}, func() {
			env.Out.Line("%t", ok)
		})
	},
}

func init() {
	cmd.AddCommand(logCmd)
}
