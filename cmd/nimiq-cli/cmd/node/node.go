package node

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "node",
	Short: "Commands to tune the node itself.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
