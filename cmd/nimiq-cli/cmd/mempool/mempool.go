package mempool

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "mempool",
	Short: "Commands related to the node's mempool.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
