package account

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "account",
	Short: "Commands related to accounts and the node's wallet.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
