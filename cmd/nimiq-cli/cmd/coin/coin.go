package coin

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/coin"
)

var cmd = &cobra.Command{
	Use:   "coin",
	Short: "Converts between NIM and lunas.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

var toLunasCmd = &cobra.Command{
	Use:   "to-lunas <amount>",
	Short: "Converts a NIM amount to lunas.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lunas, err := coin.ParseCoins(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), lunas)
		return nil
	},
}

var toCoinsCmd = &cobra.Command{
	Use:   "to-coins <lunas>",
	Short: "Converts lunas to a NIM amount.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lunas, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid luna amount")
		}
		fmt.Fprintln(cmd.OutOrStdout(), coin.FormatLunas(lunas))
		return nil
	},
}

func init() {
	cmd.AddCommand(toLunasCmd)
	cmd.AddCommand(toCoinsCmd)
}
