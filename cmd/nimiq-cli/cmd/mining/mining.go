package mining

import (
	"github.com/spf13/cobra"
	"nimiq/primitives"
)

var cmd = &cobra.Command{
	Use:   "mining",
	Short: "Commands to control the node's miner and mining pool.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

var (
	minerAddress string
	extraData    string
)

func addJobFlags(c *cobra.Command) {
	c.Flags().StringVar(&minerAddress, "address", "", "Address to mine to. Defaults to the node's miner address")
	c.Flags().StringVar(&extraData, "extra-data", "", "Hex-encoded extra data for the block")
}

func jobAddress() (*primitives.Address, error) {
	if minerAddress == "" {
		return nil, nil
	}
	addr, err := primitives.ParseAddress(minerAddress)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}
