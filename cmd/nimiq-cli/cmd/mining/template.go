package mining

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"nimiq/cli"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Returns a block template for an external miner.",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := jobAddress()
		if err != nil {
			return err
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		tmpl, err := env.Client.GetBlockTemplate(cmd.Context(), addr, extraData)
		if err != nil {
			return err
		}
		return env.Out.Print(tmpl, func() {
			env.Out.Table(nil, [][]string{
				{"Height", strconv.FormatInt(tmpl.Header.Height, 10)},
				{"Previous Hash", tmpl.Header.PrevHash},
				{"Accounts Hash", tmpl.Header.AccountsHash},
				{"nBits", strconv.FormatUint(uint64(tmpl.Header.NBits), 16)},
				{"Body Hash", tmpl.Body.Hash},
				{"Miner", tmpl.Body.MinerAddr},
				{"Extra Data", tmpl.Body.ExtraData},
				{"Transactions", strconv.Itoa(len(tmpl.Body.Transactions))},
				{"Merkle Path", strings.Join(tmpl.Body.MerkleHashes, "\n")},
			})
		})
	},
}

func init() {
	addJobFlags(templateCmd)
	cmd.AddCommand(templateCmd)
}
