package mempool

import (
	"strconv"

	"github.com/spf13/cobra"
	"nimiq/cli"
)

type bucketCount struct {
	FeePerByte int `json:"feePerByte"`
	Count      int `json:"count"`
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Returns the mempool's transaction count by fee per byte.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		mp, err := env.Client.Mempool(cmd.Context())
		if err != nil {
			return err
		}
		buckets := make([]bucketCount, 0, len(mp.Buckets))
		for _, b := range mp.Buckets {
			buckets = append(buckets, bucketCount{FeePerByte: int(b), Count: mp.Count(b)})
		}
		res := struct {
			Total   int           `json:"total"`
			Buckets []bucketCount `json:"buckets"`
		}{mp.Total, buckets}

		return env.Out.Print(res, func() {
			rows := make([][]string, 0, len(buckets)+1)
			for _, b := range buckets {
				rows = append(rows, []string{">= " + strconv.Itoa(b.FeePerByte), strconv.Itoa(b.Count)})
			}
			rows = append(rows, []string{"Total", strconv.Itoa(mp.Total)})
			env.Out.Table([]string{"Fee Per Byte", "Transactions"}, rows)
		})
	},
}

func init() {
	cmd.AddCommand(summaryCmd)
}
