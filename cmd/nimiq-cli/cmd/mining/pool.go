package mining

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/cli"
)

var leavePool bool

var poolCmd = &cobra.Command{
	Use:   "pool <host:port?>",
	Short: "Gets, joins or leaves a mining pool.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if leavePool && len(args) == 1 {
			return errors.New("cannot join and leave a pool at once")
		}
		env, err := cli.Setup(cmd)
		if err != nil {
			return err
		}
		var (
			pool   string
			joined bool
		)
		switch {
		case leavePool:
			pool, joined, err = env.Client.LeavePool(cmd.Context())
		case len(args) == 1:
			pool, joined, err = env.Client.SetPool(cmd.Context(), args[0])
		default:
			pool, joined, err = env.Client.Pool(cmd.Context())
		}
		if err != nil {
			return err
		}
		res := struct {
			Pool   string `json:"pool,omitempty"`
			Joined bool   `json:"joined"`
		}{pool, joined}
		return env.Out.Print(res, func() {
			if !joined {
				env.Out.Line("Not connected to a pool.")
				return
			}
			env.Out.Line("%s", pool)
		})
	},
}

func init() {
	cmd.AddCommand(poolCmd)
	poolCmd.Flags().BoolVar(&leavePool, "leave", false, "Leave the current pool")
}
