package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"nimiq/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes nimiq-cli's home directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Successfully initialized nimiq-cli in %s.\n", homeDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
