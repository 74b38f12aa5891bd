package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"nimiq/cli"
	"nimiq/cmd/nimiq-cli/cmd/account"
	"nimiq/cmd/nimiq-cli/cmd/block"
	"nimiq/cmd/nimiq-cli/cmd/coin"
	"nimiq/cmd/nimiq-cli/cmd/mempool"
	"nimiq/cmd/nimiq-cli/cmd/mining"
	"nimiq/cmd/nimiq-cli/cmd/net"
	"nimiq/cmd/nimiq-cli/cmd/node"
	"nimiq/cmd/nimiq-cli/cmd/tx"
	"nimiq/config"
)

var rootCmd = &cobra.Command{
	Use:           "nimiq-cli",
	Short:         "Command-line JSON-RPC interface for a Nimiq node.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, config.DefaultHomePath, "Home directory for the CLI's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagRPCURL, "", "URL of the node's JSON-RPC endpoint. Overrides the config file.")
	rootCmd.PersistentFlags().String(cli.FlagRPCUser, "", "Username for HTTP basic auth.")
	rootCmd.PersistentFlags().String(cli.FlagRPCPassword, "", "Password for HTTP basic auth.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, "", "Output format (table or json).")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, "", "Log level.")
	account.AddCmd(rootCmd)
	block.AddCmd(rootCmd)
	coin.AddCmd(rootCmd)
	mempool.AddCmd(rootCmd)
	mining.AddCmd(rootCmd)
	net.AddCmd(rootCmd)
	node.AddCmd(rootCmd)
	tx.AddCmd(rootCmd)
}
