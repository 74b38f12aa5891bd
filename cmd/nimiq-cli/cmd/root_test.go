package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"nimiq/testutil/mocknode"
	"nimiq/testutil/testfs"
)

const testAddress = "NQ07 0000 0000 0000 0000 0000 0000 0000 0000"

// run executes the root command against node. Format is always passed
// since cobra keeps flag values between executions.
func run(t *testing.T, node *mocknode.Node, format string, args ...string) (string, error) {
	home, done := testfs.NewTempDir(t)
	defer done()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append([]string{
		"--home", home,
		"--rpc-url", node.URL(),
		"--format", format,
	}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBlockNumber(t *testing.T) {
	node := mocknode.New(t)
	node.Result("blockNumber", 42)

	out, err := run(t, node, "table", "block", "number")
	require.NoError(t, err)
	require.Equal(t, "42\n", out)
}

func TestAccountBalance_JSON(t *testing.T) {
	node := mocknode.New(t)
	node.Result("getBalance", 1234567)

	out, err := run(t, node, "json", "account", "balance", testAddress)
	require.NoError(t, err)
	var res struct {
		Address string `json:"address"`
		Lunas   int64  `json:"lunas"`
		Coins   string `json:"coins"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, testAddress, res.Address)
	require.EqualValues(t, 1234567, res.Lunas)
	require.Equal(t, "12.34567", res.Coins)

	req := node.LastRequest()
	require.Equal(t, "getBalance", req.Method)
	require.Len(t, req.Params, 1)
}

func TestSetPeerState_InvalidCommand(t *testing.T) {
	node := mocknode.New(t)

	_, err := run(t, node, "table", "net", "set-peer-state", "wss://seed1.nimiq.com:8443/abc", "kick")
	require.Error(t, err)
	require.Empty(t, node.Requests())
}

func TestRemoteError(t *testing.T) {
	node := mocknode.New(t)
	node.Error("getBlockByNumber", mocknode.CodeInternal, "Block not found")

	_, err := run(t, node, "table", "block", "get", "5")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Block not found")
}

func TestCoinConversion(t *testing.T) {
	node := mocknode.New(t)

	out, err := run(t, node, "table", "coin", "to-lunas", "1.5")
	require.NoError(t, err)
	require.Equal(t, "150000\n", out)

	out, err = run(t, node, "table", "coin", "to-coins", "150000")
	require.NoError(t, err)
	require.Equal(t, "1.50000\n", out)
}

func TestInit(t *testing.T) {
	parent, done := testfs.NewTempDir(t)
	defer done()
	home := filepath.Join(parent, "home")

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--home", home, "init"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	_, err := os.Stat(filepath.Join(home, "config.toml"))
	require.NoError(t, err)

	rootCmd.SetArgs([]string{"--home", home, "init"})
	require.Error(t, rootCmd.ExecuteContext(context.Background()))
}
