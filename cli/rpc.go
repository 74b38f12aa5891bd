package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nimiq/client"
	"nimiq/config"
	"nimiq/log"
	"nimiq/rpc"
)

// Env bundles what a command needs to talk to the node and print results.
type Env struct {
	Config *config.Config
	Client *client.Client
	Out    *Printer
}

// LoadConfig reads the config from the home directory and applies the
// environment and any flags set on the command line.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(GetHomeDir(cmd))
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	overrides := []struct {
		flag string
		dst  *string
	}{
		{FlagRPCURL, &cfg.RPC.URL},
		{FlagRPCUser, &cfg.RPC.Username},
		{FlagRPCPassword, &cfg.RPC.Password},
		{FlagFormat, &cfg.Output.Format},
		{FlagLogLevel, &cfg.LogLevel},
	}
	for _, o := range overrides {
		if flags.Lookup(o.flag) == nil || !flags.Changed(o.flag) {
			continue
		}
		v, err := flags.GetString(o.flag)
		if err != nil {
			return nil, err
		}
		*o.dst = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func NewClient(cfg *config.Config) *client.Client {
	opts := []rpc.HTTPOpt{
		rpc.WithRateLimit(cfg.RPC.RequestsPerSecond, cfg.RPC.Burst),
	}
	if cfg.RPC.TimeoutMS > 0 {
		opts = append(opts, rpc.WithTimeout(cfg.RPC.Timeout()))
	}
	if cfg.RPC.Username != "" || cfg.RPC.Password != "" {
		opts = append(opts, rpc.WithBasicAuth(cfg.RPC.Username, cfg.RPC.Password))
	}
	caller := rpc.NewCaller(rpc.NewHTTPTransport(cfg.RPC.URL, opts...), rpc.WithLogger(log.WithModule("rpc")))
	return client.New(caller)
}

func Setup(cmd *cobra.Command) (*Env, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, errors.Wrap(err, "error loading config")
	}
	level, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)
	return &Env{
		Config: cfg,
		Client: NewClient(cfg),
		Out:    NewPrinter(cmd.OutOrStdout(), cfg.Output.Format),
	}, nil
}
