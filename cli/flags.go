package cli

const (
	FlagHome        = "home"
	FlagRPCURL      = "rpc-url"
	FlagRPCUser     = "rpc-user"
	FlagRPCPassword = "rpc-password"
	FlagFormat      = "format"
	FlagLogLevel    = "log-level"
)
