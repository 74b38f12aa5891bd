package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	EnvRPCURL      = "NIMIQ_RPC_URL"
	EnvRPCUsername = "NIMIQ_RPC_USERNAME"
	EnvRPCPassword = "NIMIQ_RPC_PASSWORD"
)

// ApplyEnv overrides the RPC endpoint and credentials from the dotenv file
// at envPath, if it exists, and then from the process environment.
func ApplyEnv(cfg *Config, envPath string) error {
	vars := make(map[string]string)
	if _, err := os.Stat(envPath); err == nil {
		fileVars, err := godotenv.Read(envPath)
		if err != nil {
			return errors.Wrap(err, "error reading env file")
		}
		vars = fileVars
	}
	for _, key := range []string{EnvRPCURL, EnvRPCUsername, EnvRPCPassword} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	if v, ok := vars[EnvRPCURL]; ok && v != "" {
		cfg.RPC.URL = v
	}
	if v, ok := vars[EnvRPCUsername]; ok {
		cfg.RPC.Username = v
	}
	if v, ok := vars[EnvRPCPassword]; ok {
		cfg.RPC.Password = v
	}
	return nil
}
