package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"github.com/pkg/errors"
	"nimiq/log"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	RPC: RPCConfig{
		URL:               "http://127.0.0.1:8648",
		Username:          "",
		Password:          "",
		TimeoutMS:         30000,
		RequestsPerSecond: 0,
		Burst:             1,
	},
	Output: OutputConfig{
		Format: "table",
	},
}

const defaultConfigTemplateText = `# nimiq-cli Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures how nimiq-cli prints results.
[output]
  # Either "table" for human readable tables or "json".
  format = "{{.Output.Format}}"

# Configures the connection to the node's JSON-RPC server.
# NIMIQ_RPC_URL, NIMIQ_RPC_USERNAME and NIMIQ_RPC_PASSWORD, set in the
# environment or in a .env file next to this one, take precedence.
[rpc]
  # Sets the limit of requests sent per burst window.
  burst = {{.RPC.Burst}}
  # Sets the Basic auth password, if the node requires one.
  password = "{{.RPC.Password}}"
  # Sets how many requests per second nimiq-cli sends at most.
  # 0 disables the limit.
  requests_per_second = {{printf "%.1f" .RPC.RequestsPerSecond}}
  # Sets how long to wait for the node before giving up.
  timeout_ms = {{.RPC.TimeoutMS}}
  # Sets the URL of the node's RPC endpoint.
  url = "{{.RPC.URL}}"
  # Sets the Basic auth username, if the node requires one.
  username = "{{.RPC.Username}}"
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(ConfigFilePath(homeDir), os.O_RDONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(ConfigFilePath(homeDir), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
