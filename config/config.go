package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level" validate:"oneof=trace debug info warn error fatal"`
	RPC      RPCConfig    `mapstructure:"rpc"`
	Output   OutputConfig `mapstructure:"output"`
}

type RPCConfig struct {
	URL               string  `mapstructure:"url" validate:"required,url"`
	Username          string  `mapstructure:"username"`
	Password          string  `mapstructure:"password"`
	TimeoutMS         int     `mapstructure:"timeout_ms" validate:"gte=0"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=table json"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}

var validate = validator.New()

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "error validating config")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v", fe.Namespace(), fe.Value()))
	}
	return errors.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func (c *RPCConfig) Timeout() time.Duration {
	return ConvertDuration(c.TimeoutMS, time.Millisecond)
}

func ConvertDuration(base int, unit time.Duration) time.Duration {
	return time.Duration(base) * unit
}
