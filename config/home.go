package config

import (
	"os"

	"github.com/pkg/errors"
)

func HomeDirExists(path string) (bool, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if !stat.IsDir() {
		return false, errors.New("home dir path exists, but is a file")
	}

	return true, nil
}

func EnsureHomeDir(path string) error {
	exists, err := HomeDirExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("home directory does not exist - try running nimiq-cli init")
	}
	return nil
}

// InitHomeDir creates the home directory and writes a default config file
// unless one already exists.
func InitHomeDir(homePath string) error {
	if err := os.MkdirAll(homePath, 0700); err != nil {
		return errors.Wrap(err, "error creating home directory")
	}
	if _, err := os.Stat(ConfigFilePath(homePath)); err == nil {
		return nil
	}
	return WriteDefaultConfigFile(homePath)
}

// Load reads the config in homePath, falling back to DefaultConfig when
// the home directory has not been initialized, and applies environment
// overrides.
func Load(homePath string) (*Config, error) {
	cfg := DefaultConfig
	exists, err := HomeDirExists(homePath)
	if err != nil {
		return nil, err
	}
	if exists {
		if _, err := os.Stat(ConfigFilePath(homePath)); err == nil {
			read, err := ReadConfigFile(homePath)
			if err != nil {
				return nil, err
			}
			cfg = *read
		}
	}
	if err := ApplyEnv(&cfg, EnvFilePath(homePath)); err != nil {
		return nil, err
	}
	return &cfg, nil
}
