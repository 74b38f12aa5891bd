package config

import (
	"path"

	"github.com/mitchellh/go-homedir"
)

const (
	DefaultHomePath = "~/.nimiq-cli"
	ConfigFilename  = "config.toml"
	EnvFilename     = ".env"
)

func ExpandHomePath(path string) string {
	res, err := homedir.Expand(path)
	if err != nil {
		panic(err)
	}
	return res
}

func ConfigFilePath(homePath string) string {
	return path.Join(homePath, ConfigFilename)
}

func EnvFilePath(homePath string) string {
	return path.Join(homePath, EnvFilename)
}
