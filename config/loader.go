package config

import (
	"os"
	"path/filepath"

	"github.com/mcuadros/go-defaults"
	"github.com/spf13/viper"

	"github.com/goto/foundry/internal/errors"
)

const entityConfig = "config"

// LoadClientConfig reads the client configuration from the given file, or
// from DefaultFilename in the working directory when filePath is empty.
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	defaults.SetDefaults(cfg)

	v := viper.New()
	v.SetConfigType("yaml")
	if filePath != EmptyPath {
		v.SetConfigFile(filePath)
	} else {
		currPath, err := os.Getwd()
		if err != nil {
			return nil, errors.InternalError(entityConfig, "unable to get current work directory", err)
		}
		v.SetConfigFile(filepath.Join(currPath, DefaultFilename))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.InternalError(entityConfig, "unable to read config file", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.InternalError(entityConfig, "unable to unmarshal config", err)
	}
	return cfg, nil
}

// LoadOptionalConfig behaves like LoadClientConfig but treats a missing
// default config file as no config at all.
func LoadOptionalConfig(filePath string) (*ClientConfig, error) {
	if filePath != EmptyPath {
		return LoadClientConfig(filePath)
	}
	currPath, err := os.Getwd()
	if err != nil {
		return nil, errors.InternalError(entityConfig, "unable to get current work directory", err)
	}
	defaultPath := filepath.Join(currPath, DefaultFilename)
	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadClientConfig(defaultPath)
}
