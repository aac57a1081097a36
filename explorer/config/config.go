package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./explorer/config/config.yaml"

	logLevelEnv = "LOG_LEVEL"
	dataDirEnv  = "BIKESHARE_DATA_DIR"
	pageSizeEnv = "BIKESHARE_PAGE_SIZE"
)

type ExplorerConfig struct {
	LogLevel      string `yaml:"log_level"`
	DataDir       string `yaml:"data_dir"`
	PageSize      int    `yaml:"page_size"`
	TripDistances bool   `yaml:"trip_distances"`
}

// Default configuration used when there is no config file
func Default() *ExplorerConfig {
	return &ExplorerConfig{
		LogLevel:      "warn",
		DataDir:       ".",
		PageSize:      5,
		TripDistances: true,
	}
}

// LoadConfig reads the YAML config file. If the file does not exist the default configuration is returned.
// Environment variables override the values of the file.
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	explorerConfig := Default()

	configFile, err := utils.GetConfigFile(configFilepath)
	switch {
	case err == nil:
		err = yaml.Unmarshal(configFile, explorerConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing explorer config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}
	if pageSize := os.Getenv(pageSizeEnv); pageSize != "" {
		explorerConfig.PageSize, err = strconv.Atoi(pageSize)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", pageSizeEnv, err)
		}
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}
	return explorerConfig, nil
}

func (ec *ExplorerConfig) Validate() error {
	if ec.PageSize <= 0 {
		return fmt.Errorf("page_size must be greater than 0, got %v", ec.PageSize)
	}
	if ec.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	return nil
}
