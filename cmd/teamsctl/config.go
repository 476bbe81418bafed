package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the teamsctl configuration. Values are taken from the config file
// (YAML or TOML, chosen by the extension), then overridden by TEAMSCTL_*
// environment variables and finally by command line flags.
type Config struct {
	// Neo RPC server endpoint.
	RPC string `yaml:"rpc" toml:"rpc" env:"RPC"`

	// Teams Registry contract address: Neo address or LE hex string.
	Contract string `yaml:"contract" toml:"contract" env:"CONTRACT"`

	// Limit of the single command execution incl. transaction acceptance.
	Timeout time.Duration `yaml:"timeout" toml:"timeout" env:"TIMEOUT"`

	// Logging level: debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`

	Wallet WalletConfig `yaml:"wallet" toml:"wallet" envPrefix:"WALLET_"`
}

// WalletConfig references account signing transactions.
type WalletConfig struct {
	// Path to the NEP-6 wallet file.
	Path string `yaml:"path" toml:"path" env:"PATH"`

	// Account address. The first wallet account is used if empty.
	Address string `yaml:"address" toml:"address" env:"ADDRESS"`

	// Account password.
	Password string `yaml:"password" toml:"password" env:"PASSWORD"`
}

const envPrefix = "TEAMSCTL_"

func defaultConfig() Config {
	return Config{
		RPC:      "http://localhost:30333",
		Timeout:  time.Minute,
		LogLevel: "info",
	}
}

// loadConfig reads the configuration file if path is not empty and applies
// environment overrides.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		err := decodeConfigFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
	}

	err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func decodeConfigFile(path string, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return fmt.Errorf("load TOML config: %w", err)
		}
	case ".yml", ".yaml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}

		err = yaml.Unmarshal(data, cfg)
		if err != nil {
			return fmt.Errorf("load YAML config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file extension '%s'", ext)
	}

	return nil
}

func (c Config) validate() error {
	switch {
	case c.RPC == "":
		return errors.New("missing RPC endpoint")
	case c.Timeout <= 0:
		return fmt.Errorf("non-positive timeout %s", c.Timeout)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level '%s'", c.LogLevel)
	}

	return nil
}
