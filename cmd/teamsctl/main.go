package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	flagRPC    string
	flagAddr   string
	verbose    bool

	cfg    Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "teamsctl",
	Short: "Teams Registry contract tool",
	Long: `teamsctl deploys and operates the Teams Registry smart contract.

Read commands need only the RPC endpoint and the contract address. Commands
sending transactions also need a wallet account. For manager commands it
must be the contract manager.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error

		cfg, err = loadConfig(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("rpc") {
			cfg.RPC = flagRPC
		}
		if cmd.Flags().Changed("contract") {
			cfg.Contract = flagAddr
		}
		if verbose {
			cfg.LogLevel = "debug"
		}

		err = cfg.validate()
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML or TOML configuration file")
	rootCmd.PersistentFlags().StringVarP(&flagRPC, "rpc", "r", "", "Neo RPC server endpoint")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "contract", "", "Teams Registry contract address")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		compileCmd,
		deployCmd,
		teamCmd,
		pauseCmd,
		unpauseCmd,
		metadataCmd,
		managerCmd,
		verifierCmd,
		dumpCmd,
	)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}

// commandContext returns context limited by the configured timeout.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), cfg.Timeout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
