package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tupyy/areomh-controller/cmd"
	"github.com/tupyy/areomh-controller/internal/config"
	"github.com/tupyy/areomh-controller/pkg/logger"
)

func main() {
	// default configuration
	cfg := config.NewConfigurationWithOptionsAndDefaults(
		config.WithLogFormat("console"),
		config.WithLogLevel("info"),
	)

	var undo func()
	var log *zap.Logger

	rootCmd := &cobra.Command{
		Use:          "areomh",
		Short:        "Autonomous resource extraction mission controller",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfig(cfg); err != nil {
				return err
			}
			log = logger.Init(cfg.LogFormat, cfg.LogLevel)
			undo = zap.ReplaceGlobals(log)
			return nil
		},
	}
	registerLoggingFlags(rootCmd, cfg)

	rootCmd.AddCommand(cmd.NewRunCommand(cfg))
	rootCmd.AddCommand(cmd.NewSimulateCommand(cfg))

	err := rootCmd.Execute()
	if log != nil {
		_ = log.Sync()
		undo()
	}
	if err != nil {
		fmt.Printf("%s\n", err)
		os.Exit(1)
	}
}

func validateConfig(cfg *config.Configuration) error {
	switch cfg.LogFormat {
	case "console":
	case "json":
	default:
		return fmt.Errorf("invalid log-format: %s", cfg.LogFormat)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %s", cfg.LogLevel)
	}

	return nil
}

func registerLoggingFlags(cmd *cobra.Command, config *config.Configuration) {
	cmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", config.LogFormat, "format of the logs: console or json")
	cmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
}
