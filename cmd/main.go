// Package main provides the CLI entrypoint of the car lot service.
// It wires the subcommands (serve, plate, schema), loads configuration and
// initializes logging.
package main

import (
	"carlot/internal/config"
	"carlot/pkg/logger"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands. cfg is loaded before any
// subcommand runs.
type app struct {
	configPath string
	cfg        *config.Config
}

func (a *app) load(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("could not setup logger: %w", err)
	}
	a.cfg = cfg

	return nil
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "carlot",
		Short:             "In-memory car registry served over GraphQL and REST",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		serveCommand(a),
		plateCommand(),
		schemaCommand(),
	)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
