package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/usergate/internal/config"
	"github.com/dropDatabas3/usergate/internal/http/server"
	"github.com/dropDatabas3/usergate/internal/observability/logger"
)

func newServeCmd() *cobra.Command {
	var (
		cfgPath = envOr("USERGATE_CONFIG", "")
		envFile = ".env"
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfgPath, envFile)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", cfgPath, "Archivo YAML de configuración (env USERGATE_CONFIG)")
	cmd.Flags().StringVar(&envFile, "env-file", envFile, "Archivo .env a cargar si existe")
	return cmd
}

func runServe(ctx context.Context, cfgPath, envFile string) error {
	// .env no pisa variables ya definidas en el entorno.
	envErr := godotenv.Load(envFile)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "usergate",
		Version:     cfg.App.Version,
	})
	defer func() { _ = logger.Sync() }()
	log := logger.L()

	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn("could not load env file", logger.String("file", envFile), logger.Err(envErr))
	}

	handler, err := server.BuildHandler(cfg, server.Options{})
	if err != nil {
		log.Error("wiring failed", logger.Err(err))
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("usergate starting",
		logger.String("addr", cfg.Server.Addr),
		logger.String("upstream", cfg.Upstream.URL),
		logger.String("env", cfg.App.Env),
	)
	if err := server.Run(ctx, cfg, handler); err != nil {
		log.Error("server stopped with error", logger.Err(err))
		return err
	}
	log.Info("usergate stopped")
	return nil
}
