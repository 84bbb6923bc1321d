package kiosk

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"cafe-kiosk/internal/config"
	"cafe-kiosk/internal/kiosk/api/http"
	"cafe-kiosk/internal/kiosk/core"
	"cafe-kiosk/pkg/logger"
)

type params struct {
	configPath string
	port       int
	tokenStart int
	cfg        *config.Config
}

// Execute starts the kiosk service and blocks until shutdown.
func Execute(ctx context.Context, mylog *logger.Logger, args []string) error {
	newCtx, stop := signal.NotifyContext(ctx, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	params, err := parseParams(args)
	if err != nil {
		if errors.Is(err, core.ErrHelp) {
			return nil
		}
		mylog.Action("command_parse_failed").Error("Invalid command received", err)
		return err
	}
	if err = validateParams(params); err != nil {
		mylog.Action("command_validation_failed").Error("Invalid command received", err)
		return err
	}
	mylog.Action("command_validation_completed").Info("Successfully validated params")

	server := http.NewServer(newCtx, params.cfg, mylog)

	runErrCh := make(chan error, 1)
	go func() {
		runErrCh <- server.Run()
	}()

	select {
	case <-newCtx.Done():
		mylog.Action("shutdown_signal_received").Info("Shutdown signal received")
		return server.Stop(context.Background())
	case err := <-runErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			mylog.Action("kiosk_service_failed").Error("Server failed unexpectedly", err)
			return err
		}
		mylog.Action("server_stopped").Info("Server exited normally")
		return nil
	}
}

func parseParams(args []string) (*params, error) {
	fs := flag.NewFlagSet("kiosk", flag.ContinueOnError)
	showHelp := fs.Bool("help", false, "Show help")
	configPath := fs.String("config-path", "config.yaml", "path for config yaml")

	port := fs.Int("port", 0, "Port to run the kiosk service (overrides config)")
	tokenStart := fs.Int("token-start", 0, "First order token issued (overrides config)")

	if err := fs.Parse(args); err != nil {
		return nil, core.ErrParseCmd
	}

	if *showHelp {
		fs.Usage()
		return nil, core.ErrHelp
	}

	return &params{
		configPath: *configPath,
		port:       *port,
		tokenStart: *tokenStart,
	}, nil
}

func validateParams(params *params) error {
	cfg, err := config.Load(params.configPath)
	if err != nil {
		return err
	}

	if params.port != 0 {
		cfg.Server.Port = params.port
	}
	if params.tokenStart != 0 {
		cfg.Kiosk.TokenStart = params.tokenStart
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port >= 65536 {
		return fmt.Errorf("port must be in [1: 65,535]: %d", cfg.Server.Port)
	}
	if cfg.Kiosk.TokenStart <= 0 {
		return fmt.Errorf("token start must be positive: %d", cfg.Kiosk.TokenStart)
	}

	params.cfg = cfg
	return nil
}
