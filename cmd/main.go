package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	stepreport "github.com/stepreport/stepreport"
	"github.com/stepreport/stepreport/flags"
	"github.com/stepreport/stepreport/service"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "stepreport"
	app.Usage = "Acceptance Step Tree Reporter"
	app.Description = "stepreport renders recorded acceptance-run step trees into console, text and HTML reports"
	app.Flags = flags.Flags
	app.Action = run
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if stepreport.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), 2))
			} else if stepreport.IsRunFailureError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), 1))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), 1))
			}
		}
	}

	if err := app.Run(os.Args); err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func run(ctx *cli.Context) error {
	logger, err := newLogger(ctx.String(flags.LogLevel.Name))
	if err != nil {
		return stepreport.NewRuntimeError(err)
	}

	cfg, err := stepreport.NewConfig(ctx, logger)
	if err != nil {
		return stepreport.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}
	cfg.Log.Debug("Config", "config", cfg)

	// Sidecar servers: healthz, metrics, and the rendered-report directory.
	svc := service.New(cfg.OutputDir)
	svc.Start(ctx.Context, cfg.ServeAddr)
	defer svc.Shutdown()

	app, err := stepreport.New(ctx.Context, cfg, Version, nil)
	if err != nil {
		return stepreport.NewRuntimeError(fmt.Errorf("failed to create stepreport: %w", err))
	}

	if cfg.RunOnce {
		return app.Start(ctx.Context)
	}

	if err := app.Start(ctx.Context); err != nil {
		return err
	}
	defer app.Stop() //nolint:errcheck

	<-ctx.Context.Done()
	return nil
}

func newLogger(level string) (log.Logger, error) {
	var lvl slog.Level
	switch level {
	case "trace":
		lvl = log.LvlTrace
	case "debug":
		lvl = log.LvlDebug
	case "info":
		lvl = log.LvlInfo
	case "warn":
		lvl = log.LevelWarn
	case "error":
		lvl = log.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	handler := log.NewTerminalHandlerWithLevel(os.Stderr, log.FromLegacyLevel(int(lvl)), true)
	logger := log.NewLogger(handler)
	log.SetDefault(logger)
	return logger, nil
}
