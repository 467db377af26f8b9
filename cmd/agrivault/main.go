package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/DanielPopoola/agrivault-booking/internal/bootstrap"
	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "agrivault",
		Usage: "Browse and book AgriVault warehouses from the command line",
		Commands: []*cli.Command{
			warehousesCmd,
			bookCmd,
			normalizeCmd,
			reconcileCmd,
			attemptCmd,
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "debug, info, warn or error",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withApp loads configuration and builds the services for one command.
func withApp(cctx *cli.Context, fn func(ctx context.Context, app *bootstrap.App, cfg *config.Config) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	cfg.Logger.Level = cctx.String("log-level")
	cfg.Logger.Format = "text"
	// stdout carries command output
	logger := cfg.Logger.NewLoggerTo(os.Stderr, cfg.Primary.Env)
	slog.SetDefault(logger)

	app, err := bootstrap.Build(cctx.Context, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(cctx.Context, app, cfg)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
