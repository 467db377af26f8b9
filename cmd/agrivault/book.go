package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/agrivault-booking/internal/bootstrap"
	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest"
	"github.com/DanielPopoola/agrivault-booking/internal/worker"
	"github.com/jackc/pgx/v5"
	"github.com/urfave/cli/v2"
)

var bookCmd = &cli.Command{
	Name:      "book",
	Usage:     "Pay for and book a warehouse with the configured wallet",
	ArgsUsage: "<warehouse-id>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "token",
			Usage:   "session token for the warehouse API",
			EnvVars: []string{"AGRIVAULT_TOKEN"},
		},
		&cli.StringFlag{
			Name:  "user",
			Usage: "user id recorded with the attempt",
		},
	},
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return cli.ShowSubcommandHelp(cctx)
		}
		return withApp(cctx, func(ctx context.Context, app *bootstrap.App, cfg *config.Config) error {
			session := domain.Session{Token: cctx.String("token"), UserID: cctx.String("user")}

			flow, err := app.Booking.Book(ctx, session, cctx.Args().First())
			if err != nil {
				return err
			}

			if err := printJSON(rest.ToAPIBooking(flow, cfg.Booking.ExplorerTxURL)); err != nil {
				return err
			}
			if flow.Failure != nil {
				return cli.Exit(flow.Failure.Reason, 2)
			}
			return nil
		})
	},
}

var normalizeCmd = &cli.Command{
	Name:      "normalize",
	Usage:     "Convert a payment identifier into a chain address",
	ArgsUsage: "<identifier>",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return cli.ShowSubcommandHelp(cctx)
		}
		addr, err := domain.NormalizePaymentIdentifier(cctx.Args().First())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cctx.App.Writer, addr)
		return err
	},
}

var reconcileCmd = &cli.Command{
	Name:  "reconcile",
	Usage: "Run one settlement and stale-attempt pass over the attempt ledger",
	Action: func(cctx *cli.Context) error {
		return withApp(cctx, func(ctx context.Context, app *bootstrap.App, cfg *config.Config) error {
			if app.Ledger == nil {
				return cli.Exit("reconcile needs a database; set AGRIVAULT_DATABASE__HOST", 1)
			}

			logger := slog.Default()

			stale := worker.NewStaleAttemptWorker(app.Ledger, cfg.Worker.Interval, cfg.Worker.StaleAfter, cfg.Worker.BatchSize, logger)
			if err := stale.RunOnce(ctx); err != nil {
				return err
			}

			worker.NewReconciler(app.Ledger, app.Verifier, cfg.Worker.Interval, cfg.Worker.BatchSize, logger).RunOnce(ctx)
			return nil
		})
	},
}

var attemptCmd = &cli.Command{
	Name:      "attempt",
	Usage:     "Show a recorded booking attempt",
	ArgsUsage: "<attempt-id>",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return cli.ShowSubcommandHelp(cctx)
		}
		return withApp(cctx, func(ctx context.Context, app *bootstrap.App, cfg *config.Config) error {
			if app.Ledger == nil {
				return cli.Exit("attempt needs a database; set AGRIVAULT_DATABASE__HOST", 1)
			}

			flow, err := app.Ledger.FindByID(ctx, cctx.Args().First())
			if errors.Is(err, pgx.ErrNoRows) {
				return cli.Exit("attempt not found", 1)
			}
			if err != nil {
				return err
			}
			return printJSON(rest.ToAPIBooking(flow, cfg.Booking.ExplorerTxURL))
		})
	},
}
