package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/DanielPopoola/agrivault-booking/internal/bootstrap"
	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/interfaces/rest"
	"github.com/urfave/cli/v2"
)

var warehousesCmd = &cli.Command{
	Name:  "warehouses",
	Usage: "Inspect warehouse listings",
	Subcommands: []*cli.Command{
		warehousesListCmd,
		warehousesShowCmd,
	},
}

var warehousesListCmd = &cli.Command{
	Name:  "list",
	Usage: "List warehouses",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "available",
			Usage: "only show warehouses that can still be booked",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "print JSON instead of a table",
		},
	},
	Action: func(cctx *cli.Context) error {
		return withApp(cctx, func(ctx context.Context, app *bootstrap.App, _ *config.Config) error {
			list, err := app.Query.List(ctx, cctx.Bool("available"))
			if err != nil {
				return err
			}

			if cctx.Bool("json") {
				return printJSON(rest.ToAPIWarehouses(list))
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tPRICE\tBOOKED")
			for _, w := range list {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", w.ID, w.Name, w.Location, w.Price, w.IsBooked)
			}
			return tw.Flush()
		})
	},
}

var warehousesShowCmd = &cli.Command{
	Name:      "show",
	Usage:     "Show one warehouse",
	ArgsUsage: "<id>",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return cli.ShowSubcommandHelp(cctx)
		}
		return withApp(cctx, func(ctx context.Context, app *bootstrap.App, _ *config.Config) error {
			w, err := app.Query.Get(ctx, cctx.Args().First())
			if err != nil {
				return err
			}
			return printJSON(rest.ToAPIWarehouse(*w))
		})
	},
}
