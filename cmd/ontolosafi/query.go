package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ontolosafi/internal/catalog"
)

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the catalog from the CLI",
	}
	cmd.AddCommand(queryListCmd("sites", "List heritage sites", func(ctx context.Context, cat *catalog.Catalog) (any, error) {
		return cat.HeritageSites(ctx)
	}))
	cmd.AddCommand(queryListCmd("events", "List cultural events", func(ctx context.Context, cat *catalog.Catalog) (any, error) {
		return cat.Events(ctx)
	}))
	cmd.AddCommand(queryListCmd("handicrafts", "List craft items and artisans", func(ctx context.Context, cat *catalog.Catalog) (any, error) {
		return cat.Handicrafts(ctx)
	}))
	cmd.AddCommand(queryListCmd("services", "List tourist services", func(ctx context.Context, cat *catalog.Catalog) (any, error) {
		return cat.Services(ctx)
	}))
	cmd.AddCommand(queryEventsByMonthCmd())
	cmd.AddCommand(queryMonthsCmd())
	cmd.AddCommand(querySQLCmd())
	return cmd
}

type listFunc func(ctx context.Context, cat *catalog.Catalog) (any, error)

func queryListCmd(use, short string, list listFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(func(ctx context.Context, cat *catalog.Catalog) error {
				records, err := list(ctx, cat)
				if err != nil {
					return err
				}
				return printJSON(records)
			})
		},
	}
}

func queryEventsByMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events-by-month <month>",
		Short: "List events whose date contains month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(func(ctx context.Context, cat *catalog.Catalog) error {
				events, err := cat.EventsByMonth(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(events)
			})
		},
	}
}

func queryMonthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months in which events take place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(func(ctx context.Context, cat *catalog.Catalog) error {
				months, err := cat.EventMonths(ctx)
				if err != nil {
					return err
				}
				if len(months) == 0 {
					fmt.Fprintln(os.Stdout, "No dated events found.")
					return nil
				}
				for _, month := range months {
					fmt.Fprintln(os.Stdout, month)
				}
				return nil
			})
		},
	}
}

func withCatalog(fn func(ctx context.Context, cat *catalog.Catalog) error) error {
	ctx := context.Background()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	cat, closeDB, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	return fn(ctx, cat)
}

func printJSON(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}
