package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ontolosafi/internal/httpapi"
)

func httpCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the catalog over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTTP(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides http.addr)")
	return cmd
}

func runHTTP(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.HTTP.Addr
	}

	cat, closeDB, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	server := httpapi.New(cat, nil, logger.With("engine", cfg.Engine))
	return server.ListenAndServe(ctx, addr)
}
