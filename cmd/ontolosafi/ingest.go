package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ontolosafi/internal/ingest"
)

var ingestFull bool

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load the ontology document into the configured database",
		RunE:  runIngest,
	}
	cmd.Flags().BoolVar(&ingestFull, "full", false, "Reload even when the document is unchanged")
	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	result, err := ingest.Run(ctx, cfg, db, ingest.Options{Full: ingestFull})
	if err != nil {
		return err
	}

	if result.Skipped {
		logger.Info("ontology unchanged, skipped", "source", result.Source, "hash", result.Hash)
		fmt.Fprintln(os.Stdout, "Ontology unchanged, nothing to do.")
		return nil
	}

	logger.Info("ontology ingested", "source", result.Source, "triples", result.Triples)
	fmt.Fprintln(os.Stdout, "Ingestion complete.")
	fmt.Fprintf(os.Stdout, "  Source:  %s\n", result.Source)
	fmt.Fprintf(os.Stdout, "  Triples: %d\n", result.Triples)
	return nil
}
