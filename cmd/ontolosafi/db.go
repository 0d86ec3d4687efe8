package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"ontolosafi/internal/catalog"
	"ontolosafi/internal/config"
	"ontolosafi/internal/graph"
	"ontolosafi/internal/ingest"
	"ontolosafi/internal/logging"
	"ontolosafi/internal/store"
	"ontolosafi/internal/store/postgres"
	"ontolosafi/internal/store/sqlite"
)

// loadConfig reads the project config. A .env file in the working directory,
// when present, feeds the ONTOLOSAFI_* overrides.
func loadConfig() (*config.ProjectConfig, *slog.Logger, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(cfg.Log.SlogLevel()), nil
}

func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	dsn := cfg.Database.DSN
	switch {
	case sqlite.IsDSN(dsn):
		return sqlite.New(ctx, dsn)
	case postgres.IsDSN(dsn):
		return postgres.New(ctx, dsn)
	case dsn == "":
		return nil, fmt.Errorf("database dsn is not configured")
	default:
		return nil, fmt.Errorf("unsupported database dsn: %s", dsn)
	}
}

func loadGraph(cfg *config.ProjectConfig, logger *slog.Logger) (*graph.Graph, error) {
	doc, err := ingest.ReadOntology(cfg)
	if err != nil {
		return nil, fmt.Errorf("loading ontology: %w", err)
	}
	g := graph.New(doc.Quads)
	logger.Info("ontology loaded", "path", doc.Path, "triples", g.Len())
	return g, nil
}

// openCatalog builds the catalog over the configured engine. The returned
// close func releases the database when one was opened.
func openCatalog(ctx context.Context, cfg *config.ProjectConfig, logger *slog.Logger) (*catalog.Catalog, func(), error) {
	if cfg.Engine == config.EngineTraversal {
		g, err := loadGraph(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return catalog.New(catalog.NewTraversal(g)), func() {}, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	count, err := db.CountTriples(ctx)
	if err != nil {
		db.Close(ctx)
		return nil, nil, fmt.Errorf("checking database: %w", err)
	}
	if count == 0 {
		logger.Warn("database holds no triples, run `ontolosafi ingest` first")
	}
	logger.Info("sql engine ready", "triples", count)
	return catalog.New(db), func() { db.Close(ctx) }, nil
}
