package store

import (
	"context"

	"ontolosafi/internal/catalog"
)

// Store is a SQL backed triple table. It answers catalog queries with
// aggregating SQL instead of walking the graph in memory.
type Store interface {
	catalog.Engine

	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	ReplaceTriples(ctx context.Context, source, hash string, triples []Triple) error
	SourceHash(ctx context.Context, source string) (string, error)
	CountTriples(ctx context.Context) (int64, error)

	RunSQL(ctx context.Context, query string, args ...any) ([]map[string]any, error)
}
