package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/cayleygraph/quad"

	"ontolosafi/internal/config"
	"ontolosafi/internal/parser"
	"ontolosafi/internal/store"
)

// Store is the part of store.Store an ingest run writes through.
type Store interface {
	EnsureSchema(ctx context.Context) error
	SourceHash(ctx context.Context, source string) (string, error)
	ReplaceTriples(ctx context.Context, source, hash string, triples []store.Triple) error
}

type Result struct {
	Source  string
	Hash    string
	Triples int
	Skipped bool
}

type Options struct {
	Full bool
}

// Document is a decoded ontology file together with the hash of its bytes.
type Document struct {
	Path  string
	Hash  string
	Quads []quad.Quad
}

// ReadOntology loads the ontology document named by the project config.
func ReadOntology(cfg *config.ProjectConfig) (*Document, error) {
	path := cfg.Ontology.Path
	format, err := parser.ParseFormat(cfg.Ontology.Format)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format, err = parser.FormatFromPath(path)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ontology: %w", err)
	}

	quads, err := parser.Parse(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Document{Path: path, Hash: computeHash(data), Quads: quads}, nil
}

// Run loads the configured ontology into db. An unchanged document is
// skipped unless options.Full is set.
func Run(ctx context.Context, cfg *config.ProjectConfig, db Store, options Options) (*Result, error) {
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	doc, err := ReadOntology(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{Source: doc.Path, Hash: doc.Hash}

	if !options.Full {
		existing, err := db.SourceHash(ctx, doc.Path)
		if err != nil {
			return nil, fmt.Errorf("get source hash for %s: %w", doc.Path, err)
		}
		if existing == doc.Hash {
			result.Skipped = true
			return result, nil
		}
	}

	triples := store.TriplesFromQuads(doc.Quads)
	if err := db.ReplaceTriples(ctx, doc.Path, doc.Hash, triples); err != nil {
		return nil, fmt.Errorf("replacing triples for %s: %w", doc.Path, err)
	}
	result.Triples = len(triples)

	return result, nil
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
