package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ontolosafi/internal/store"
)

// ReplaceTriples swaps the whole triple table for the given document in one
// transaction and records its hash.
func (c *Client) ReplaceTriples(ctx context.Context, source, hash string, triples []store.Triple) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM triples`); err != nil {
		return fmt.Errorf("clearing triples: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sources`); err != nil {
		return fmt.Errorf("clearing sources: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO triples (subject, predicate, object, object_kind) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range triples {
		if _, err := stmt.ExecContext(ctx, t.Subject, t.Predicate, t.Object, t.ObjectKind); err != nil {
			return fmt.Errorf("inserting triple: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO sources (source, hash, loaded_at) VALUES (?, ?, datetime('now'))`, source, hash); err != nil {
		return fmt.Errorf("recording source: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing triples: %w", err)
	}
	return nil
}

// SourceHash returns the hash recorded for source, "" when never loaded.
func (c *Client) SourceHash(ctx context.Context, source string) (string, error) {
	var hash string
	err := c.db.QueryRowContext(ctx, `SELECT hash FROM sources WHERE source = ?`, source).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting source hash: %w", err)
	}
	return hash, nil
}

func (c *Client) CountTriples(ctx context.Context) (int64, error) {
	var count int64
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM triples`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting triples: %w", err)
	}
	return count, nil
}
