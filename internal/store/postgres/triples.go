package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ontolosafi/internal/store"
)

func (c *Client) ReplaceTriples(ctx context.Context, source, hash string, triples []store.Triple) error {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// identity restarts so that id order stays load order
	if _, err := tx.Exec(ctx, `TRUNCATE triples RESTART IDENTITY`); err != nil {
		return fmt.Errorf("clearing triples: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sources`); err != nil {
		return fmt.Errorf("clearing sources: %w", err)
	}

	rows := make([][]any, 0, len(triples))
	for _, t := range triples {
		rows = append(rows, []any{t.Subject, t.Predicate, t.Object, t.ObjectKind})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"triples"},
		[]string{"subject", "predicate", "object", "object_kind"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copying triples: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO sources (source, hash) VALUES ($1, $2)`, source, hash); err != nil {
		return fmt.Errorf("recording source: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing triples: %w", err)
	}
	return nil
}

func (c *Client) SourceHash(ctx context.Context, source string) (string, error) {
	var hash string
	err := c.pool.QueryRow(ctx, `SELECT hash FROM sources WHERE source = $1`, source).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting source hash: %w", err)
	}
	return hash, nil
}

func (c *Client) CountTriples(ctx context.Context) (int64, error) {
	var count int64
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM triples`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting triples: %w", err)
	}
	return count, nil
}
