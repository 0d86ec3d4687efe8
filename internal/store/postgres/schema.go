package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS triples (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    subject     TEXT NOT NULL,
    predicate   TEXT NOT NULL,
    object      TEXT NOT NULL,
    object_kind TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sources (
    source    TEXT PRIMARY KEY,
    hash      TEXT NOT NULL,
    loaded_at TIMESTAMPTZ DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_triples_subject_predicate ON triples (subject, predicate);
CREATE INDEX IF NOT EXISTS idx_triples_predicate_object ON triples (predicate, object);
`
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("executing DDL: %w", err)
	}
	return nil
}
