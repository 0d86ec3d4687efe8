package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"ontolosafi/internal/catalog"
	"ontolosafi/internal/store"
)

func (c *Client) Members(ctx context.Context, q catalog.Query) ([]catalog.Member, error) {
	query, args := store.MembersQuery(store.QuestionMark, q)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s members: %w", q.Class, err)
	}
	defer rows.Close()

	members := make([]catalog.Member, 0)
	for rows.Next() {
		var subject string
		values := make([]sql.NullString, len(q.Properties))
		kinds := make([]sql.NullString, len(q.Properties))
		var subtype sql.NullString

		dest := make([]any, 0, 2*len(values)+2)
		dest = append(dest, &subject)
		for i := range values {
			dest = append(dest, &values[i], &kinds[i])
		}
		if q.Subtype {
			dest = append(dest, &subtype)
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}

		cells := make([]store.Cell, len(values))
		for i := range values {
			cells[i] = store.Cell{Object: values[i].String, Kind: kinds[i].String}
		}
		members = append(members, store.NewMember(q, subject, cells, subtype.String))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}
	return members, nil
}
