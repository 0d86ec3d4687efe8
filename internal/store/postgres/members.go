package postgres

import (
	"context"
	"fmt"

	"ontolosafi/internal/catalog"
	"ontolosafi/internal/store"
)

func (c *Client) Members(ctx context.Context, q catalog.Query) ([]catalog.Member, error) {
	query, args := store.MembersQuery(store.Dollar, q)

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s members: %w", q.Class, err)
	}
	defer rows.Close()

	members := make([]catalog.Member, 0)
	for rows.Next() {
		var subject string
		values := make([]*string, len(q.Properties))
		kinds := make([]*string, len(q.Properties))
		var subtype *string

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
			if values[i] != nil {
				cells[i].Object = *values[i]
			}
			if kinds[i] != nil {
				cells[i].Kind = *kinds[i]
			}
		}
		var sub string
		if subtype != nil {
			sub = *subtype
		}
		members = append(members, store.NewMember(q, subject, cells, sub))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}
	return members, nil
}
