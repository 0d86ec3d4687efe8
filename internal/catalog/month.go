package catalog

import (
	"context"
	"fmt"
	"sort"

	"ontolosafi/internal/ontology"
)

// EventsByMonth returns the events whose date contains month, compared
// case-insensitively as a plain substring. The token is free text: "" keeps
// every event, including those without a date.
func (c *Catalog) EventsByMonth(ctx context.Context, month string) ([]EventSummary, error) {
	members, err := c.engine.Members(ctx, eventSummaryQuery)
	if err != nil {
		return nil, fmt.Errorf("filtering events: %w", err)
	}

	events := make([]EventSummary, 0)
	for _, m := range members {
		eventDate := text(m, date)
		if !ontology.ContainsFold(eventDate, month) {
			continue
		}
		events = append(events, EventSummary{
			Name:        ontology.DisplayName(m.Subject),
			Date:        eventDate,
			Organizer:   text(m, organizer),
			Description: text(m, description),
		})
	}
	return events, nil
}

// EventMonths lists the months named in event dates, in calendar order.
func (c *Catalog) EventMonths(ctx context.Context) ([]ontology.Month, error) {
	members, err := c.engine.Members(ctx, eventSummaryQuery)
	if err != nil {
		return nil, fmt.Errorf("listing event months: %w", err)
	}

	seen := make(map[ontology.Month]struct{})
	months := make([]ontology.Month, 0)
	for _, m := range members {
		month, ok := ontology.MonthOf(text(m, date))
		if !ok {
			continue
		}
		if _, exists := seen[month]; exists {
			continue
		}
		seen[month] = struct{}{}
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
	return months, nil
}
