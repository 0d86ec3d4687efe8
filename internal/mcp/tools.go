package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"ontolosafi/internal/catalog"
)

type ListInput struct{}

type FilterEventsByMonthInput struct {
	Month string `json:"month" jsonschema:"month name or any fragment of an event date, matched case-insensitively"`
}

type HeritageSitesOutput struct {
	HeritageSites []catalog.Site `json:"heritage_sites"`
}

type EventsOutput struct {
	Events []catalog.Event `json:"events"`
}

type HandicraftsOutput struct {
	Handicrafts []map[string]string `json:"handicrafts"`
}

type ServicesOutput struct {
	Services []map[string]string `json:"services"`
}

type EventSummariesOutput struct {
	Events []catalog.EventSummary `json:"events"`
}

type EventMonthsOutput struct {
	Months []string `json:"months"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_heritage_sites",
		Description: "List heritage sites with description, location, coordinates, image and type",
	}, s.handleListHeritageSites)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_events",
		Description: "List cultural events with date, organizer and location",
	}, s.handleListEvents)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_handicrafts",
		Description: "List craft items followed by artisans, each tagged by type",
	}, s.handleListHandicrafts)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_services",
		Description: "List accommodations, restaurants, transport services and guides, each tagged by category",
	}, s.handleListServices)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "filter_events_by_month",
		Description: "List events whose date contains the given month",
	}, s.handleFilterEventsByMonth)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_event_months",
		Description: "List the months in which events take place",
	}, s.handleListEventMonths)
}

func (s *Server) handleListHeritageSites(ctx context.Context, req *sdk.CallToolRequest, input ListInput) (*sdk.CallToolResult, HeritageSitesOutput, error) {
	sites, err := s.catalog.HeritageSites(ctx)
	if err != nil {
		return nil, HeritageSitesOutput{}, err
	}
	return nil, HeritageSitesOutput{HeritageSites: sites}, nil
}

func (s *Server) handleListEvents(ctx context.Context, req *sdk.CallToolRequest, input ListInput) (*sdk.CallToolResult, EventsOutput, error) {
	events, err := s.catalog.Events(ctx)
	if err != nil {
		return nil, EventsOutput{}, err
	}
	return nil, EventsOutput{Events: events}, nil
}

func (s *Server) handleListHandicrafts(ctx context.Context, req *sdk.CallToolRequest, input ListInput) (*sdk.CallToolResult, HandicraftsOutput, error) {
	items, err := s.catalog.Handicrafts(ctx)
	if err != nil {
		return nil, HandicraftsOutput{}, err
	}

	output := make([]map[string]string, 0, len(items))
	for _, item := range items {
		output = append(output, item.Fields())
	}
	return nil, HandicraftsOutput{Handicrafts: output}, nil
}

func (s *Server) handleListServices(ctx context.Context, req *sdk.CallToolRequest, input ListInput) (*sdk.CallToolResult, ServicesOutput, error) {
	services, err := s.catalog.Services(ctx)
	if err != nil {
		return nil, ServicesOutput{}, err
	}

	output := make([]map[string]string, 0, len(services))
	for _, service := range services {
		output = append(output, service.Fields())
	}
	return nil, ServicesOutput{Services: output}, nil
}

func (s *Server) handleFilterEventsByMonth(ctx context.Context, req *sdk.CallToolRequest, input FilterEventsByMonthInput) (*sdk.CallToolResult, EventSummariesOutput, error) {
	if input.Month == "" {
		return nil, EventSummariesOutput{}, fmt.Errorf("month is required")
	}
	events, err := s.catalog.EventsByMonth(ctx, input.Month)
	if err != nil {
		return nil, EventSummariesOutput{}, err
	}
	return nil, EventSummariesOutput{Events: events}, nil
}

func (s *Server) handleListEventMonths(ctx context.Context, req *sdk.CallToolRequest, input ListInput) (*sdk.CallToolResult, EventMonthsOutput, error) {
	months, err := s.catalog.EventMonths(ctx)
	if err != nil {
		return nil, EventMonthsOutput{}, err
	}

	output := make([]string, 0, len(months))
	for _, month := range months {
		output = append(output, month.String())
	}
	return nil, EventMonthsOutput{Months: output}, nil
}
