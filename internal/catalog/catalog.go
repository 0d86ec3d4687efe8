package catalog

import (
	"context"
	"fmt"

	"ontolosafi/internal/ontology"
)

const (
	DefaultSiteType          = "Site Patrimonial"
	DefaultAccommodationType = "Hébergement"
	DefaultRestaurantType    = "Restauration"
	DefaultTransportType     = "Transport"
	DefaultGuideProfession   = "Guide Touristique"
)

var (
	description = Property{Name: ontology.PropDescription}
	location    = Property{Name: ontology.PropLocation, Reference: true}
	coordinates = Property{Name: ontology.PropCoordinates}
	image       = Property{Name: ontology.PropImage}
	date        = Property{Name: ontology.PropDate}
	organizer   = Property{Name: ontology.PropOrganizer, Reference: true}
	profession  = Property{Name: ontology.PropProfession}
	specialty   = Property{Name: ontology.PropSpecialty}
	workshop    = Property{Name: ontology.PropWorkshop, Reference: true}
	serviceType = Property{Name: ontology.PropType}
	servedZone  = Property{Name: ontology.PropServedZone, Reference: true}
	language    = Property{Name: ontology.PropLanguage, Reference: true}
	coveredZone = Property{Name: ontology.PropCoveredZone, Reference: true}
)

var (
	siteQuery = Query{
		Class:      ontology.ClassHeritageSite,
		Properties: []Property{description, location, coordinates, image},
		Subtype:    true,
	}
	eventQuery = Query{
		Class:      ontology.ClassCulturalEvent,
		Properties: []Property{date, description, organizer, location, coordinates},
	}
	craftQuery = Query{
		Class:      ontology.ClassHandicraft,
		Properties: []Property{description, image, coordinates},
	}
	artisanQuery = Query{
		Class:      ontology.ClassArtisan,
		Properties: []Property{profession, specialty, workshop, coordinates},
	}
	accommodationQuery = Query{
		Class:      ontology.ClassAccommodation,
		Properties: []Property{serviceType, location, description, image, coordinates},
	}
	restaurantQuery = Query{
		Class:      ontology.ClassRestaurant,
		Properties: []Property{serviceType, location, image, coordinates},
	}
	transportQuery = Query{
		Class:      ontology.ClassTransport,
		Properties: []Property{serviceType, servedZone, coordinates},
	}
	guideQuery = Query{
		Class:      ontology.ClassTouristGuide,
		Properties: []Property{profession, language, coveredZone, coordinates},
	}
	eventSummaryQuery = Query{
		Class:      ontology.ClassCulturalEvent,
		Properties: []Property{date, organizer, description},
	}
)

// Queries lists every query the catalog issues, for engines and checks that
// need to know which properties are projected.
func Queries() []Query {
	return []Query{
		siteQuery,
		eventQuery,
		craftQuery,
		artisanQuery,
		accommodationQuery,
		restaurantQuery,
		transportQuery,
		guideQuery,
	}
}

type Catalog struct {
	engine Engine
}

func New(engine Engine) *Catalog {
	return &Catalog{engine: engine}
}

func (c *Catalog) HeritageSites(ctx context.Context) ([]Site, error) {
	members, err := c.engine.Members(ctx, siteQuery)
	if err != nil {
		return nil, fmt.Errorf("listing heritage sites: %w", err)
	}

	sites := make([]Site, 0, len(members))
	for _, m := range members {
		siteType := DefaultSiteType
		if m.Subtype != "" {
			siteType = ontology.DisplayName(m.Subtype)
		}
		sites = append(sites, Site{
			Name:        ontology.DisplayName(m.Subject),
			Description: text(m, description),
			Location:    text(m, location),
			Coordinates: text(m, coordinates),
			Image:       text(m, image),
			Type:        siteType,
		})
	}
	return sites, nil
}

func (c *Catalog) Events(ctx context.Context) ([]Event, error) {
	members, err := c.engine.Members(ctx, eventQuery)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	events := make([]Event, 0, len(members))
	for _, m := range members {
		events = append(events, Event{
			Name:        ontology.DisplayName(m.Subject),
			Date:        text(m, date),
			Description: text(m, description),
			Organizer:   text(m, organizer),
			Location:    text(m, location),
			Coordinates: text(m, coordinates),
		})
	}
	return events, nil
}

// Handicrafts lists craft items followed by artisans.
func (c *Catalog) Handicrafts(ctx context.Context) ([]Handicraft, error) {
	crafts, err := c.engine.Members(ctx, craftQuery)
	if err != nil {
		return nil, fmt.Errorf("listing handicrafts: %w", err)
	}
	artisans, err := c.engine.Members(ctx, artisanQuery)
	if err != nil {
		return nil, fmt.Errorf("listing artisans: %w", err)
	}

	items := make([]Handicraft, 0, len(crafts)+len(artisans))
	for _, m := range crafts {
		items = append(items, CraftItem{
			Name:        ontology.DisplayName(m.Subject),
			Description: text(m, description),
			Image:       text(m, image),
			Coordinates: text(m, coordinates),
		})
	}
	for _, m := range artisans {
		items = append(items, Artisan{
			Name:        ontology.DisplayName(m.Subject),
			Profession:  text(m, profession),
			Specialty:   text(m, specialty),
			Workshop:    text(m, workshop),
			Coordinates: text(m, coordinates),
		})
	}
	return items, nil
}

// Services lists accommodations, restaurants, transports and guides, in
// that order.
func (c *Catalog) Services(ctx context.Context) ([]Service, error) {
	var services []Service

	accommodations, err := c.engine.Members(ctx, accommodationQuery)
	if err != nil {
		return nil, fmt.Errorf("listing accommodations: %w", err)
	}
	for _, m := range accommodations {
		services = append(services, Accommodation{
			Name:        ontology.DisplayName(m.Subject),
			Type:        textOr(m, serviceType, DefaultAccommodationType),
			Location:    text(m, location),
			Description: text(m, description),
			Image:       text(m, image),
			Coordinates: text(m, coordinates),
		})
	}

	restaurants, err := c.engine.Members(ctx, restaurantQuery)
	if err != nil {
		return nil, fmt.Errorf("listing restaurants: %w", err)
	}
	for _, m := range restaurants {
		services = append(services, Restaurant{
			Name:        ontology.DisplayName(m.Subject),
			Type:        textOr(m, serviceType, DefaultRestaurantType),
			Location:    text(m, location),
			Image:       text(m, image),
			Coordinates: text(m, coordinates),
		})
	}

	transports, err := c.engine.Members(ctx, transportQuery)
	if err != nil {
		return nil, fmt.Errorf("listing transports: %w", err)
	}
	for _, m := range transports {
		services = append(services, TransportService{
			Name:        ontology.DisplayName(m.Subject),
			Type:        textOr(m, serviceType, DefaultTransportType),
			Zone:        text(m, servedZone),
			Coordinates: text(m, coordinates),
		})
	}

	guides, err := c.engine.Members(ctx, guideQuery)
	if err != nil {
		return nil, fmt.Errorf("listing guides: %w", err)
	}
	for _, m := range guides {
		services = append(services, Guide{
			Name:        ontology.DisplayName(m.Subject),
			Profession:  textOr(m, profession, DefaultGuideProfession),
			Languages:   text(m, language),
			Zone:        text(m, coveredZone),
			Coordinates: text(m, coordinates),
		})
	}

	if services == nil {
		services = []Service{}
	}
	return services, nil
}

func (c *Catalog) Home(ctx context.Context) (*Home, error) {
	sites, err := c.HeritageSites(ctx)
	if err != nil {
		return nil, err
	}
	events, err := c.Events(ctx)
	if err != nil {
		return nil, err
	}
	handicrafts, err := c.Handicrafts(ctx)
	if err != nil {
		return nil, err
	}
	services, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}
	return &Home{
		HeritageSites: sites,
		Events:        events,
		Handicrafts:   handicrafts,
		Services:      services,
	}, nil
}

func text(m Member, prop Property) string {
	v := m.Value(prop.Name)
	if prop.Reference {
		return ontology.Normalize(v)
	}
	return ontology.Lexical(v)
}

func textOr(m Member, prop Property, fallback string) string {
	if s := text(m, prop); s != "" {
		return s
	}
	return fallback
}
