package catalog

import "encoding/json"

// Site is a projected heritage site. Type is the display name of the most
// specific ontology class found, or DefaultSiteType.
type Site struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Coordinates string `json:"coordinates"`
	Image       string `json:"image"`
	Type        string `json:"type"`
}

func (s Site) Fields() map[string]string {
	return map[string]string{
		"name":        s.Name,
		"description": s.Description,
		"location":    s.Location,
		"coordinates": s.Coordinates,
		"image":       s.Image,
		"type":        s.Type,
	}
}

type Event struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Organizer   string `json:"organizer"`
	Location    string `json:"location"`
	Coordinates string `json:"coordinates"`
}

func (e Event) Fields() map[string]string {
	return map[string]string{
		"name":        e.Name,
		"date":        e.Date,
		"description": e.Description,
		"organizer":   e.Organizer,
		"location":    e.Location,
		"coordinates": e.Coordinates,
	}
}

// EventSummary is the shape returned by the month filter.
type EventSummary struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Organizer   string `json:"organizer"`
	Description string `json:"description"`
}

func (e EventSummary) Fields() map[string]string {
	return map[string]string{
		"name":        e.Name,
		"date":        e.Date,
		"organizer":   e.Organizer,
		"description": e.Description,
	}
}

const (
	KindCraft   = "craft"
	KindArtisan = "artisan"
)

// Handicraft is either a CraftItem or an Artisan; Kind is the value of the
// "type" discriminator, which is only ever written from Kind.
type Handicraft interface {
	Kind() string
	Fields() map[string]string
	handicraft()
}

type CraftItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Coordinates string `json:"coordinates"`
}

func (CraftItem) Kind() string { return KindCraft }
func (CraftItem) handicraft()  {}

func (c CraftItem) Fields() map[string]string {
	return map[string]string{
		"type":        c.Kind(),
		"name":        c.Name,
		"description": c.Description,
		"image":       c.Image,
		"coordinates": c.Coordinates,
	}
}

func (c CraftItem) MarshalJSON() ([]byte, error) {
	type fields CraftItem
	return json.Marshal(struct {
		Type string `json:"type"`
		fields
	}{c.Kind(), fields(c)})
}

type Artisan struct {
	Name        string `json:"name"`
	Profession  string `json:"profession"`
	Specialty   string `json:"specialty"`
	Workshop    string `json:"workshop"`
	Coordinates string `json:"coordinates"`
}

func (Artisan) Kind() string { return KindArtisan }
func (Artisan) handicraft()  {}

func (a Artisan) Fields() map[string]string {
	return map[string]string{
		"type":        a.Kind(),
		"name":        a.Name,
		"profession":  a.Profession,
		"specialty":   a.Specialty,
		"workshop":    a.Workshop,
		"coordinates": a.Coordinates,
	}
}

func (a Artisan) MarshalJSON() ([]byte, error) {
	type fields Artisan
	return json.Marshal(struct {
		Type string `json:"type"`
		fields
	}{a.Kind(), fields(a)})
}

const (
	CategoryAccommodation = "hébergement"
	CategoryRestaurant    = "restauration"
	CategoryTransport     = "transport"
	CategoryGuide         = "guide"
)

// Service is one of Accommodation, Restaurant, TransportService or Guide;
// Kind is the value of the "category" discriminator, which is only ever
// written from Kind.
type Service interface {
	Kind() string
	Fields() map[string]string
	service()
}

type Accommodation struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Coordinates string `json:"coordinates"`
}

func (Accommodation) Kind() string { return CategoryAccommodation }
func (Accommodation) service()     {}

func (a Accommodation) Fields() map[string]string {
	return map[string]string{
		"category":    a.Kind(),
		"name":        a.Name,
		"type":        a.Type,
		"location":    a.Location,
		"description": a.Description,
		"image":       a.Image,
		"coordinates": a.Coordinates,
	}
}

func (a Accommodation) MarshalJSON() ([]byte, error) {
	type fields Accommodation
	return json.Marshal(struct {
		Category string `json:"category"`
		fields
	}{a.Kind(), fields(a)})
}

type Restaurant struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Coordinates string `json:"coordinates"`
}

func (Restaurant) Kind() string { return CategoryRestaurant }
func (Restaurant) service()     {}

func (r Restaurant) Fields() map[string]string {
	return map[string]string{
		"category":    r.Kind(),
		"name":        r.Name,
		"type":        r.Type,
		"location":    r.Location,
		"image":       r.Image,
		"coordinates": r.Coordinates,
	}
}

func (r Restaurant) MarshalJSON() ([]byte, error) {
	type fields Restaurant
	return json.Marshal(struct {
		Category string `json:"category"`
		fields
	}{r.Kind(), fields(r)})
}

type TransportService struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Zone        string `json:"zone"`
	Coordinates string `json:"coordinates"`
}

func (TransportService) Kind() string { return CategoryTransport }
func (TransportService) service()     {}

func (t TransportService) Fields() map[string]string {
	return map[string]string{
		"category":    t.Kind(),
		"name":        t.Name,
		"type":        t.Type,
		"zone":        t.Zone,
		"coordinates": t.Coordinates,
	}
}

func (t TransportService) MarshalJSON() ([]byte, error) {
	type fields TransportService
	return json.Marshal(struct {
		Category string `json:"category"`
		fields
	}{t.Kind(), fields(t)})
}

type Guide struct {
	Name        string `json:"name"`
	Profession  string `json:"profession"`
	Languages   string `json:"languages"`
	Zone        string `json:"zone"`
	Coordinates string `json:"coordinates"`
}

func (Guide) Kind() string { return CategoryGuide }
func (Guide) service()     {}

func (g Guide) Fields() map[string]string {
	return map[string]string{
		"category":    g.Kind(),
		"name":        g.Name,
		"profession":  g.Profession,
		"languages":   g.Languages,
		"zone":        g.Zone,
		"coordinates": g.Coordinates,
	}
}

func (g Guide) MarshalJSON() ([]byte, error) {
	type fields Guide
	return json.Marshal(struct {
		Category string `json:"category"`
		fields
	}{g.Kind(), fields(g)})
}

// Home gathers the four lists rendered on the landing page.
type Home struct {
	HeritageSites []Site       `json:"heritage_sites"`
	Events        []Event      `json:"events"`
	Handicrafts   []Handicraft `json:"handicrafts"`
	Services      []Service    `json:"services"`
}
