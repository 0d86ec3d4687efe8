// Package ontology holds the ontolosafi vocabulary and the rules that turn
// RDF terms into display strings.
package ontology

import "strings"

// Namespace prefixes every class and property of the tourism ontology.
const Namespace = "http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#"

const (
	ClassHeritageSite  = "SitePatrimonial"
	ClassCulturalEvent = "ÉvénementCulturel"
	ClassHandicraft    = "Artisanat"
	ClassArtisan       = "Artisan"
	ClassAccommodation = "Hébergement"
	ClassRestaurant    = "Restauration"
	ClassTransport     = "Transport"
	ClassTouristGuide  = "GuideTouristique"
)

const (
	PropDescription = "aPourDescription"
	PropLocation    = "aPourLocalisation"
	PropCoordinates = "aPourCoordonnées"
	PropImage       = "imageURL"
	PropDate        = "aPourDate"
	PropOrganizer   = "organiséPar"
	PropProfession  = "aPourProfession"
	PropSpecialty   = "aPourSpécialité"
	PropWorkshop    = "aPourAtelier"
	PropType        = "aPourType"
	PropServedZone  = "zoneDesservie"
	PropLanguage    = "parleLangue"
	PropCoveredZone = "zoneCouverte"
)

// Classes lists every class a projector selects on, in projection order.
var Classes = []string{
	ClassHeritageSite,
	ClassCulturalEvent,
	ClassHandicraft,
	ClassArtisan,
	ClassAccommodation,
	ClassRestaurant,
	ClassTransport,
	ClassTouristGuide,
}

// IRI expands a local name into a full ontology IRI.
func IRI(local string) string {
	return Namespace + local
}

// InNamespace reports whether iri belongs to the ontology namespace.
func InNamespace(iri string) bool {
	return strings.HasPrefix(iri, Namespace)
}

// DisplayName derives the human readable name of a resource: the fragment
// after the last '#', with underscores replaced by spaces. An IRI without a
// fragment separator is used whole.
func DisplayName(iri string) string {
	if idx := strings.LastIndex(iri, "#"); idx >= 0 {
		iri = iri[idx+1:]
	}
	return strings.ReplaceAll(iri, "_", " ")
}
