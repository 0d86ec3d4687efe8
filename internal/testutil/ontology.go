// Package testutil provides a small tourism ontology shared by tests of the
// graph, catalog and SQL engine packages.
package testutil

import (
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"

	"ontolosafi/internal/ontology"
)

var rdfType = quad.IRI(rdf.Type).Full()

const owlNamedIndividual = quad.IRI("http://www.w3.org/2002/07/owl#NamedIndividual")

// IRI expands a local name inside the ontology namespace.
func IRI(local string) quad.IRI {
	return quad.IRI(ontology.IRI(local))
}

func Typed(subject, class string) quad.Quad {
	return quad.Quad{Subject: IRI(subject), Predicate: rdfType, Object: IRI(class)}
}

func Prop(subject, property string, object quad.Value) quad.Quad {
	return quad.Quad{Subject: IRI(subject), Predicate: IRI(property), Object: object}
}

// OntologyQuads is a single-valued fixture: every projected property has at
// most one value, so every engine must project it identically. It mixes
// term kinds on purpose: an IRI image and service type, a literal location
// that looks like a URL and a blank-node organizer.
func OntologyQuads() []quad.Quad {
	return []quad.Quad{
		Typed("Bab_Boujloud", ontology.ClassHeritageSite),
		Typed("Bab_Boujloud", "Monument"),
		quad.Quad{Subject: IRI("Bab_Boujloud"), Predicate: rdfType, Object: owlNamedIndividual},
		Prop("Bab_Boujloud", ontology.PropDescription, quad.String("Porte monumentale de la médina")),
		Prop("Bab_Boujloud", ontology.PropLocation, IRI("Medina_de_Fès")),
		Prop("Bab_Boujloud", ontology.PropCoordinates, quad.String("34.0617,-4.9836")),
		Prop("Bab_Boujloud", ontology.PropImage, quad.String("http://example.org/img/bab.jpg")),

		Typed("Medersa_Bou_Inania", ontology.ClassHeritageSite),
		Prop("Medersa_Bou_Inania", ontology.PropLocation, quad.String("Centre-ville")),

		Typed("Kasbah_Cherarda", ontology.ClassHeritageSite),
		quad.Quad{Subject: IRI("Kasbah_Cherarda"), Predicate: rdfType, Object: owlNamedIndividual},
		Prop("Kasbah_Cherarda", ontology.PropLocation, quad.String("http://maps.example.org/?q=kasbah_cherarda")),

		Typed("Festival_de_Fes", ontology.ClassCulturalEvent),
		Prop("Festival_de_Fes", ontology.PropDate, quad.String("15 mars 2025")),
		Prop("Festival_de_Fes", ontology.PropOrganizer, IRI("Ministère_de_la_Culture")),
		Prop("Festival_de_Fes", ontology.PropDescription, quad.LangString{Value: "Musiques sacrées", Lang: "fr"}),
		Prop("Festival_de_Fes", ontology.PropLocation, IRI("Bab_Makina")),

		Typed("Moussem_Moulay_Idriss", ontology.ClassCulturalEvent),
		Prop("Moussem_Moulay_Idriss", ontology.PropDate, quad.String("20 avril 2025")),
		Prop("Moussem_Moulay_Idriss", ontology.PropOrganizer, quad.String("Association locale")),

		Typed("Nuit_des_Contes", ontology.ClassCulturalEvent),
		Prop("Nuit_des_Contes", ontology.PropOrganizer, quad.BNode("b1")),

		Typed("Zellige", ontology.ClassHandicraft),
		Prop("Zellige", ontology.PropDescription, quad.String("Mosaïque de terre cuite émaillée")),
		Prop("Zellige", ontology.PropImage, quad.String("http://example.org/img/zellige.jpg")),

		Typed("Maalem_Ahmed", ontology.ClassArtisan),
		Prop("Maalem_Ahmed", ontology.PropProfession, quad.String("Zelligeur")),
		Prop("Maalem_Ahmed", ontology.PropSpecialty, quad.String("Fontaines")),
		Prop("Maalem_Ahmed", ontology.PropWorkshop, IRI("Atelier_Seffarine")),

		Typed("Riad_Fes", ontology.ClassAccommodation),
		Prop("Riad_Fes", ontology.PropType, quad.String("Riad")),
		Prop("Riad_Fes", ontology.PropLocation, IRI("Medina_de_Fès")),
		Prop("Riad_Fes", ontology.PropImage, quad.IRI("http://example.org/img/riad_fes.jpg")),

		Typed("Dar_Hatim", ontology.ClassRestaurant),
		Prop("Dar_Hatim", ontology.PropType, IRI("Cuisine_fassie")),
		Prop("Dar_Hatim", ontology.PropLocation, quad.String("Fès el-Bali")),

		Typed("Petit_Taxi", ontology.ClassTransport),
		Prop("Petit_Taxi", ontology.PropServedZone, quad.String("Fès")),

		Typed("Guide_Youssef", ontology.ClassTouristGuide),
		Prop("Guide_Youssef", ontology.PropLanguage, IRI("Français")),
		Prop("Guide_Youssef", ontology.PropCoveredZone, quad.String("Médina")),
	}
}
