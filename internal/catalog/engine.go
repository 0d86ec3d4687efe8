// Package catalog projects ontology individuals into flat, display-ready
// records. The projection rules live here once; an Engine only resolves
// class members and their raw property values, so the in-memory traversal
// and the SQL engines produce the same records.
package catalog

import (
	"context"

	"ontolosafi/internal/graph"
	"ontolosafi/internal/ontology"
)

// Property names an ontology property by local name. Reference properties
// may point at another individual, which is shown by its display name; any
// other property shows a resource as its full IRI.
type Property struct {
	Name      string
	Reference bool
}

// Query selects the members of one class. Class and property names are
// local names inside the ontology namespace.
type Query struct {
	Class      string
	Properties []Property
	// Subtype asks the engine for one more ontology type carried by each
	// member besides Class.
	Subtype bool
}

type Member struct {
	Subject string
	Subtype string
	Values  map[string]ontology.Value
}

// Value returns the value of a property, ontology.Absent when missing.
func (m Member) Value(name string) ontology.Value {
	return m.Values[name]
}

// Engine lists class members in discovery order with one value per
// requested property. Which value is returned for a multi-valued property
// is engine specific.
type Engine interface {
	Members(ctx context.Context, q Query) ([]Member, error)
}

var _ Engine = (*Traversal)(nil)

// Traversal walks an in-memory graph. It never fails.
type Traversal struct {
	g *graph.Graph
}

func NewTraversal(g *graph.Graph) *Traversal {
	return &Traversal{g: g}
}

func (t *Traversal) Members(ctx context.Context, q Query) ([]Member, error) {
	class := ontology.IRI(q.Class)
	subjects := t.g.SubjectsOfType(class)

	members := make([]Member, 0, len(subjects))
	for _, subject := range subjects {
		member := Member{
			Subject: subject,
			Values:  make(map[string]ontology.Value, len(q.Properties)),
		}
		for _, prop := range q.Properties {
			member.Values[prop.Name] = t.g.Property(subject, prop.Name)
		}
		if q.Subtype {
			member.Subtype = t.subtype(subject, class)
		}
		members = append(members, member)
	}
	return members, nil
}

func (t *Traversal) subtype(subject, class string) string {
	for _, typ := range t.g.Types(subject) {
		if typ != class && ontology.InNamespace(typ) {
			return typ
		}
	}
	return ""
}
