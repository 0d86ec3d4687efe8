// Package graph keeps a loaded ontology in memory and answers the property
// lookups the projectors need. A Graph is immutable once built, so any
// number of goroutines may read it concurrently.
package graph

import (
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"

	"ontolosafi/internal/ontology"
)

var rdfType = string(quad.IRI(rdf.Type).Full())

type Graph struct {
	quads   []quad.Quad
	nodes   map[string]*node
	members map[string][]string
}

type node struct {
	types []string
	props map[string][]quad.Value
}

// New indexes quads in the order given. Subjects, types and property values
// keep that order, which is what "first encountered" means for lookups.
func New(quads []quad.Quad) *Graph {
	g := &Graph{
		quads:   make([]quad.Quad, 0, len(quads)),
		nodes:   make(map[string]*node),
		members: make(map[string][]string),
	}
	for _, q := range quads {
		if q.Subject == nil || q.Predicate == nil || q.Object == nil {
			continue
		}
		g.quads = append(g.quads, q)

		subject := TermKey(q.Subject)
		predicate := TermKey(q.Predicate)
		n := g.node(subject)
		n.props[predicate] = append(n.props[predicate], q.Object)

		if predicate != rdfType {
			continue
		}
		class := TermKey(q.Object)
		if contains(n.types, class) {
			continue
		}
		n.types = append(n.types, class)
		g.members[class] = append(g.members[class], subject)
	}
	return g
}

func (g *Graph) node(subject string) *node {
	n, ok := g.nodes[subject]
	if !ok {
		n = &node{props: make(map[string][]quad.Value)}
		g.nodes[subject] = n
	}
	return n
}

// Len returns the number of triples held.
func (g *Graph) Len() int {
	return len(g.quads)
}

// Quads returns a copy of the triples in load order.
func (g *Graph) Quads() []quad.Quad {
	return append([]quad.Quad(nil), g.quads...)
}

// SubjectsOfType lists the subjects typed with class, in discovery order.
func (g *Graph) SubjectsOfType(class string) []string {
	return append([]string(nil), g.members[class]...)
}

// Types lists every rdf:type of subject, in discovery order.
func (g *Graph) Types(subject string) []string {
	n, ok := g.nodes[subject]
	if !ok {
		return nil
	}
	return append([]string(nil), n.types...)
}

// Objects lists every value of predicate on subject.
func (g *Graph) Objects(subject, predicate string) []quad.Value {
	n, ok := g.nodes[subject]
	if !ok {
		return nil
	}
	return append([]quad.Value(nil), n.props[predicate]...)
}

// Value returns the first value of predicate on subject, or nil.
func (g *Graph) Value(subject, predicate string) quad.Value {
	n, ok := g.nodes[subject]
	if !ok {
		return nil
	}
	values := n.props[predicate]
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

// Property resolves an ontology property by local name. A missing triple
// yields ontology.Absent, never an error.
func (g *Graph) Property(subject, local string) ontology.Value {
	return ontology.FromQuad(g.Value(subject, ontology.IRI(local)))
}

// Subjects lists every subject that carries at least one triple.
func (g *Graph) Subjects() []string {
	seen := make(map[string]struct{}, len(g.nodes))
	subjects := make([]string, 0, len(g.nodes))
	for _, q := range g.quads {
		key := TermKey(q.Subject)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		subjects = append(subjects, key)
	}
	return subjects
}

// TermKey is the string form used to index a term: the bare IRI for
// resources, "_:id" for blank nodes and the lexical form for literals.
func TermKey(v quad.Value) string {
	switch t := v.(type) {
	case quad.IRI:
		return string(t)
	case quad.BNode:
		return "_:" + string(t)
	default:
		return ontology.FromQuad(v).Text
	}
}

func contains(items []string, item string) bool {
	for _, existing := range items {
		if existing == item {
			return true
		}
	}
	return false
}
