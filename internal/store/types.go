package store

import (
	"github.com/cayleygraph/quad"

	"ontolosafi/internal/graph"
)

const (
	KindIRI     = "iri"
	KindBlank   = "bnode"
	KindLiteral = "literal"
)

// Triple is the row form of a quad. Object holds the IRI, "_:id" or the
// lexical form of a literal; ObjectKind tells them apart.
type Triple struct {
	Subject    string
	Predicate  string
	Object     string
	ObjectKind string
}

func TripleFromQuad(q quad.Quad) Triple {
	return Triple{
		Subject:    graph.TermKey(q.Subject),
		Predicate:  graph.TermKey(q.Predicate),
		Object:     graph.TermKey(q.Object),
		ObjectKind: termKind(q.Object),
	}
}

func TriplesFromQuads(quads []quad.Quad) []Triple {
	triples := make([]Triple, 0, len(quads))
	for _, q := range quads {
		if q.Subject == nil || q.Predicate == nil || q.Object == nil {
			continue
		}
		triples = append(triples, TripleFromQuad(q))
	}
	return triples
}

func termKind(v quad.Value) string {
	switch v.(type) {
	case quad.IRI:
		return KindIRI
	case quad.BNode:
		return KindBlank
	default:
		return KindLiteral
	}
}
