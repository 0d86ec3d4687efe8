package store

import (
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ontolosafi/internal/catalog"
	"ontolosafi/internal/ontology"
)

func TestMembersQuery(t *testing.T) {
	q := catalog.Query{
		Class: ontology.ClassHeritageSite,
		Properties: []catalog.Property{
			{Name: ontology.PropDescription},
			{Name: ontology.PropLocation, Reference: true},
		},
		Subtype: true,
	}

	t.Run("dollar placeholders follow argument order", func(t *testing.T) {
		query, args := MembersQuery(Dollar, q)
		require.Len(t, args, 10)
		for i := 1; i <= len(args); i++ {
			assert.Contains(t, query, Dollar(i))
		}
		assert.Equal(t, ontology.IRI(ontology.PropDescription), args[0])
		assert.Equal(t, ontology.IRI(ontology.PropDescription), args[1])
		assert.Equal(t, ontology.IRI(ontology.PropLocation), args[2])
		assert.Equal(t, ontology.IRI(ontology.PropLocation), args[3])
		assert.Equal(t, rdfType, args[4])
		assert.Equal(t, ontology.IRI(ontology.ClassHeritageSite), args[5])
		assert.Equal(t, namespaceLen, args[6])
		assert.Equal(t, ontology.Namespace, args[7])
		assert.Equal(t, rdfType, args[8])
		assert.Equal(t, ontology.IRI(ontology.ClassHeritageSite), args[9])
	})

	t.Run("question marks match argument count", func(t *testing.T) {
		query, args := MembersQuery(QuestionMark, q)
		assert.Equal(t, len(args), strings.Count(query, "?"))
		assert.NotContains(t, query, ontology.Namespace)
	})

	t.Run("every property selects its kind", func(t *testing.T) {
		query, _ := MembersQuery(QuestionMark, q)
		assert.Equal(t, len(q.Properties), strings.Count(query, "MIN(v.object)"))
		assert.Equal(t, len(q.Properties), strings.Count(query, "v.object_kind"))
	})

	t.Run("without subtype", func(t *testing.T) {
		query, args := MembersQuery(QuestionMark, catalog.Query{Class: ontology.ClassArtisan})
		assert.Len(t, args, 2)
		assert.NotContains(t, query, "ORDER BY t.id")
	})
}

func TestNewMember(t *testing.T) {
	q := catalog.Query{
		Class: ontology.ClassCulturalEvent,
		Properties: []catalog.Property{
			{Name: ontology.PropDate},
			{Name: ontology.PropLocation, Reference: true},
			{Name: ontology.PropOrganizer, Reference: true},
			{Name: ontology.PropImage},
			{Name: ontology.PropCoordinates},
		},
	}

	member := NewMember(q, ontology.IRI("Festival"), []Cell{
		{Object: "15 mars 2025", Kind: KindLiteral},
		{Object: "http://maps.example.org/?q=bab_makina", Kind: KindLiteral},
		{Object: "_:b1", Kind: KindBlank},
		{Object: "http://example.org/img/festival.jpg", Kind: KindIRI},
		{},
	}, "")

	assert.Equal(t, ontology.Literal("15 mars 2025"), member.Value(ontology.PropDate))
	assert.Equal(t, ontology.Literal("http://maps.example.org/?q=bab_makina"), member.Value(ontology.PropLocation))
	assert.Equal(t, ontology.Blank("_:b1"), member.Value(ontology.PropOrganizer))
	assert.Equal(t, ontology.Resource("http://example.org/img/festival.jpg"), member.Value(ontology.PropImage))
	assert.True(t, member.Value(ontology.PropCoordinates).IsAbsent())
	assert.Len(t, member.Values, 5)
}

func TestNewMemberShortRow(t *testing.T) {
	q := catalog.Query{Properties: []catalog.Property{{Name: "a"}, {Name: "b"}}}
	member := NewMember(q, "s", []Cell{{Object: "x", Kind: KindLiteral}}, "")
	assert.Equal(t, ontology.Literal("x"), member.Value("a"))
	assert.True(t, member.Value("b").IsAbsent())
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		expected ontology.Value
	}{
		{name: "null", cell: Cell{}, expected: ontology.Absent},
		{name: "iri", cell: Cell{Object: ontology.IRI("Fes"), Kind: KindIRI}, expected: ontology.Resource(ontology.IRI("Fes"))},
		{name: "literal looking like an iri", cell: Cell{Object: "http://example.org/x", Kind: KindLiteral}, expected: ontology.Literal("http://example.org/x")},
		{name: "blank node", cell: Cell{Object: "_:n0", Kind: KindBlank}, expected: ontology.Blank("_:n0")},
		{name: "empty literal", cell: Cell{Kind: KindLiteral}, expected: ontology.Literal("")},
		{name: "unknown kind falls back to lexical tagging", cell: Cell{Object: "http://example.org/x"}, expected: ontology.Resource("http://example.org/x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cell.Value())
		})
	}
}

func TestTriplesFromQuads(t *testing.T) {
	triples := TriplesFromQuads([]quad.Quad{
		{Subject: quad.IRI("http://x#a"), Predicate: quad.IRI("http://x#p"), Object: quad.IRI("http://x#b")},
		{Subject: quad.BNode("n0"), Predicate: quad.IRI("http://x#p"), Object: quad.String("texte")},
		{Subject: quad.IRI("http://x#a"), Predicate: quad.IRI("http://x#p"), Object: quad.BNode("n1")},
		{Subject: quad.IRI("http://x#a"), Predicate: quad.IRI("http://x#p")},
	})

	assert.Equal(t, []Triple{
		{Subject: "http://x#a", Predicate: "http://x#p", Object: "http://x#b", ObjectKind: KindIRI},
		{Subject: "_:n0", Predicate: "http://x#p", Object: "texte", ObjectKind: KindLiteral},
		{Subject: "http://x#a", Predicate: "http://x#p", Object: "_:n1", ObjectKind: KindBlank},
	}, triples)
}
