package graph

import (
	"sync"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ontolosafi/internal/ontology"
)

func iri(local string) quad.IRI {
	return quad.IRI(ontology.IRI(local))
}

func typed(subject, class string) quad.Quad {
	return quad.Make(iri(subject), quad.IRI(rdfType), iri(class), nil)
}

func prop(subject, property string, object quad.Value) quad.Quad {
	return quad.Make(iri(subject), iri(property), object, nil)
}

func testGraph() *Graph {
	return New([]quad.Quad{
		typed("Bab_Boujloud", ontology.ClassHeritageSite),
		typed("Bab_Boujloud", "Monument"),
		prop("Bab_Boujloud", ontology.PropLocation, iri("Medina_de_Fès")),
		prop("Bab_Boujloud", ontology.PropLocation, quad.String("Fès el-Bali")),
		typed("Medersa_Bou_Inania", ontology.ClassHeritageSite),
		prop("Medersa_Bou_Inania", ontology.PropDescription, quad.String("Madrasa mérinide")),
		typed("Bab_Boujloud", ontology.ClassHeritageSite),
	})
}

func TestSubjectsOfType(t *testing.T) {
	g := testGraph()

	subjects := g.SubjectsOfType(ontology.IRI(ontology.ClassHeritageSite))
	assert.Equal(t, []string{ontology.IRI("Bab_Boujloud"), ontology.IRI("Medersa_Bou_Inania")}, subjects)

	assert.Empty(t, g.SubjectsOfType(ontology.IRI(ontology.ClassArtisan)))
}

func TestTypes(t *testing.T) {
	g := testGraph()

	types := g.Types(ontology.IRI("Bab_Boujloud"))
	assert.Equal(t, []string{ontology.IRI(ontology.ClassHeritageSite), ontology.IRI("Monument")}, types)
	assert.Nil(t, g.Types(ontology.IRI("Unknown")))
}

func TestProperty(t *testing.T) {
	g := testGraph()

	t.Run("first value wins", func(t *testing.T) {
		value := g.Property(ontology.IRI("Bab_Boujloud"), ontology.PropLocation)
		assert.Equal(t, ontology.Resource(ontology.IRI("Medina_de_Fès")), value)
	})

	t.Run("literal", func(t *testing.T) {
		value := g.Property(ontology.IRI("Medersa_Bou_Inania"), ontology.PropDescription)
		assert.Equal(t, ontology.Literal("Madrasa mérinide"), value)
	})

	t.Run("absent property", func(t *testing.T) {
		value := g.Property(ontology.IRI("Medersa_Bou_Inania"), ontology.PropImage)
		assert.True(t, value.IsAbsent())
	})

	t.Run("absent subject", func(t *testing.T) {
		value := g.Property(ontology.IRI("Unknown"), ontology.PropImage)
		assert.True(t, value.IsAbsent())
	})
}

func TestObjects(t *testing.T) {
	g := testGraph()

	values := g.Objects(ontology.IRI("Bab_Boujloud"), ontology.IRI(ontology.PropLocation))
	require.Len(t, values, 2)
	assert.Equal(t, quad.String("Fès el-Bali"), values[1])
}

func TestNewSkipsIncompleteQuads(t *testing.T) {
	g := New([]quad.Quad{
		{Subject: iri("A"), Predicate: iri("p")},
		prop("A", "p", quad.String("x")),
	})

	assert.Equal(t, 1, g.Len())
	assert.Len(t, g.Quads(), 1)
	assert.Equal(t, []string{ontology.IRI("A")}, g.Subjects())
}

func TestTermKey(t *testing.T) {
	assert.Equal(t, "http://example.org/#a", TermKey(quad.IRI("http://example.org/#a")))
	assert.Equal(t, "_:b0", TermKey(quad.BNode("b0")))
	assert.Equal(t, "texte", TermKey(quad.String("texte")))
}

func TestConcurrentReads(t *testing.T) {
	g := testGraph()
	subject := ontology.IRI("Bab_Boujloud")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = g.Property(subject, ontology.PropLocation)
				_ = g.SubjectsOfType(ontology.IRI(ontology.ClassHeritageSite))
			}
		}()
	}
	wg.Wait()
}
