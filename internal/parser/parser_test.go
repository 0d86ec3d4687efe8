package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
)

const ns = "http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#"

const rdfXMLDoc = `<?xml version="1.0"?>
<rdf:RDF xmlns="http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#"
     xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
    <rdf:Description rdf:about="http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#Bab_Boujloud">
        <rdf:type rdf:resource="http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#SitePatrimonial"/>
        <aPourLocalisation rdf:resource="http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#Medina_de_Fès"/>
        <aPourDescription>Porte monumentale</aPourDescription>
    </rdf:Description>
</rdf:RDF>
`

const turtleDoc = `@prefix : <http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .

:Festival_de_Fes rdf:type :ÉvénementCulturel ;
    :aPourDate "15 mars 2025" ;
    :aPourDescription "Musiques sacrées"@fr .
`

const nquadsDoc = `<http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#Hotel_Sahrai> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#Hébergement> <http://example.org/graph> .
<http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#Hotel_Sahrai> <http://www.semanticweb.org/mine/ontologies/2025/4/ontolosafi#aPourLocalisation> "Centre-ville" .
`

func TestParse(t *testing.T) {
	t.Run("rdf/xml", func(t *testing.T) {
		quads, err := Parse(strings.NewReader(rdfXMLDoc), FormatRDFXML)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(quads) != 3 {
			t.Fatalf("expected 3 triples, got %d", len(quads))
		}
		if !containsQuad(quads, quad.IRI(ns+"Bab_Boujloud"), quad.IRI(ns+"aPourLocalisation"), quad.IRI(ns+"Medina_de_Fès")) {
			t.Fatalf("expected location resource, got %v", quads)
		}
		if !containsQuad(quads, quad.IRI(ns+"Bab_Boujloud"), quad.IRI(ns+"aPourDescription"), quad.String("Porte monumentale")) {
			t.Fatalf("expected description literal, got %v", quads)
		}
	})

	t.Run("turtle", func(t *testing.T) {
		quads, err := Parse(strings.NewReader(turtleDoc), FormatTurtle)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(quads) != 3 {
			t.Fatalf("expected 3 triples, got %d", len(quads))
		}
		if !containsQuad(quads, quad.IRI(ns+"Festival_de_Fes"), quad.IRI(ns+"aPourDate"), quad.String("15 mars 2025")) {
			t.Fatalf("expected date literal, got %v", quads)
		}
		if !containsQuad(quads, quad.IRI(ns+"Festival_de_Fes"), quad.IRI(ns+"aPourDescription"), quad.LangString{Value: "Musiques sacrées", Lang: "fr"}) {
			t.Fatalf("expected language tagged description, got %v", quads)
		}
	})

	t.Run("nquads drops graph label", func(t *testing.T) {
		quads, err := Parse(strings.NewReader(nquadsDoc), FormatNQuads)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(quads) != 2 {
			t.Fatalf("expected 2 quads, got %d", len(quads))
		}
		for _, q := range quads {
			if q.Label != nil {
				t.Fatalf("expected no label, got %v", q.Label)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Parse(strings.NewReader(""), Format("json"))
		if !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("malformed turtle", func(t *testing.T) {
		_, err := Parse(strings.NewReader("@prefix : <broken"), FormatTurtle)
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{name: "empty infers from path", input: "", expected: ""},
		{name: "canonical", input: "turtle", expected: FormatTurtle},
		{name: "alias", input: "RDF/XML", expected: FormatRDFXML},
		{name: "short alias", input: "nt", expected: FormatNTriples},
		{name: "unknown", input: "jsonld", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Fatalf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Run("format from extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vh2.rdf")
		if err := os.WriteFile(path, []byte(rdfXMLDoc), 0o600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
		quads, err := ParseFile(path, "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(quads) != 3 {
			t.Fatalf("expected 3 triples, got %d", len(quads))
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(t.TempDir(), "ontology.json"), "")
		if !errors.Is(err, ErrUnknownFormat) {
			t.Fatalf("expected ErrUnknownFormat, got %v", err)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.ttl"), ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func containsQuad(quads []quad.Quad, s, p, o quad.Value) bool {
	for _, q := range quads {
		if q.Subject == s && q.Predicate == p && q.Object == o {
			return true
		}
	}
	return false
}
