package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/knakk/rdf"
)

type Format string

const (
	FormatRDFXML   Format = "rdfxml"
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
	FormatNQuads   Format = "nquads"
)

var (
	ErrUnknownFormat = errors.New("unknown ontology format")
	ErrUnknownTerm   = errors.New("unsupported rdf term")
)

var extensions = map[string]Format{
	".rdf": FormatRDFXML,
	".owl": FormatRDFXML,
	".xml": FormatRDFXML,
	".ttl": FormatTurtle,
	".nt":  FormatNTriples,
	".nq":  FormatNQuads,
	".nqs": FormatNQuads,
}

// ParseFormat accepts a configured format name; an empty name means the
// format is inferred from the file extension.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return "", nil
	case FormatRDFXML, FormatTurtle, FormatNTriples, FormatNQuads:
		return f, nil
	case "xml", "rdf/xml", "owl":
		return FormatRDFXML, nil
	case "ttl":
		return FormatTurtle, nil
	case "nt":
		return FormatNTriples, nil
	case "nq":
		return FormatNQuads, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
}

func FormatFromPath(path string) (Format, error) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return f, nil
}

func ParseFile(path string, format Format) ([]quad.Quad, error) {
	if format == "" {
		var err error
		format, err = FormatFromPath(path)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	quads, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return quads, nil
}

func Parse(r io.Reader, format Format) ([]quad.Quad, error) {
	switch format {
	case FormatNQuads:
		return parseNQuads(r)
	case FormatRDFXML:
		return parseTriples(r, rdf.RDFXML)
	case FormatTurtle:
		return parseTriples(r, rdf.Turtle)
	case FormatNTriples:
		return parseTriples(r, rdf.NTriples)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func parseNQuads(r io.Reader) ([]quad.Quad, error) {
	reader := nquads.NewReader(r, true)
	defer reader.Close()

	var quads []quad.Quad
	for {
		q, err := reader.ReadQuad()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		q.Label = nil
		quads = append(quads, q)
	}
	return quads, nil
}

func parseTriples(r io.Reader, format rdf.Format) ([]quad.Quad, error) {
	dec := rdf.NewTripleDecoder(r, format)

	var quads []quad.Quad
	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		subject, err := convertTerm(triple.Subj)
		if err != nil {
			return nil, err
		}
		predicate, err := convertTerm(triple.Pred)
		if err != nil {
			return nil, err
		}
		object, err := convertTerm(triple.Obj)
		if err != nil {
			return nil, err
		}
		quads = append(quads, quad.Quad{Subject: subject, Predicate: predicate, Object: object})
	}
	return quads, nil
}

func convertTerm(term rdf.Term) (quad.Value, error) {
	switch t := term.(type) {
	case rdf.IRI:
		return quad.IRI(t.String()), nil
	case rdf.Blank:
		return quad.BNode(strings.TrimPrefix(t.String(), "_:")), nil
	case rdf.Literal:
		if lang := t.Lang(); lang != "" {
			return quad.LangString{Value: quad.String(t.String()), Lang: lang}, nil
		}
		if dt := t.DataType.String(); dt != "" && dt != xsdString {
			return quad.TypedString{Value: quad.String(t.String()), Type: quad.IRI(dt)}, nil
		}
		return quad.String(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownTerm, term)
	}
}

const xsdString = "http://www.w3.org/2001/XMLSchema#string"
