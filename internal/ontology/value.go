package ontology

import (
	"fmt"
	"strings"

	"github.com/cayleygraph/quad"
)

type Kind uint8

const (
	KindAbsent Kind = iota
	KindLiteral
	KindResource
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindResource:
		return "resource"
	case KindBlank:
		return "blank"
	default:
		return "absent"
	}
}

// Value is a property value as seen at the graph boundary. Text holds the
// lexical form of a literal, the full IRI of a resource or the "_:id" label
// of a blank node.
type Value struct {
	Kind Kind
	Text string
}

var Absent = Value{}

func Literal(text string) Value {
	return Value{Kind: KindLiteral, Text: text}
}

func Resource(iri string) Value {
	return Value{Kind: KindResource, Text: iri}
}

func Blank(label string) Value {
	return Value{Kind: KindBlank, Text: label}
}

func (v Value) IsAbsent() bool {
	return v.Kind == KindAbsent
}

// FromQuad maps a cayley term onto a Value. Every literal form keeps its
// lexical text.
func FromQuad(v quad.Value) Value {
	switch t := v.(type) {
	case nil:
		return Absent
	case quad.IRI:
		return Resource(string(t))
	case quad.BNode:
		return Blank("_:" + string(t))
	case quad.String:
		return Literal(string(t))
	case quad.TypedString:
		return Literal(string(t.Value))
	case quad.LangString:
		return Literal(string(t.Value))
	default:
		return Literal(fmt.Sprint(t.Native()))
	}
}

// FromAggregate tags aggregated text whose term kind is unknown. Text
// starting with http:// is read as a resource.
func FromAggregate(text string) Value {
	if text == "" {
		return Absent
	}
	if strings.HasPrefix(text, "http://") {
		return Resource(text)
	}
	return Literal(text)
}

// Normalize renders a reference-shaped value: literals are kept verbatim and
// resources are reduced to their display name. Absent values and blank
// nodes, which carry no name, become "".
func Normalize(v Value) string {
	switch v.Kind {
	case KindLiteral:
		return v.Text
	case KindResource:
		return DisplayName(v.Text)
	default:
		return ""
	}
}

// Lexical renders a text-shaped value: literals verbatim, resources as their
// full IRI so URLs are never rewritten.
func Lexical(v Value) string {
	switch v.Kind {
	case KindLiteral, KindResource:
		return v.Text
	default:
		return ""
	}
}
