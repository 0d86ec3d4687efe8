package store

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"

	"ontolosafi/internal/catalog"
	"ontolosafi/internal/ontology"
)

var (
	rdfType      = string(quad.IRI(rdf.Type).Full())
	namespaceLen = utf8.RuneCountInString(ontology.Namespace)
)

// Placeholder renders the n-th (1-based) bind parameter of a SQL dialect.
type Placeholder func(n int) string

func QuestionMark(int) string { return "?" }

func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

// MembersQuery builds the aggregating query behind a catalog query. Members
// come back in the order their type triple was loaded; a multi-valued
// property is collapsed with MIN. Every IRI is bound, never inlined.
//
// Result columns: subject, then for each property the nullable MIN(object)
// and the object_kind of that same row, then the nullable subtype column
// when q.Subtype is set.
func MembersQuery(ph Placeholder, q catalog.Query) (string, []any) {
	var args []any
	bind := func(arg any) string {
		args = append(args, arg)
		return ph(len(args))
	}
	class := ontology.IRI(q.Class)

	var b strings.Builder
	b.WriteString("SELECT m.subject")
	for _, prop := range q.Properties {
		predicate := ontology.IRI(prop.Name)
		fmt.Fprintf(&b, ",\n\t(SELECT MIN(v.object) FROM triples v WHERE v.subject = m.subject AND v.predicate = %s)",
			bind(predicate))
		fmt.Fprintf(&b, ",\n\t(SELECT v.object_kind FROM triples v WHERE v.subject = m.subject AND v.predicate = %s ORDER BY v.object, v.id LIMIT 1)",
			bind(predicate))
	}
	if q.Subtype {
		fmt.Fprintf(&b, ",\n\t(SELECT t.object FROM triples t WHERE t.subject = m.subject AND t.predicate = %s AND t.object <> %s AND substr(t.object, 1, %s) = %s ORDER BY t.id LIMIT 1)",
			bind(rdfType), bind(class), bind(namespaceLen), bind(ontology.Namespace))
	}
	fmt.Fprintf(&b, `
FROM (
	SELECT subject, MIN(id) AS first_seen
	FROM triples
	WHERE predicate = %s AND object = %s
	GROUP BY subject
) m
ORDER BY m.first_seen`, bind(rdfType), bind(class))

	return b.String(), args
}

// Cell is one property of a MembersQuery row. Kind is "" when the property
// has no triple.
type Cell struct {
	Object string
	Kind   string
}

// NewMember turns one result row of MembersQuery into a catalog member.
// cells holds one entry per property.
func NewMember(q catalog.Query, subject string, cells []Cell, subtype string) catalog.Member {
	member := catalog.Member{
		Subject: subject,
		Subtype: subtype,
		Values:  make(map[string]ontology.Value, len(q.Properties)),
	}
	for i, prop := range q.Properties {
		var cell Cell
		if i < len(cells) {
			cell = cells[i]
		}
		member.Values[prop.Name] = cell.Value()
	}
	return member
}

// Value tags the cell with its stored term kind. Text without a kind falls
// back to lexical tagging.
func (c Cell) Value() ontology.Value {
	switch c.Kind {
	case KindIRI:
		return ontology.Resource(c.Object)
	case KindBlank:
		return ontology.Blank(c.Object)
	case KindLiteral:
		return ontology.Literal(c.Object)
	default:
		return ontology.FromAggregate(c.Object)
	}
}
