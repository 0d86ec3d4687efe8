package validate

import (
	"context"
	"fmt"
	"strings"

	"ontolosafi/internal/catalog"
	"ontolosafi/internal/graph"
	"ontolosafi/internal/ontology"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeEmptyGraph            = "empty_graph"
	codeClassMissing          = "class_missing"
	codeResourceNameMalformed = "resource_name_malformed"
	codeMultiValuedProperty   = "multi_valued_property"
)

type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Class    string   `json:"class,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Property string   `json:"property,omitempty"`
}

type Report struct {
	Issues []Issue `json:"issues"`
}

func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Run checks the loaded ontology for shapes the projections tolerate
// silently: classes without members, subjects whose display name cannot be
// derived, and properties with several values where engines may disagree.
func Run(ctx context.Context, g *graph.Graph) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("graph is required")
	}

	issues := make([]Issue, 0)
	if g.Len() == 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeEmptyGraph,
			Message:  "ontology contains no triples",
		})
		return &Report{Issues: issues}, nil
	}

	for _, class := range ontology.Classes {
		if len(g.SubjectsOfType(ontology.IRI(class))) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeClassMissing,
				Message:  fmt.Sprintf("class %s has no members", class),
				Class:    class,
			})
		}
	}

	issues = append(issues, validateSubjectNames(g)...)
	issues = append(issues, validateSingleValued(g)...)

	return &Report{Issues: issues}, nil
}

func validateSubjectNames(g *graph.Graph) []Issue {
	var issues []Issue
	for _, class := range ontology.Classes {
		for _, subject := range g.SubjectsOfType(ontology.IRI(class)) {
			if strings.Contains(subject, "#") {
				continue
			}
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeResourceNameMalformed,
				Message:  fmt.Sprintf("subject has no fragment, its full IRI is used as name: %s", subject),
				Class:    class,
				Subject:  subject,
			})
		}
	}
	return issues
}

func validateSingleValued(g *graph.Graph) []Issue {
	var issues []Issue
	seen := make(map[string]struct{})

	for _, q := range catalog.Queries() {
		for _, subject := range g.SubjectsOfType(ontology.IRI(q.Class)) {
			for _, prop := range q.Properties {
				key := subject + "|" + prop.Name
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}

				values := g.Objects(subject, ontology.IRI(prop.Name))
				if len(values) < 2 {
					continue
				}
				issues = append(issues, Issue{
					Severity: SeverityWarn,
					Code:     codeMultiValuedProperty,
					Message:  fmt.Sprintf("%s has %d values for %s, only one is projected", ontology.DisplayName(subject), len(values), prop.Name),
					Class:    q.Class,
					Subject:  subject,
					Property: prop.Name,
				})
			}
		}
	}
	return issues
}
