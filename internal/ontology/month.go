package ontology

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// monthAliases covers spellings seen in hand-typed dates.
var monthAliases = map[string]Month{
	"fevrier":  February,
	"aout":     August,
	"decembre": December,
}

func (m Month) String() string {
	if m < January || m > December {
		return ""
	}
	return monthNames[m-1]
}

// MonthOf finds the first French month name in a free-text date such as
// "15 mars 2025". Matching ignores case and accents are optional.
func MonthOf(date string) (Month, bool) {
	for _, word := range strings.FieldsFunc(fold(date), isDateSeparator) {
		for i, name := range monthNames {
			if word == name {
				return Month(i + 1), true
			}
		}
		if m, ok := monthAliases[word]; ok {
			return m, true
		}
	}
	return 0, false
}

// ContainsFold reports whether needle occurs in haystack once both are
// lower-cased. An empty needle matches any haystack, the empty one included.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}

func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

func isDateSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ',', '/', '-', '.', '(', ')':
		return true
	}
	return r >= '0' && r <= '9'
}
