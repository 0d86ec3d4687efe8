package store

import (
	"errors"
	"strings"
)

var ErrNotReadOnly = errors.New("only SELECT and WITH queries are allowed")

// CheckReadOnly rejects anything but a single SELECT or WITH statement.
func CheckReadOnly(query string) error {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")
	if strings.Contains(q, ";") {
		return ErrNotReadOnly
	}

	keyword, _, _ := strings.Cut(q, " ")
	keyword, _, _ = strings.Cut(keyword, "\n")
	switch strings.ToUpper(keyword) {
	case "SELECT", "WITH":
		return nil
	default:
		return ErrNotReadOnly
	}
}
