package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckReadOnly(t *testing.T) {
	tests := []struct {
		name  string
		query string
		ok    bool
	}{
		{"select", "SELECT * FROM triples", true},
		{"lowercase select", "select count(*) from triples;", true},
		{"with", "WITH t AS (SELECT 1) SELECT * FROM t", true},
		{"select on new line", "SELECT\n* FROM triples", true},
		{"delete", "DELETE FROM triples", false},
		{"drop", "drop table triples", false},
		{"stacked", "SELECT 1; DELETE FROM triples", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckReadOnly(tt.query)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotReadOnly)
			}
		})
	}
}
