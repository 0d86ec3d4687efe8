package sqlite

import (
	"testing"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		dsn      string
		expected string
		wantErr  bool
	}{
		{name: "memory", dsn: "sqlite://:memory:", expected: ":memory:"},
		{name: "relative path", dsn: "sqlite://ontolosafi.db", expected: "./ontolosafi.db"},
		{name: "dot relative path", dsn: "sqlite://./data/ontolosafi.db", expected: "./data/ontolosafi.db"},
		{name: "absolute path", dsn: "sqlite:///var/lib/ontolosafi.db", expected: "/var/lib/ontolosafi.db"},
		{name: "query kept", dsn: "sqlite://ontolosafi.db?_txlock=immediate", expected: "./ontolosafi.db?_txlock=immediate"},
		{name: "escaped path", dsn: "sqlite://my%20data.db", expected: "./my data.db"},
		{name: "wrong scheme", dsn: "postgres://localhost/db", wantErr: true},
		{name: "empty path", dsn: "sqlite://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDSN(tt.dsn)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.dsn, got, tt.expected)
			}
		})
	}
}

func TestIsDSN(t *testing.T) {
	if !IsDSN("sqlite://x.db") {
		t.Error("expected sqlite DSN")
	}
	if IsDSN("postgres://localhost/db") {
		t.Error("postgres DSN reported as sqlite")
	}
}
