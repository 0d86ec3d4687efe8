package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const (
	scheme    = "sqlite://"
	memoryDSN = ":memory:"
)

// IsDSN reports whether dsn selects the sqlite engine.
func IsDSN(dsn string) bool {
	return strings.HasPrefix(dsn, scheme)
}

// parseDSN turns sqlite://path[?query] into a driver DSN. Relative paths are
// anchored at the working directory.
func parseDSN(dsn string) (string, error) {
	if !IsDSN(dsn) {
		return "", fmt.Errorf("invalid sqlite DSN scheme, expected %s", scheme)
	}

	path, query, _ := strings.Cut(strings.TrimPrefix(dsn, scheme), "?")
	if path == memoryDSN {
		return memoryDSN, nil
	}
	if path == "" {
		return "", fmt.Errorf("sqlite DSN has no database path")
	}

	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}
	path = unescaped

	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	if query != "" {
		return path + "?" + query, nil
	}
	return path, nil
}
