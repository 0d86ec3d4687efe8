package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, PrettyHandlerOptions{})

	assert.NotNil(t, handler.Handler)
	assert.NotNil(t, handler.l)
}

func TestPrettyHandlerHandle(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"debug", slog.LevelDebug, "DEBUG:"},
		{"info", slog.LevelInfo, "INFO:"},
		{"warn", slog.LevelWarn, "WARN:"},
		{"error", slog.LevelError, "ERROR:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewPrettyHandler(&buf, PrettyHandlerOptions{
				SlogOpts: slog.HandlerOptions{Level: slog.LevelDebug},
			})

			record := slog.NewRecord(time.Now(), tt.level, "loaded ontology", 0)
			record.AddAttrs(slog.String("path", "ontolosafi.rdf"), slog.Int("triples", 42))

			require.NoError(t, handler.Handle(ctx, record))
			output := buf.String()
			assert.Contains(t, output, tt.want)
			assert.Contains(t, output, "loaded ontology")
			assert.Contains(t, output, `"path":"ontolosafi.rdf"`)
			assert.Contains(t, output, `"triples":42`)
			assert.Regexp(t, `\[\d{2}:\d{2}:\d{2}\.\d{3}\]`, output)
		})
	}
}

func TestPrettyHandlerNoAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewPrettyHandler(&buf, PrettyHandlerOptions{})

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "ready", 0)
	require.NoError(t, handler.Handle(context.Background(), record))
	assert.Contains(t, buf.String(), "{}")
}

func TestPrettyHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{})).With("engine", "sql")

	logger.Info("serving", "addr", ":8000")

	output := buf.String()
	assert.Contains(t, output, `"engine":"sql"`)
	assert.Contains(t, output, `"addr":":8000"`)
}

func TestPrettyHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelWarn},
	}))

	logger.Info("hidden")
	logger.Warn("shown", "error", errors.New("boom").Error())

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
	assert.Contains(t, output, "boom")
}
