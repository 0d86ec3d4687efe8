//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ontolosafi/internal/catalog"
	"ontolosafi/internal/graph"
	"ontolosafi/internal/store"
	"ontolosafi/internal/testutil"
)

func TestMembersMatchTraversal(t *testing.T) {
	ctx := context.Background()

	client, err := New(ctx, testDSN)
	require.NoError(t, err)
	defer client.Close(ctx)

	quads := testutil.OntologyQuads()
	require.NoError(t, client.EnsureSchema(ctx))
	require.NoError(t, client.ReplaceTriples(ctx, "test.rdf", "hash", store.TriplesFromQuads(quads)))

	count, err := client.CountTriples(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(quads)), count)

	hash, err := client.SourceHash(ctx, "test.rdf")
	require.NoError(t, err)
	assert.Equal(t, "hash", hash)

	want, err := catalog.New(catalog.NewTraversal(graph.New(quads))).Home(ctx)
	require.NoError(t, err)
	got, err := catalog.New(client).Home(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = client.RunSQL(ctx, "DROP TABLE triples")
	assert.ErrorIs(t, err, store.ErrNotReadOnly)
}
