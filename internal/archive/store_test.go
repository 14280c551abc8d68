// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wikifetch/pkg/types"
)

func strPtr(s string) *string { return &s }

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(types.ArchiveConfig{DBPath: filepath.Join(t.TempDir(), "archive.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleDoc(number int, token, content string) *types.Document {
	return &types.Document{
		Number:        number,
		Title:         "Doc " + token,
		Level:         1,
		NodeToken:     "node-" + token,
		DocumentToken: token,
		URL:           "https://wiki.example/" + token,
		Content:       strPtr(content),
	}
}

func TestStore_SaveListGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleDoc(2, "docB", "second body")))
	require.NoError(t, store.Save(ctx, sampleDoc(1, "docA", "first body")))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Ordered by enumeration number, not insertion order.
	assert.Equal(t, "docA", records[0].DocumentToken)
	assert.Equal(t, "docB", records[1].DocumentToken)
	require.NotNil(t, records[0].Content)
	assert.Equal(t, "first body", *records[0].Content)
	assert.False(t, records[0].FetchedAt.IsZero())

	got, err := store.Get(ctx, "docB")
	require.NoError(t, err)
	assert.Equal(t, "Doc docB", got.Title)
	assert.Equal(t, "second body", *got.Content)
}

func TestStore_SaveUpserts(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleDoc(1, "docA", "old body")))
	require.NoError(t, store.Save(ctx, sampleDoc(1, "docA", "new body")))

	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new body", *records[0].Content)
}

func TestStore_SaveRejectsMissingContent(t *testing.T) {
	store := openTestStore(t)

	doc := sampleDoc(1, "docA", "")
	doc.Content = nil
	err := store.Save(context.Background(), doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content to archive")
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in archive")
}

func TestStore_Export(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleDoc(1, "docA", "alpha")))
	require.NoError(t, store.Save(ctx, sampleDoc(2, "docB", "beta")))

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Export(ctx, &buf, FormatYAML))

		var records []Record
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "docA", records[0].DocumentToken)
		assert.Equal(t, "alpha", *records[0].Content)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, store.Export(ctx, &buf, FormatJSON))

		var records []Record
		require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "docB", records[1].DocumentToken)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := store.Export(ctx, &buf, ExportFormat("xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown export format")
	})
}
