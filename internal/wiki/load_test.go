// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocuments(t *testing.T) {
	t.Run("preserves file order", func(t *testing.T) {
		// Numbers deliberately out of order: file order wins, not number order.
		path := writeInput(t, `[
			{"number": 3, "title": "Third", "level": 2, "node_token": "n3", "document_token": "d3", "url": "https://wiki.example/3"},
			{"number": 1, "title": "First", "level": 1, "node_token": "n1", "document_token": "d1", "url": "https://wiki.example/1"},
			{"number": 2, "title": "Second", "level": 1, "node_token": "n2", "document_token": "d2", "url": "https://wiki.example/2"}
		]`)

		docs, err := LoadDocuments(path)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "Third", docs[0].Title)
		assert.Equal(t, "First", docs[1].Title)
		assert.Equal(t, "Second", docs[2].Title)
		assert.Equal(t, "d3", docs[0].DocumentToken)
		assert.Equal(t, 2, docs[0].Level)
		assert.Nil(t, docs[0].Content)
	})

	t.Run("empty array", func(t *testing.T) {
		docs, err := LoadDocuments(writeInput(t, `[]`))
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDocuments(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := LoadDocuments(writeInput(t, `{"not": "an array"`))
		require.Error(t, err)
		assert.False(t, errors.Is(err, fs.ErrNotExist))
		assert.Contains(t, err.Error(), "parsing document list")
	})

	t.Run("array of wrong element type", func(t *testing.T) {
		_, err := LoadDocuments(writeInput(t, `["just", "strings"]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing document list")
	})
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wiki_documents.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
