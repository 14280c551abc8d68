// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wikifetch/pkg/types"
)

func strPtr(s string) *string { return &s }

func sampleDocs() []*types.Document {
	return []*types.Document{
		{
			Number:        1,
			Title:         "Getting Started",
			Level:         1,
			NodeToken:     "wikcn111",
			DocumentToken: "doccn111",
			URL:           "https://wiki.example/111",
			Content:       strPtr("hello"),
		},
		{
			Number:        2,
			Title:         "API Reference",
			Level:         2,
			NodeToken:     "wikcn222",
			DocumentToken: "doccn222",
			URL:           "https://wiki.example/222",
		},
	}
}

func TestWrite_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, Write(types.ReportConfig{OutputPath: path}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	heavy := strings.Repeat("=", 80)
	want := heavy + "\n" + "LARK WIKI DOCUMENTS - WITH CONTENT\n" + heavy + "\n\n"
	assert.Equal(t, want, string(data))
}

func TestWrite_ContentAndPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, Write(types.ReportConfig{OutputPath: path}, sampleDocs()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)

	assert.Contains(t, s, "DOCUMENT 1: Getting Started")
	assert.Contains(t, s, "   Level: 1\n")
	assert.Contains(t, s, "   Node Token: wikcn111\n")
	assert.Contains(t, s, "   Document Token: doccn111\n")
	assert.Contains(t, s, "   URL: https://wiki.example/111\n")
	assert.Contains(t, s, "hello")

	assert.Contains(t, s, "DOCUMENT 2: API Reference")
	assert.Contains(t, s, "[Content not available]")

	// Input order is preserved in the report.
	assert.Less(t, strings.Index(s, "DOCUMENT 1:"), strings.Index(s, "DOCUMENT 2:"))
}

func TestWrite_EmptyContentIsNotPlaceholder(t *testing.T) {
	docs := []*types.Document{{Number: 1, Title: "Empty Doc", DocumentToken: "d1", Content: strPtr("")}}
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, Write(types.ReportConfig{OutputPath: path}, docs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "[Content not available]")
}

func TestWrite_Idempotent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")

	docs := sampleDocs()
	require.NoError(t, Write(types.ReportConfig{OutputPath: first}, docs))
	require.NoError(t, Write(types.ReportConfig{OutputPath: second}, docs))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale previous run"), 0o644))

	require.NoError(t, Write(types.ReportConfig{OutputPath: path}, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale previous run")
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "report.txt")
	require.NoError(t, Write(types.ReportConfig{OutputPath: path}, sampleDocs()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
