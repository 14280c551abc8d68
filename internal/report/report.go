// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the aggregate plain-text content report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/wikifetch/pkg/types"
)

const (
	banner      = "LARK WIKI DOCUMENTS - WITH CONTENT"
	placeholder = "[Content not available]"
	lineWidth   = 80
)

// Write renders the report for docs in input order and writes it to the
// configured output path, creating parent directories as needed. An existing
// file is overwritten. The output depends only on the document records, so
// identical input produces a byte-identical file.
func Write(cfg types.ReportConfig, docs []*types.Document) error {
	path := cfg.OutputPath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory %s: %w", dir, err)
		}
	}

	var b strings.Builder
	heavy := strings.Repeat("=", lineWidth)
	light := strings.Repeat("-", lineWidth)

	b.WriteString(heavy + "\n")
	b.WriteString(banner + "\n")
	b.WriteString(heavy + "\n\n")

	for _, doc := range docs {
		fmt.Fprintf(&b, "DOCUMENT %d: %s\n", doc.Number, doc.Title)
		fmt.Fprintf(&b, "   Level: %d\n", doc.Level)
		fmt.Fprintf(&b, "   Node Token: %s\n", doc.NodeToken)
		fmt.Fprintf(&b, "   Document Token: %s\n", doc.DocumentToken)
		fmt.Fprintf(&b, "   URL: %s\n", doc.URL)
		b.WriteString("\n" + light + "\n\n")

		if doc.HasContent() {
			b.WriteString(*doc.Content)
			b.WriteString("\n\n")
		} else {
			b.WriteString(placeholder + "\n\n")
		}

		b.WriteString(light + "\n\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
