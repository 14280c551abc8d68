// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/wikifetch/pkg/types"
)

// BatchResult holds the outcome of a batch content-retrieval run.
type BatchResult struct {
	Fetched   int
	Failed    int
	Documents []*types.Document
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Fetched + r.Failed
}

// HasFailures reports whether any documents failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// FetchBatch retrieves content for every document in order, printing
// per-item status and returning a summary. Documents are fetched strictly
// one at a time with an optional delay between requests. A failure leaves
// that document's content nil and never aborts the batch; the documents in
// the result are the same records that were passed in, annotated in place.
func FetchBatch(ctx context.Context, client *Client, docs []*types.Document, cfg types.FetchConfig, w io.Writer) BatchResult {
	result := BatchResult{Documents: docs}
	total := len(docs)

	for i, doc := range docs {
		if i > 0 && cfg.Delay > 0 {
			time.Sleep(cfg.Delay)
		}

		fmt.Fprintf(w, "[%d/%d] Retrieving: %s\n", i+1, total, doc.Title)
		fmt.Fprintf(w, "  Token: %s\n", doc.DocumentToken)

		content, err := client.RawContent(ctx, doc.DocumentToken)
		if err != nil {
			fmt.Fprintf(w, "  failed: %v\n", err)
			result.Failed++
			continue
		}

		doc.Content = &content
		fmt.Fprintf(w, "  ok (%d characters)\n", len(content))
		result.Fetched++
	}

	fmt.Fprintf(w, "\nBatch summary: %d fetched, %d failed (total: %d)\n",
		result.Fetched, result.Failed, result.Total())
	return result
}
