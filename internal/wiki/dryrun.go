// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"fmt"
	"io"

	"github.com/pdiddy/wikifetch/pkg/types"
)

// ListPending prints the documents awaiting retrieval together with
// instructions for fetching their content manually. Used when no access
// token is available; it performs no network I/O.
func ListPending(w io.Writer, docs []*types.Document) {
	fmt.Fprintln(w, "User access token not found; listing pending documents only.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document tokens to retrieve:")
	for _, doc := range docs {
		fmt.Fprintf(w, "  - %s: %s\n", doc.Title, doc.DocumentToken)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "To retrieve content via the API:")
	fmt.Fprintln(w, "  export LARK_USER_ACCESS_TOKEN='your_token'")
	fmt.Fprintln(w, "  wikifetch fetch")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Or call the raw-content endpoint directly:")
	fmt.Fprintln(w, "  GET /open-apis/docx/v1/documents/{document_token}/raw_content")
}
