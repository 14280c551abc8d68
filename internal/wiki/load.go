// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wiki loads document descriptors and retrieves their content from
// the Lark open-platform API.
package wiki

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/wikifetch/pkg/types"
)

// LoadDocuments reads a JSON array of document descriptors from path and
// returns them in file order. A missing file is returned as-is so callers
// can match it with errors.Is(err, fs.ErrNotExist) and point the user at
// the enumeration step. Any other read or parse failure is wrapped.
func LoadDocuments(path string) ([]*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("reading document list %s: %w", path, err)
	}

	var docs []*types.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing document list %s: %w", path, err)
	}
	return docs, nil
}
