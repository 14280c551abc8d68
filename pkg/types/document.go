// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the wikifetch pipeline.
package types

// Document represents one wiki document pending content retrieval. The
// enumeration step produces these records; wikifetch attaches Content.
type Document struct {
	// Number is the 1-based position assigned during enumeration.
	Number int `json:"number" yaml:"number"`

	// Title is the document title as shown in the wiki tree.
	Title string `json:"title" yaml:"title"`

	// Level is the nesting depth of the document in the wiki hierarchy.
	Level int `json:"level" yaml:"level"`

	// NodeToken identifies the wiki tree node.
	NodeToken string `json:"node_token" yaml:"node_token"`

	// DocumentToken identifies the docx document behind the node; the
	// raw-content endpoint is addressed by this token.
	DocumentToken string `json:"document_token" yaml:"document_token"`

	// URL is the browser link to the document.
	URL string `json:"url" yaml:"url"`

	// Content is the fetched plain text. Nil until fetched and nil when
	// retrieval failed; an empty non-nil string means the document is empty.
	Content *string `json:"content,omitempty" yaml:"content,omitempty"`
}

// HasContent reports whether content was successfully retrieved.
func (d *Document) HasContent() bool {
	return d.Content != nil
}
