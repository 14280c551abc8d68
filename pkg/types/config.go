// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wikifetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the content-retrieval stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the Lark open-platform host (default "https://open.feishu.cn").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Delay is the pause between consecutive document requests (default 0).
	Delay time.Duration `json:"delay" yaml:"delay"`
}

// ReportConfig holds settings for the report writer.
type ReportConfig struct {
	// OutputPath is the report file location. Parent directories are created
	// as needed and an existing file is overwritten.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// ArchiveConfig holds settings for the optional content archive.
type ArchiveConfig struct {
	// DBPath is the SQLite database location. Empty disables archiving.
	DBPath string `json:"db_path" yaml:"db_path"`
}
