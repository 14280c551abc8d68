// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// rawContentPath is the docx raw-content endpoint, addressed by document token.
const rawContentPath = "/open-apis/docx/v1/documents/%s/raw_content"

// Client calls the Lark open-platform docx API. The HTTP client, host, and
// credential are injected so tests can substitute an httptest server and a
// fake token.
type Client struct {
	HTTP *http.Client

	// BaseURL is the API host, e.g. "https://open.feishu.cn".
	BaseURL string

	// Token is the user access token presented as a bearer credential.
	Token string

	// UserAgent is sent with every request.
	UserAgent string
}

// APIError is a non-zero application code returned in the Lark response
// envelope. The HTTP exchange itself succeeded.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("API code %d: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("API code %d", e.Code)
}

// rawContentResponse is the Lark envelope for the raw-content endpoint.
type rawContentResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		Content string `json:"content"`
	} `json:"data"`
}

// RawContent retrieves the plain-text content of one document. A code 0
// envelope with no content field yields an empty string, not an error.
func (c *Client) RawContent(ctx context.Context, documentToken string) (string, error) {
	reqURL := strings.TrimSuffix(c.BaseURL, "/") + fmt.Sprintf(rawContentPath, documentToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("raw-content request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("raw-content endpoint returned HTTP %d", resp.StatusCode)
	}

	var envelope rawContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("parsing raw-content response: %w", err)
	}

	if envelope.Code != 0 {
		return "", &APIError{Code: envelope.Code, Msg: envelope.Msg}
	}
	return envelope.Data.Content, nil
}
