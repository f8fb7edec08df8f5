package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPExtractor calls the document-extraction sidecar: POST /extract with
// the raw bytes, response {"pages": [{"page": 1, "text": "..."}]}.
type HTTPExtractor struct {
	baseURL string
	client  *http.Client
}

func NewHTTPExtractor(baseURL string, timeout time.Duration) *HTTPExtractor {
	return &HTTPExtractor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (e *HTTPExtractor) Extract(ctx context.Context, data []byte, contentType string) ([]Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/extract", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: build extract request: %v", ErrUpstream, err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := e.client.Do(req)
	if err != nil {
		// let the caller distinguish its own deadline from upstream faults
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: extract call: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: extract status %d: %s", ErrUpstream, resp.StatusCode, body)
	}

	var out struct {
		Pages []Page `json:"pages"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode extract response: %v", ErrUpstream, err)
	}
	return out.Pages, nil
}
