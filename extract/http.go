// ABOUTME: HTTP extraction client for the internal /api/extract boundary
// ABOUTME: Used when a central snapcard serve instance holds the provider credential
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/harperreed/snapcard/models"
)

// ExtractRequest is the wire shape of the internal extraction boundary.
type ExtractRequest struct {
	Transcript string          `json:"transcript"`
	FormData   models.FormData `json:"formData"`
}

type extractError struct {
	Error string `json:"error"`
}

// HTTPClient posts {transcript, formData} to an /api/extract endpoint and
// decodes the ten-key result. Fenced responses are tolerated the same way
// the provider client tolerates them.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (h *HTTPClient) Extract(ctx context.Context, transcript string, form models.FormData) (*models.ExtractionResult, error) {
	if !models.HasTranscript(transcript) {
		return nil, ErrNoTranscript
	}

	body, err := json.Marshal(ExtractRequest{Transcript: transcript, FormData: form})
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e extractError
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("extraction service: %s", e.Error)
		}
		return nil, fmt.Errorf("extraction service returned status %d", resp.StatusCode)
	}

	return ParseResult(string(raw))
}
