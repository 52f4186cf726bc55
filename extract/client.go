// ABOUTME: Extraction client interface for turning raw notes into structured fields
// ABOUTME: Implemented by the Gemini provider client and the internal HTTP client
package extract

import (
	"context"
	"errors"

	"github.com/harperreed/snapcard/models"
)

// ErrNoTranscript is returned before any outbound call when the transcript
// is empty or whitespace-only.
var ErrNoTranscript = errors.New("transcript is required")

// Client sends free-text notes plus optional known fields to an extraction
// service and returns the fixed-shape result. Implementations make exactly
// one outbound call per invocation: no retries, no caching. Callers treat
// any error as the signal to take the fallback path.
type Client interface {
	Extract(ctx context.Context, transcript string, form models.FormData) (*models.ExtractionResult, error)
}
