// ABOUTME: Tests for contact composition and the capture flow
// ABOUTME: Covers field precedence, the fallback path, and single-call behavior
package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/snapcard/models"
)

// stubClient counts invocations and returns a canned result or error.
type stubClient struct {
	calls  int
	result *models.ExtractionResult
	err    error
}

func (s *stubClient) Extract(_ context.Context, transcript string, _ models.FormData) (*models.ExtractionResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestComposePrecedence(t *testing.T) {
	form := models.FormData{
		Name:     "Draft Name",
		Company:  "Draft Co",
		Email:    "draft@example.com",
		Location: "Denver",
	}
	result := &models.ExtractionResult{
		Name:  "Extracted Name",
		Role:  "CTO",
		Email: "",
	}

	contact := Compose(result, form, "some notes", "")

	// Extracted wins when present.
	assert.Equal(t, "Extracted Name", contact.Name)
	assert.Equal(t, "CTO", contact.Role)
	// Draft fills in when extraction came back empty.
	assert.Equal(t, "Draft Co", contact.Company)
	assert.Equal(t, "draft@example.com", contact.Email)
	assert.Equal(t, "Denver", contact.Location)
	// Neither side had a phone.
	assert.Equal(t, "", contact.Phone)

	assert.Equal(t, "some notes", contact.RawNotes)
	assert.NotEmpty(t, contact.ID)
	assert.False(t, contact.CreatedAt.IsZero())
}

func TestComposeNamePlaceholder(t *testing.T) {
	contact := Compose(&models.ExtractionResult{}, models.FormData{}, "notes", "")
	assert.Equal(t, models.PlaceholderName, contact.Name)

	contact = Compose(nil, models.FormData{}, "notes", "")
	assert.Equal(t, models.PlaceholderName, contact.Name)
}

func TestCaptureFallbackOnFailure(t *testing.T) {
	transcript := "Met Sarah from Acme Corp, VP of Engineering. Discussed Kubernetes migration. Follow up next week."
	form := models.FormData{MeetingContext: "Conf Hall B"}

	client := &stubClient{err: errors.New("network unreachable")}
	contact := Capture(context.Background(), client, transcript, form, "")

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, models.PlaceholderName, contact.Name)
	assert.Equal(t, "Conf Hall B", contact.MeetingContext)
	assert.Equal(t, models.FallbackSummary, contact.Summary)
	assert.Equal(t, transcript, contact.RawNotes)
	assert.Empty(t, contact.KeyTopics)
	assert.Empty(t, contact.ActionItems)
	assert.Equal(t, models.DefaultFollowUp, contact.FollowUpSuggestion)
}

func TestCaptureSuccessUsesResult(t *testing.T) {
	client := &stubClient{result: &models.ExtractionResult{
		Name:        "Sarah Chen",
		Company:     "Acme Corp",
		Summary:     "VP of Engineering at Acme.",
		KeyTopics:   []string{"Kubernetes"},
		ActionItems: []string{"Follow up next week"},
	}}

	contact := Capture(context.Background(), client, "notes", models.FormData{}, "")

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Sarah Chen", contact.Name)
	assert.Equal(t, "VP of Engineering at Acme.", contact.Summary)
	assert.Equal(t, []string{"Kubernetes"}, contact.KeyTopics)
}

func TestCaptureNilClientFallsBack(t *testing.T) {
	contact := Capture(context.Background(), nil, "notes", models.FormData{Name: "Bob"}, "")
	assert.Equal(t, "Bob", contact.Name)
	assert.Equal(t, models.FallbackSummary, contact.Summary)
}

func TestBuildPromptHints(t *testing.T) {
	prompt, err := BuildPrompt("met a person", models.FormData{Company: "Acme", MeetingContext: "Booth 4"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "met a person")
	assert.Contains(t, prompt, "Company: Acme")
	assert.Contains(t, prompt, "Where we met: Booth 4")
	assert.NotContains(t, prompt, "- Name:")

	empty, err := BuildPrompt("just notes", models.FormData{})
	require.NoError(t, err)
	assert.NotContains(t, empty, "Known fields")
}
