// ABOUTME: Contact composition from extraction output or the fallback path
// ABOUTME: Applies the field precedence rule and builds fully-populated records
package extract

import (
	"context"
	"log"
	"time"

	"github.com/harperreed/snapcard/models"
)

// Capture runs one full creation flow: a single extraction attempt, then
// composition. Any client failure (or a nil client) resolves via the
// fallback contact; the error is logged, never surfaced. The returned
// contact is always fully populated: id, non-empty name, timestamp.
func Capture(ctx context.Context, client Client, transcript string, form models.FormData, photo string) models.Contact {
	var result *models.ExtractionResult

	if client != nil {
		res, err := client.Extract(ctx, transcript, form)
		if err != nil {
			log.Printf("warning: extraction failed, using fallback: %v", err)
		} else {
			result = res
		}
	}

	return Compose(result, form, transcript, photo)
}

// Compose materializes a Contact. With a result, each overlapping field
// takes the extracted value if non-empty, else the user-entered draft
// value, else stays absent. With result == nil it builds the fallback
// contact: draft fields only, fixed placeholder summary, empty topic and
// action lists, generic follow-up suggestion.
func Compose(result *models.ExtractionResult, form models.FormData, transcript, photo string) models.Contact {
	contact := models.Contact{
		ID:             models.NewContactID(),
		Photo:          photo,
		RawNotes:       transcript,
		MeetingContext: form.MeetingContext,
		CreatedAt:      time.Now(),
	}

	if result != nil {
		contact.Name = pick(result.Name, form.Name)
		contact.Company = pick(result.Company, form.Company)
		contact.Role = pick(result.Role, form.Role)
		contact.Email = pick(result.Email, form.Email)
		contact.Phone = pick(result.Phone, form.Phone)
		contact.Location = pick(result.Location, form.Location)
		contact.Summary = result.Summary
		contact.KeyTopics = result.KeyTopics
		contact.ActionItems = result.ActionItems
		contact.FollowUpSuggestion = result.FollowUpSuggestion
	} else {
		contact.Name = form.Name
		contact.Company = form.Company
		contact.Role = form.Role
		contact.Email = form.Email
		contact.Phone = form.Phone
		contact.Location = form.Location
		contact.Summary = models.FallbackSummary
		contact.KeyTopics = []string{}
		contact.ActionItems = []string{}
		contact.FollowUpSuggestion = models.DefaultFollowUp
	}

	// A materialized contact never has an empty name.
	if contact.Name == "" {
		contact.Name = models.PlaceholderName
	}

	return contact
}

func pick(extracted, draft string) string {
	if extracted != "" {
		return extracted
	}
	return draft
}
