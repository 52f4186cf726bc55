// ABOUTME: Data models for captured contacts
// ABOUTME: Defines Contact, FormData, and ExtractionResult structs
package models

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Contact is the persisted record for one person met at an event.
// JSON tags match the stored blob layout so a persisted list round-trips
// unchanged across loads.
type Contact struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Company            string    `json:"company,omitempty"`
	Role               string    `json:"role,omitempty"`
	Email              string    `json:"email,omitempty"`
	Phone              string    `json:"phone,omitempty"`
	Location           string    `json:"location,omitempty"`
	Photo              string    `json:"photo,omitempty"` // inline data URI, owned by the contact
	Summary            string    `json:"summary,omitempty"`
	KeyTopics          []string  `json:"keyTopics,omitempty"`
	ActionItems        []string  `json:"actionItems,omitempty"`
	FollowUpSuggestion string    `json:"followUpSuggestion,omitempty"`
	RawNotes           string    `json:"rawNotes,omitempty"`
	MeetingContext     string    `json:"meetingContext,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// FormData is the transient draft for an in-progress capture. It is never
// persisted and is consumed exactly once by the extraction call.
type FormData struct {
	Name           string `json:"name"`
	Company        string `json:"company"`
	Role           string `json:"role"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	MeetingContext string `json:"meetingContext"`
}

// ExtractionResult is the fixed ten-key shape the extraction service
// returns. Empty string means the field is absent.
type ExtractionResult struct {
	Name               string   `json:"name"`
	Company            string   `json:"company"`
	Role               string   `json:"role"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Location           string   `json:"location"`
	Summary            string   `json:"summary"`
	KeyTopics          []string `json:"keyTopics"`
	ActionItems        []string `json:"actionItems"`
	FollowUpSuggestion string   `json:"followUpSuggestion"`
}

// Fixed strings used by the fallback path and the vCard exporter.
const (
	PlaceholderName       = "New Contact"
	FallbackSummary       = "Notes captured - AI summary unavailable"
	DefaultMeetingContext = "Conference"
	DefaultFollowUp       = "Follow up within a week"
)

// NewContactID returns an opaque, sortable id. ULIDs are unique enough
// within a session without being cryptographically guaranteed.
func NewContactID() string {
	return ulid.Make().String()
}

// HasTranscript reports whether notes contain anything beyond whitespace.
func HasTranscript(notes string) bool {
	return strings.TrimSpace(notes) != ""
}
