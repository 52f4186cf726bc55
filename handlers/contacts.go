// ABOUTME: Contact MCP tool handlers
// ABOUTME: Implements capture_contact, find_contacts, get_contact, delete_contact, and export_vcard tools
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/models"
	"github.com/harperreed/snapcard/store"
	"github.com/harperreed/snapcard/vcard"
)

type ContactHandlers struct {
	store     *store.Store
	extractor extract.Client
}

func NewContactHandlers(st *store.Store, extractor extract.Client) *ContactHandlers {
	return &ContactHandlers{store: st, extractor: extractor}
}

type CaptureContactInput struct {
	Notes          string `json:"notes" jsonschema:"Free-text notes about the person (required)"`
	Name           string `json:"name,omitempty" jsonschema:"Known contact name"`
	Company        string `json:"company,omitempty" jsonschema:"Known company"`
	Role           string `json:"role,omitempty" jsonschema:"Known role or title"`
	Email          string `json:"email,omitempty" jsonschema:"Known email address"`
	Phone          string `json:"phone,omitempty" jsonschema:"Known phone number"`
	Location       string `json:"location,omitempty" jsonschema:"Known location"`
	MeetingContext string `json:"meeting_context,omitempty" jsonschema:"Where or how you met"`
}

type ContactOutput struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Company            string   `json:"company,omitempty"`
	Role               string   `json:"role,omitempty"`
	Email              string   `json:"email,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Location           string   `json:"location,omitempty"`
	Summary            string   `json:"summary,omitempty"`
	KeyTopics          []string `json:"key_topics,omitempty"`
	ActionItems        []string `json:"action_items,omitempty"`
	FollowUpSuggestion string   `json:"follow_up_suggestion,omitempty"`
	MeetingContext     string   `json:"meeting_context,omitempty"`
	CreatedAt          string   `json:"created_at"`
}

func (h *ContactHandlers) CaptureContact(ctx context.Context, request *mcp.CallToolRequest, input CaptureContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if !models.HasTranscript(input.Notes) {
		return nil, ContactOutput{}, fmt.Errorf("notes are required")
	}

	form := models.FormData{
		Name:           input.Name,
		Company:        input.Company,
		Role:           input.Role,
		Email:          input.Email,
		Phone:          input.Phone,
		Location:       input.Location,
		MeetingContext: input.MeetingContext,
	}

	contact := extract.Capture(ctx, h.extractor, input.Notes, form, "")
	h.store.Add(contact)

	return nil, contactToOutput(contact), nil
}

type FindContactsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search query (matches name, company, and email)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type FindContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

func (h *ContactHandlers) FindContacts(_ context.Context, request *mcp.CallToolRequest, input FindContactsInput) (*mcp.CallToolResult, FindContactsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	query := strings.ToLower(input.Query)

	var result []ContactOutput
	for _, contact := range h.store.List() {
		if query != "" &&
			!strings.Contains(strings.ToLower(contact.Name), query) &&
			!strings.Contains(strings.ToLower(contact.Company), query) &&
			!strings.Contains(strings.ToLower(contact.Email), query) {
			continue
		}

		result = append(result, contactToOutput(contact))
		if len(result) >= limit {
			break
		}
	}

	return nil, FindContactsOutput{Contacts: result}, nil
}

type GetContactInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

func (h *ContactHandlers) GetContact(_ context.Context, request *mcp.CallToolRequest, input GetContactInput) (*mcp.CallToolResult, ContactOutput, error) {
	if input.ID == "" {
		return nil, ContactOutput{}, fmt.Errorf("id is required")
	}

	contact := h.store.Get(input.ID)
	if contact == nil {
		return nil, ContactOutput{}, fmt.Errorf("contact not found")
	}

	return nil, contactToOutput(*contact), nil
}

type DeleteContactInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

type DeleteContactOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ContactHandlers) DeleteContact(_ context.Context, request *mcp.CallToolRequest, input DeleteContactInput) (*mcp.CallToolResult, DeleteContactOutput, error) {
	if input.ID == "" {
		return nil, DeleteContactOutput{}, fmt.Errorf("id is required")
	}

	if !h.store.Remove(input.ID) {
		return nil, DeleteContactOutput{}, fmt.Errorf("contact not found")
	}

	return nil, DeleteContactOutput{
		Success: true,
		Message: fmt.Sprintf("Deleted contact: %s", input.ID),
	}, nil
}

type ExportVCardInput struct {
	ID string `json:"id" jsonschema:"Contact ID (required)"`
}

type ExportVCardOutput struct {
	Filename string `json:"filename"`
	VCard    string `json:"vcard"`
}

func (h *ContactHandlers) ExportVCard(_ context.Context, request *mcp.CallToolRequest, input ExportVCardInput) (*mcp.CallToolResult, ExportVCardOutput, error) {
	if input.ID == "" {
		return nil, ExportVCardOutput{}, fmt.Errorf("id is required")
	}

	contact := h.store.Get(input.ID)
	if contact == nil {
		return nil, ExportVCardOutput{}, fmt.Errorf("contact not found")
	}

	return nil, ExportVCardOutput{
		Filename: vcard.Filename(*contact),
		VCard:    vcard.Encode(*contact),
	}, nil
}

func contactToOutput(contact models.Contact) ContactOutput {
	return ContactOutput{
		ID:                 contact.ID,
		Name:               contact.Name,
		Company:            contact.Company,
		Role:               contact.Role,
		Email:              contact.Email,
		Phone:              contact.Phone,
		Location:           contact.Location,
		Summary:            contact.Summary,
		KeyTopics:          contact.KeyTopics,
		ActionItems:        contact.ActionItems,
		FollowUpSuggestion: contact.FollowUpSuggestion,
		MeetingContext:     contact.MeetingContext,
		CreatedAt:          contact.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
