// ABOUTME: One-shot capture command
// ABOUTME: Reads notes from flag, file, or stdin and runs the full creation flow
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/models"
	"github.com/harperreed/snapcard/store"
)

// CaptureCommand creates one contact from free-text notes. Extraction
// failures are not fatal: the contact is saved with fallback content.
func CaptureCommand(st *store.Store, extractor extract.Client, args []string) error {
	fs := flag.NewFlagSet("capture", flag.ExitOnError)
	notes := fs.String("notes", "", "Free-text notes (reads stdin if omitted)")
	notesFile := fs.String("notes-file", "", "Path to a file containing the notes")
	name := fs.String("name", "", "Known contact name")
	company := fs.String("company", "", "Known company")
	role := fs.String("role", "", "Known role or title")
	email := fs.String("email", "", "Known email address")
	phone := fs.String("phone", "", "Known phone number")
	location := fs.String("location", "", "Known location")
	meetingContext := fs.String("context", "", "Where or how you met")
	photoPath := fs.String("photo", "", "Path to a photo to attach")
	_ = fs.Parse(args)

	transcript := *notes
	if transcript == "" && *notesFile != "" {
		data, err := os.ReadFile(*notesFile)
		if err != nil {
			return fmt.Errorf("failed to read notes file: %w", err)
		}
		transcript = string(data)
	}
	if transcript == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read notes from stdin: %w", err)
		}
		transcript = string(data)
	}

	if !models.HasTranscript(transcript) {
		return fmt.Errorf("notes are required (use --notes, --notes-file, or stdin)")
	}

	photo, err := extract.LoadPhoto(*photoPath)
	if err != nil {
		return err
	}

	form := models.FormData{
		Name:           *name,
		Company:        *company,
		Role:           *role,
		Email:          *email,
		Phone:          *phone,
		Location:       *location,
		MeetingContext: *meetingContext,
	}

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " Processing notes..."
	sp.Start()
	contact := extract.Capture(context.Background(), extractor, transcript, form, photo)
	sp.Stop()

	st.Add(contact)

	fmt.Printf("✓ Contact created: %s (ID: %s)\n", contact.Name, contact.ID)
	if contact.Company != "" {
		fmt.Printf("  Company: %s\n", contact.Company)
	}
	if contact.Role != "" {
		fmt.Printf("  Role: %s\n", contact.Role)
	}
	if contact.Email != "" {
		fmt.Printf("  Email: %s\n", contact.Email)
	}
	if contact.Summary != "" {
		fmt.Printf("  Summary: %s\n", contact.Summary)
	}

	return nil
}
