// ABOUTME: vCard 3.0 exporter for captured contacts
// ABOUTME: Emits only present fields and derives a .vcf filename from the display name
package vcard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/snapcard/models"
)

// MIMEType is the media type of an exported document.
const MIMEType = "text/vcard"

// Encode renders a text/vcard version-3.0 document. Optional fields are
// omitted as lines rather than emitted empty. The NOTE line always appears,
// combining the summary (possibly empty) with the meeting context.
// vCard-reserved characters in source fields are not escaped; a transcript
// containing semicolons or newlines produces a document some parsers will
// misread.
func Encode(c models.Contact) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCARD\n")
	b.WriteString("VERSION:3.0\n")
	fmt.Fprintf(&b, "FN:%s\n", c.Name)

	if c.Company != "" {
		fmt.Fprintf(&b, "ORG:%s\n", c.Company)
	}
	if c.Role != "" {
		fmt.Fprintf(&b, "TITLE:%s\n", c.Role)
	}
	if c.Email != "" {
		fmt.Fprintf(&b, "EMAIL:%s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(&b, "TEL:%s\n", c.Phone)
	}
	if c.Location != "" {
		fmt.Fprintf(&b, "ADR:;;%s;;;;\n", c.Location)
	}

	meeting := c.MeetingContext
	if meeting == "" {
		meeting = models.DefaultMeetingContext
	}
	fmt.Fprintf(&b, "NOTE:%s (Met: %s)\n", c.Summary, meeting)

	b.WriteString("END:VCARD\n")
	return b.String()
}

// Filename derives the download name: display name with whitespace runs
// collapsed to underscores, plus the .vcf extension.
func Filename(c models.Contact) string {
	name := strings.Join(strings.Fields(c.Name), "_")
	if name == "" {
		name = "contact"
	}
	return name + ".vcf"
}

// WriteFile exports the contact into dir and returns the written path.
func WriteFile(c models.Contact, dir string) (string, error) {
	path := filepath.Join(dir, Filename(c))
	if err := os.WriteFile(path, []byte(Encode(c)), 0644); err != nil {
		return "", fmt.Errorf("failed to write vCard: %w", err)
	}
	return path, nil
}
