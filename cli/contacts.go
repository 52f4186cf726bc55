// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for listing, showing, deleting, and exporting contacts
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/snapcard/store"
	"github.com/harperreed/snapcard/vcard"
)

// ListContactsCommand lists stored contacts, newest first.
func ListContactsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	query := fs.String("query", "", "Filter by name, company, or email")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	contacts := st.List()
	q := strings.ToLower(*query)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tROLE\tCAPTURED")

	shown := 0
	for _, c := range contacts {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Company), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Company, c.Role, c.CreatedAt.Format("2006-01-02"))

		shown++
		if shown >= *limit {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d contact(s)\n", shown)
	return nil
}

// ShowContactCommand prints one contact in full.
func ShowContactCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: snapcard contacts show <id>")
	}

	contact := st.Get(args[0])
	if contact == nil {
		return fmt.Errorf("contact not found: %s", args[0])
	}

	fmt.Printf("Name:       %s\n", contact.Name)
	if contact.Company != "" {
		fmt.Printf("Company:    %s\n", contact.Company)
	}
	if contact.Role != "" {
		fmt.Printf("Role:       %s\n", contact.Role)
	}
	if contact.Email != "" {
		fmt.Printf("Email:      %s\n", contact.Email)
	}
	if contact.Phone != "" {
		fmt.Printf("Phone:      %s\n", contact.Phone)
	}
	if contact.Location != "" {
		fmt.Printf("Location:   %s\n", contact.Location)
	}
	if contact.MeetingContext != "" {
		fmt.Printf("Met at:     %s\n", contact.MeetingContext)
	}
	fmt.Printf("Captured:   %s\n", contact.CreatedAt.Format("2006-01-02 15:04"))

	if contact.Summary != "" {
		fmt.Printf("\nSummary:\n  %s\n", contact.Summary)
	}
	if len(contact.KeyTopics) > 0 {
		fmt.Println("\nKey topics:")
		for _, t := range contact.KeyTopics {
			fmt.Printf("  - %s\n", t)
		}
	}
	if len(contact.ActionItems) > 0 {
		fmt.Println("\nAction items:")
		for _, a := range contact.ActionItems {
			fmt.Printf("  - %s\n", a)
		}
	}
	if contact.FollowUpSuggestion != "" {
		fmt.Printf("\nFollow up:  %s\n", contact.FollowUpSuggestion)
	}
	if contact.RawNotes != "" {
		fmt.Printf("\nRaw notes:\n  %s\n", contact.RawNotes)
	}

	return nil
}

// DeleteContactCommand removes a contact by id.
func DeleteContactCommand(st *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: snapcard contacts delete <id>")
	}

	if !st.Remove(args[0]) {
		return fmt.Errorf("contact not found: %s", args[0])
	}

	fmt.Printf("✓ Deleted contact: %s\n", args[0])
	return nil
}

// ExportContactCommand writes a contact's vCard to disk.
func ExportContactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("output", ".", "Directory to write the .vcf file into")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("usage: snapcard contacts export [--output <dir>] <id>")
	}

	contact := st.Get(fs.Arg(0))
	if contact == nil {
		return fmt.Errorf("contact not found: %s", fs.Arg(0))
	}

	path, err := vcard.WriteFile(*contact, *output)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Exported %s\n", path)
	return nil
}
