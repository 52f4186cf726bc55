// ABOUTME: Contact detail view for the TUI
// ABOUTME: Renders all captured fields and handles export and deletion
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/snapcard/vcard"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(16)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDetailView() string {
	contact := m.store.Get(m.selectedID)
	if contact == nil {
		return "Contact not found.\n\n" + m.renderDetailHelp()
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("CONTACT"))
	s.WriteString("\n\n")

	s.WriteString(m.renderField("Name", contact.Name))
	s.WriteString(m.renderField("Company", contact.Company))
	s.WriteString(m.renderField("Role", contact.Role))
	s.WriteString(m.renderField("Email", contact.Email))
	s.WriteString(m.renderField("Phone", contact.Phone))
	s.WriteString(m.renderField("Location", contact.Location))
	s.WriteString(m.renderField("Met at", contact.MeetingContext))
	s.WriteString(m.renderField("Captured", contact.CreatedAt.Format("2006-01-02 15:04")))

	if contact.Summary != "" {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Render("SUMMARY"))
		s.WriteString("\n")
		s.WriteString(contact.Summary)
		s.WriteString("\n")
	}

	if len(contact.KeyTopics) > 0 {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Render("KEY TOPICS"))
		s.WriteString("\n")
		for _, topic := range contact.KeyTopics {
			s.WriteString(fmt.Sprintf("  • %s\n", topic))
		}
	}

	if len(contact.ActionItems) > 0 {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Render("ACTION ITEMS"))
		s.WriteString("\n")
		for _, item := range contact.ActionItems {
			s.WriteString(fmt.Sprintf("  • %s\n", item))
		}
	}

	if contact.FollowUpSuggestion != "" {
		s.WriteString("\n")
		s.WriteString(m.renderField("Follow up", contact.FollowUpSuggestion))
	}

	if contact.RawNotes != "" {
		s.WriteString("\n")
		s.WriteString(lipgloss.NewStyle().Bold(true).Render("RAW NOTES"))
		s.WriteString("\n")
		s.WriteString(contact.RawNotes)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.statusMsg != "" {
		s.WriteString(statusStyle.Render(m.statusMsg))
		s.WriteString("\n")
	}
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s\n",
		fieldLabelStyle.Render(label+":"),
		fieldValueStyle.Render(value))
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"Esc: Back",
		"e: Export vCard",
		"d: Delete",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		m.viewMode = ViewList
		m.statusMsg = ""

	case "e":
		contact := m.store.Get(m.selectedID)
		if contact == nil {
			break
		}
		path, err := vcard.WriteFile(*contact, ".")
		if err != nil {
			m.statusMsg = "Export failed: " + err.Error()
		} else {
			m.statusMsg = "Exported " + path
		}

	case "d":
		m.store.Remove(m.selectedID)
		m.selectedID = ""
		m.selectedRow = 0
		m.viewMode = ViewList
		m.statusMsg = "Contact deleted"
	}

	return m, nil
}
