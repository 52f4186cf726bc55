// ABOUTME: Contact list view for the TUI
// ABOUTME: Renders the stored contacts newest-first and routes to creation and detail
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SNAPCARD"))
	s.WriteString("\n\n")

	s.WriteString(m.renderContactsTable())
	s.WriteString("\n\n")

	if m.statusMsg != "" {
		s.WriteString(statusStyle.Render(m.statusMsg))
		s.WriteString("\n")
	}

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderContactsTable() string {
	contacts := m.store.List()
	if len(contacts) == 0 {
		return "No contacts yet. Press n to capture your first one."
	}

	columns := []table.Column{
		{Title: "Name", Width: 28},
		{Title: "Company", Width: 22},
		{Title: "Role", Width: 20},
		{Title: "Captured", Width: 12},
	}

	var rows []table.Row
	for _, contact := range contacts {
		rows = append(rows, table.Row{
			contact.Name,
			contact.Company,
			contact.Role,
			contact.CreatedAt.Format("2006-01-02"),
		})
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Enter: View details",
		"n: New contact",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.store.Len()-1 {
			m.selectedRow++
		}
	case "enter":
		contacts := m.store.List()
		if m.selectedRow < len(contacts) {
			m.selectedID = contacts[m.selectedRow].ID
			m.viewMode = ViewDetail
			m.statusMsg = ""
		}
	case "n":
		// Entering the creation view resets the draft form, transcript,
		// and photo.
		m.resetForm()
		m.processing = false
		m.viewMode = ViewNew
		m.statusMsg = ""
	}

	return m, nil
}
