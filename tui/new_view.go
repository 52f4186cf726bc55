// ABOUTME: Contact creation view for the TUI
// ABOUTME: Draft form, dictated/edited transcript, and the extraction round trip
package tui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/models"
)

// Indexes into formState.inputs.
const (
	fieldName = iota
	fieldCompany
	fieldRole
	fieldEmail
	fieldPhone
	fieldLocation
	fieldMeetingContext
	fieldPhotoPath
	fieldCount
)

// formState is the transient draft for an in-progress capture. It is reset
// on entering the creation view and discarded on cancel.
type formState struct {
	inputs     []textinput.Model
	notes      textarea.Model
	focusIndex int // fieldCount means the notes textarea
}

// transcriptTickMsg refreshes the notes textarea from the recognizer while
// recording is active.
type transcriptTickMsg struct{}

func transcriptTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return transcriptTickMsg{}
	})
}

func (m *Model) resetForm() {
	placeholders := []string{
		"Name", "Company", "Role", "Email", "Phone", "Location",
		"Where did you meet? (e.g. Conf Hall B)", "Photo path (optional)",
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 200
	}

	notes := textarea.New()
	notes.Placeholder = "Dictate or type notes about the person you met..."
	notes.SetHeight(6)
	notes.SetWidth(70)

	m.form = formState{inputs: inputs, notes: notes}
	m.form.inputs[0].Focus()

	if m.recognizer != nil {
		m.recognizer.SetTranscript("")
	}
}

func (m Model) renderNewView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("NEW CONTACT"))
	s.WriteString("\n\n")

	for i, input := range m.form.inputs {
		if i == m.form.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.form.focusIndex == fieldCount {
		s.WriteString("> Notes:\n")
	} else {
		s.WriteString("  Notes:\n")
	}
	s.WriteString(m.form.notes.View())
	s.WriteString("\n\n")

	switch {
	case m.processing:
		s.WriteString(processingStyle.Render("⏳ Processing notes..."))
		s.WriteString("\n")
	case m.recognizer != nil && m.recognizer.Recording():
		s.WriteString(recordingStyle.Render("● Recording"))
		s.WriteString("\n")
	}

	s.WriteString(m.renderNewHelp())

	return s.String()
}

func (m Model) renderNewHelp() string {
	record := "Ctrl+R: Record"
	if m.recognizer == nil || !m.recognizer.Supported() {
		record = "Recording not supported"
	}

	help := []string{
		"Tab: Next field",
		record,
		"Ctrl+S: Save",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleNewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel: draft form and transcript are discarded.
		if m.recognizer != nil && m.recognizer.Recording() {
			m.recognizer.Toggle()
		}
		m.processing = false
		m.generation++ // fence any in-flight extraction
		m.viewMode = ViewList
		return m, nil

	case "tab":
		m.form.focusIndex = (m.form.focusIndex + 1) % (fieldCount + 1)
		m.updateFormFocus()
		return m, nil

	case "shift+tab":
		m.form.focusIndex = (m.form.focusIndex + fieldCount) % (fieldCount + 1)
		m.updateFormFocus()
		return m, nil

	case "ctrl+r":
		return m.toggleRecording()

	case "ctrl+s":
		return m.submitCapture()
	}

	if m.processing {
		return m, nil
	}

	var cmd tea.Cmd
	if m.form.focusIndex == fieldCount {
		m.form.notes, cmd = m.form.notes.Update(msg)
	} else {
		m.form.inputs[m.form.focusIndex], cmd = m.form.inputs[m.form.focusIndex].Update(msg)
	}
	return m, cmd
}

func (m *Model) updateFormFocus() {
	for i := range m.form.inputs {
		if i == m.form.focusIndex {
			m.form.inputs[i].Focus()
		} else {
			m.form.inputs[i].Blur()
		}
	}

	if m.form.focusIndex == fieldCount {
		m.form.notes.Focus()
	} else {
		m.form.notes.Blur()
	}
}

func (m Model) toggleRecording() (tea.Model, tea.Cmd) {
	if m.recognizer == nil || !m.recognizer.Supported() || m.processing {
		return m, nil
	}

	if m.recognizer.Toggle() {
		// Capture started; prior transcript was cleared.
		m.form.notes.SetValue("")
		return m, transcriptTick()
	}

	// Capture stopped; the transcript stays put for manual editing.
	return m, nil
}

func (m Model) handleTranscriptTick() (tea.Model, tea.Cmd) {
	if m.viewMode != ViewNew || m.recognizer == nil || !m.recognizer.Recording() {
		return m, nil
	}

	m.form.notes.SetValue(m.recognizer.Transcript())
	return m, transcriptTick()
}

// submitCapture kicks off the extraction round trip. The submit control is
// inert while the transcript is empty or a capture is already in flight.
func (m Model) submitCapture() (tea.Model, tea.Cmd) {
	transcript := m.form.notes.Value()
	if m.processing || !models.HasTranscript(transcript) {
		return m, nil
	}

	if m.recognizer != nil && m.recognizer.Recording() {
		m.recognizer.Toggle()
	}

	form := models.FormData{
		Name:           m.form.inputs[fieldName].Value(),
		Company:        m.form.inputs[fieldCompany].Value(),
		Role:           m.form.inputs[fieldRole].Value(),
		Email:          m.form.inputs[fieldEmail].Value(),
		Phone:          m.form.inputs[fieldPhone].Value(),
		Location:       m.form.inputs[fieldLocation].Value(),
		MeetingContext: m.form.inputs[fieldMeetingContext].Value(),
	}
	photoPath := m.form.inputs[fieldPhotoPath].Value()

	m.processing = true
	m.generation++
	generation := m.generation
	extractor := m.extractor

	return m, func() tea.Msg {
		photo, err := extract.LoadPhoto(photoPath)
		if err != nil {
			log.Printf("warning: skipping photo: %v", err)
			photo = ""
		}

		contact := extract.Capture(context.Background(), extractor, transcript, form, photo)
		return captureDoneMsg{generation: generation, contact: contact}
	}
}
