// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Three-view state machine driving capture, browsing, and export
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/models"
	"github.com/harperreed/snapcard/speech"
	"github.com/harperreed/snapcard/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewNew
	ViewDetail
)

// captureDoneMsg carries the resolved contact of one creation flow. The
// generation number fences stale results: a completion from a submission
// that is no longer current is discarded instead of mutating state.
type captureDoneMsg struct {
	generation int
	contact    models.Contact
}

// Model is the main bubbletea model
type Model struct {
	store      *store.Store
	extractor  extract.Client
	recognizer *speech.Recognizer

	viewMode ViewMode

	// List view state
	selectedRow int

	// Detail view state
	selectedID string

	// New view state (draft form + transcript)
	form       formState
	processing bool
	generation int

	// UI state
	width     int
	height    int
	statusMsg string
}

// NewModel creates a new TUI model
func NewModel(st *store.Store, extractor extract.Client, recognizer *speech.Recognizer) Model {
	return Model{
		store:      st,
		extractor:  extractor,
		recognizer: recognizer,
		viewMode:   ViewList,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case captureDoneMsg:
		return m.handleCaptureDone(msg)
	case transcriptTickMsg:
		return m.handleTranscriptTick()
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewNew:
		return m.renderNewView()
	case ViewDetail:
		return m.renderDetailView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewNew:
		return m.handleNewKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	}

	return m, nil
}

// handleCaptureDone resolves a creation flow. Late results (superseded
// generation, or the user already navigated away from the creation view)
// are dropped so they cannot corrupt the current view.
func (m Model) handleCaptureDone(msg captureDoneMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.generation || m.viewMode != ViewNew {
		return m, nil
	}

	m.processing = false
	m.store.Add(msg.contact)
	m.selectedID = msg.contact.ID
	m.selectedRow = 0
	m.viewMode = ViewDetail
	m.statusMsg = ""
	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	recordingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	processingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)
