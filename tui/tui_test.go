// ABOUTME: Tests for the TUI state machine
// ABOUTME: Drives view transitions and the capture round trip through Update
package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/snapcard/models"
	"github.com/harperreed/snapcard/speech"
	"github.com/harperreed/snapcard/store"
)

type fakeExtractor struct {
	result *models.ExtractionResult
	err    error
}

func (f *fakeExtractor) Extract(_ context.Context, _ string, _ models.FormData) (*models.ExtractionResult, error) {
	return f.result, f.err
}

func testModel(t *testing.T) Model {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store setup failed: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return NewModel(st, &fakeExtractor{}, speech.NewRecognizer(nil))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestListToNewAndBack(t *testing.T) {
	m := testModel(t)

	m = update(m, key("n"))
	if m.viewMode != ViewNew {
		t.Fatalf("expected ViewNew after n, got %v", m.viewMode)
	}

	m = update(m, key("esc"))
	if m.viewMode != ViewList {
		t.Fatalf("expected ViewList after esc, got %v", m.viewMode)
	}
}

func TestEnterOpensDetail(t *testing.T) {
	m := testModel(t)
	c := models.Contact{ID: models.NewContactID(), Name: "Sarah Chen", CreatedAt: time.Now()}
	m.store.Add(c)

	m = update(m, key("enter"))
	if m.viewMode != ViewDetail {
		t.Fatalf("expected ViewDetail, got %v", m.viewMode)
	}
	if m.selectedID != c.ID {
		t.Errorf("selectedID = %q, want %q", m.selectedID, c.ID)
	}
}

func TestEnterOnEmptyListStays(t *testing.T) {
	m := testModel(t)
	m = update(m, key("enter"))
	if m.viewMode != ViewList {
		t.Errorf("empty list enter left the list view: %v", m.viewMode)
	}
}

func TestSubmitRequiresTranscript(t *testing.T) {
	m := testModel(t)
	m = update(m, key("n"))

	next, cmd := m.Update(key("ctrl+s"))
	m = next.(Model)
	if cmd != nil || m.processing {
		t.Error("submit with empty notes should be inert")
	}

	m.form.notes.SetValue("   \n")
	next, cmd = m.Update(key("ctrl+s"))
	m = next.(Model)
	if cmd != nil || m.processing {
		t.Error("submit with whitespace notes should be inert")
	}
}

func TestCaptureRoundTrip(t *testing.T) {
	m := testModel(t)
	m.extractor = &fakeExtractor{result: &models.ExtractionResult{
		Name:    "Sarah Chen",
		Summary: "VP of Engineering at Acme.",
	}}

	m = update(m, key("n"))
	m.form.notes.SetValue("met sarah from acme")

	next, cmd := m.Update(key("ctrl+s"))
	m = next.(Model)
	if !m.processing {
		t.Fatal("submit did not enter processing state")
	}
	if cmd == nil {
		t.Fatal("submit returned no command")
	}

	// Further submits are inert while one is in flight.
	if _, dup := m.Update(key("ctrl+s")); dup != nil {
		t.Error("double submit started a second capture")
	}

	m = update(m, cmd())
	if m.processing {
		t.Error("still processing after completion")
	}
	if m.viewMode != ViewDetail {
		t.Fatalf("expected ViewDetail after capture, got %v", m.viewMode)
	}

	contact := m.store.Get(m.selectedID)
	if contact == nil {
		t.Fatal("captured contact not stored")
	}
	if contact.Name != "Sarah Chen" {
		t.Errorf("contact name = %q", contact.Name)
	}
	if contact.RawNotes != "met sarah from acme" {
		t.Errorf("raw notes = %q", contact.RawNotes)
	}
}

func TestCancelDiscardsInFlightCapture(t *testing.T) {
	m := testModel(t)
	m = update(m, key("n"))
	m.form.notes.SetValue("met someone")

	next, cmd := m.Update(key("ctrl+s"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("submit returned no command")
	}

	// User cancels while extraction is still running.
	m = update(m, key("esc"))
	if m.viewMode != ViewList {
		t.Fatalf("expected ViewList after cancel, got %v", m.viewMode)
	}

	// The late completion must not store a contact or switch views.
	m = update(m, cmd())
	if m.viewMode != ViewList {
		t.Error("stale capture result changed the view")
	}
	if m.store.Len() != 0 {
		t.Error("stale capture result was stored")
	}
}

func TestResubmitSupersedesOldCapture(t *testing.T) {
	m := testModel(t)
	m = update(m, key("n"))
	m.form.notes.SetValue("first notes")

	next, first := m.Update(key("ctrl+s"))
	m = next.(Model)
	firstMsg := first()

	// Cancel, start over, submit again.
	m = update(m, key("esc"))
	m = update(m, key("n"))
	m.form.notes.SetValue("second notes")
	next, second := m.Update(key("ctrl+s"))
	m = next.(Model)

	// Old result arrives late; only the new one may land.
	m = update(m, firstMsg)
	if m.store.Len() != 0 {
		t.Fatal("superseded capture was stored")
	}

	m = update(m, second())
	if m.store.Len() != 1 {
		t.Fatal("current capture was not stored")
	}
	if m.store.List()[0].RawNotes != "second notes" {
		t.Errorf("stored wrong capture: %q", m.store.List()[0].RawNotes)
	}
}

func TestDetailDelete(t *testing.T) {
	m := testModel(t)
	c := models.Contact{ID: models.NewContactID(), Name: "Sarah Chen", CreatedAt: time.Now()}
	m.store.Add(c)
	m = update(m, key("enter"))

	m = update(m, key("d"))
	if m.viewMode != ViewList {
		t.Fatalf("expected ViewList after delete, got %v", m.viewMode)
	}
	if m.store.Len() != 0 {
		t.Error("contact not deleted")
	}
	if m.statusMsg != "Contact deleted" {
		t.Errorf("statusMsg = %q", m.statusMsg)
	}
}

func TestRecordKeyWithoutSpeechIsInert(t *testing.T) {
	m := testModel(t)
	m = update(m, key("n"))

	next, cmd := m.Update(key("ctrl+r"))
	m = next.(Model)
	if cmd != nil {
		t.Error("ctrl+r scheduled a tick without a speech engine")
	}
	if m.recognizer.Recording() {
		t.Error("recording without a speech engine")
	}
}

func TestWindowSizeUpdates(t *testing.T) {
	m := testModel(t)
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size not applied: %dx%d", m.width, m.height)
	}
}
