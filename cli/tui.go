// ABOUTME: TUI subcommand
// ABOUTME: Probes speech capability once and runs the full-screen interface
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/snapcard/extract"
	"github.com/harperreed/snapcard/speech"
	"github.com/harperreed/snapcard/store"
	"github.com/harperreed/snapcard/tui"
)

// TUICommand runs the interactive interface.
func TUICommand(st *store.Store, extractor extract.Client) error {
	recognizer := speech.NewRecognizer(speech.Detect())

	model := tui.NewModel(st, extractor, recognizer)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}
	return nil
}
