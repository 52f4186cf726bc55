// ABOUTME: Prompt construction for the extraction call
// ABOUTME: Renders the embedded template with the transcript and non-empty hint fields
package extract

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/harperreed/snapcard/models"
)

//go:embed prompt/extract.md
var extractPromptRaw string

var extractPromptTmpl = template.Must(template.New("extract").Parse(extractPromptRaw))

type promptHint struct {
	Label string
	Value string
}

// BuildPrompt renders the extraction prompt. Only non-empty hint fields are
// embedded; an empty draft yields a prompt with no hint section at all.
func BuildPrompt(transcript string, form models.FormData) (string, error) {
	var hints []promptHint
	for _, h := range []promptHint{
		{"Name", form.Name},
		{"Company", form.Company},
		{"Role", form.Role},
		{"Email", form.Email},
		{"Phone", form.Phone},
		{"Location", form.Location},
		{"Where we met", form.MeetingContext},
	} {
		if h.Value != "" {
			hints = append(hints, h)
		}
	}

	var buf bytes.Buffer
	err := extractPromptTmpl.Execute(&buf, map[string]any{
		"Transcript": transcript,
		"Hints":      hints,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render extraction prompt: %w", err)
	}

	return buf.String(), nil
}
