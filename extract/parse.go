// ABOUTME: Response parsing for extraction output
// ABOUTME: Strips markdown code fences and decodes the fixed ten-key JSON shape
package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/snapcard/models"
)

// ParseResult decodes an extraction response body. The prompt forbids
// markdown fencing but models emit it anyway, so any ```...``` wrapping is
// stripped before decoding.
func ParseResult(body string) (*models.ExtractionResult, error) {
	cleaned := stripCodeFences(body)

	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object in extraction response")
	}

	var result models.ExtractionResult
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	return &result, nil
}

// stripCodeFences replaces ```lang ... ``` blocks with their inner content.
func stripCodeFences(s string) string {
	for {
		open := strings.Index(s, "```")
		if open < 0 {
			return s
		}
		close := strings.Index(s[open+3:], "```")
		if close < 0 {
			return s
		}
		close += open + 3

		content := s[open+3 : close]
		// Drop the language identifier on the opening fence line.
		if nl := strings.IndexByte(content, '\n'); nl >= 0 {
			content = content[nl+1:]
		}

		s = s[:open] + content + s[close+3:]
	}
}
