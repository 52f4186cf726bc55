// ABOUTME: Photo ingestion helper
// ABOUTME: Inlines an image file as a data URI payload owned by the contact
package extract

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// LoadPhoto reads an image file and returns it as a data:<mime>;base64 URI.
// An empty path yields an empty payload.
func LoadPhoto(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	mime := http.DetectContentType(data)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
