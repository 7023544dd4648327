package hostedlika

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

// IconFromFile reads an icon image from disk and encodes it in the inline
// form the license provider expects: base64, prefixed with a MIME type for
// the file extensions the portal recognizes (.svg and .png). Other
// extensions are encoded without a prefix.
func IconFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read icon file %s: %w", path, err)
	}

	var prefix string
	switch filepath.Ext(path) {
	case ".svg":
		prefix = "image/svg+xml,"
	case ".png":
		prefix = "image/png,"
	}

	return prefix + base64.StdEncoding.EncodeToString(data), nil
}
