package hostedlika

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIconFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestIconFromFile_SVG(t *testing.T) {
	data := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)
	path := writeIconFile(t, "icon.svg", data)

	icon, err := IconFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml,"+base64.StdEncoding.EncodeToString(data), icon)
}

func TestIconFromFile_PNG(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	path := writeIconFile(t, "icon.png", data)

	icon, err := IconFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png,"+base64.StdEncoding.EncodeToString(data), icon)
}

func TestIconFromFile_UnknownExtensionHasNoPrefix(t *testing.T) {
	data := []byte("GIF89a")
	path := writeIconFile(t, "icon.gif", data)

	icon, err := IconFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), icon)
}

func TestIconFromFile_MissingFile(t *testing.T) {
	_, err := IconFromFile(filepath.Join(t.TempDir(), "nope.svg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
