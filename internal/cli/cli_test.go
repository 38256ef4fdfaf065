package cli

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openelearn/scormpack/internal/config"
	"github.com/openelearn/scormpack/pkg/scormpack"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "package.zip")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestLoadManifestText_BareXML(t *testing.T) {
	path := writeFile(t, "imsmanifest.xml", "<manifest identifier=\"m\"/>")
	text, err := loadManifestText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "identifier")
}

func TestLoadManifestText_FromArchive(t *testing.T) {
	path := writeZip(t, map[string]string{
		"imsmanifest.xml": "<manifest identifier=\"m\"/>",
		"index.html":      "page",
	})
	text, err := loadManifestText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "<manifest")
}

func TestLoadManifestText_ArchiveWithoutManifest(t *testing.T) {
	path := writeZip(t, map[string]string{"index.html": "page"})
	_, err := loadManifestText(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scormpack.ErrManifestMissing))
}

func TestReadArchive_WithinLimit(t *testing.T) {
	path := writeFile(t, "package.zip", "small blob")
	blob, err := readArchive(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "small blob", string(blob))
}

func TestReadArchive_OverLimit(t *testing.T) {
	path := writeFile(t, "package.zip", "this blob is larger than four bytes")
	cfg := &config.ProjectConfig{MaxArchiveSize: 4}

	_, err := readArchive(path, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scormpack.ErrArchiveTooLarge))
}

func TestReadArchive_MissingFile(t *testing.T) {
	_, err := readArchive(filepath.Join(t.TempDir(), "absent.zip"), nil)
	require.Error(t, err)
}

func TestMimeOverrides_NilConfig(t *testing.T) {
	assert.Nil(t, mimeOverrides(nil))
	cfg := &config.ProjectConfig{MimeOverrides: map[string]string{".a": "b"}}
	assert.Equal(t, map[string]string{".a": "b"}, mimeOverrides(cfg))
}
