package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/openelearn/scormpack/pkg/scormpack"
)

// Reader exposes named-entry lookup over an in-memory zip archive.
// Lookups are case-insensitive and resolve through a single wrapping
// directory when the package was zipped one level too high.
type Reader struct {
	entries map[string]*zip.File

	// prefix is the normalized wrapping directory (with trailing slash)
	// all entries live under, or empty when the manifest sits at the root.
	prefix string
}

// Open parses blob as a zip archive. It fails with ErrInvalidArchive when
// the blob is not a valid zip container.
func Open(blob []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", scormpack.ErrInvalidArchive, err)
	}

	r := &Reader{entries: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		r.entries[normalize(f.Name)] = f
	}
	r.prefix = detectPrefix(r.entries)
	return r, nil
}

// Entry returns the raw bytes of the named entry. The boolean is false
// when the entry is absent or unreadable; Entry never fails otherwise.
// Missing entries are the caller's leniency to apply, not an error here.
func (r *Reader) Entry(name string) ([]byte, bool) {
	f, ok := r.lookup(name)
	if !ok {
		return nil, false
	}
	rc, err := f.Open()
	if err != nil {
		return nil, false
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Has reports whether the named entry exists in the archive.
func (r *Reader) Has(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// Manifest returns the text of the required imsmanifest.xml entry.
// It fails with ErrManifestMissing when the archive has none.
func (r *Reader) Manifest() (string, error) {
	b, ok := r.Entry(scormpack.ManifestFileName)
	if !ok {
		return "", scormpack.ErrManifestMissing
	}
	return string(b), nil
}

// Names returns the normalized names of all file entries, sorted, with
// the wrapping-directory prefix stripped.
func (r *Reader) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, strings.TrimPrefix(name, r.prefix))
	}
	sort.Strings(names)
	return names
}

func (r *Reader) lookup(name string) (*zip.File, bool) {
	key := normalize(name)
	if f, ok := r.entries[r.prefix+key]; ok {
		return f, true
	}
	f, ok := r.entries[key]
	return f, ok
}

// normalize lowers case, forces forward slashes and strips leading "./"
// so manifest hrefs and zip entry names compare equal regardless of how
// the authoring tool wrote them.
func normalize(name string) string {
	n := strings.ToLower(name)
	n = strings.ReplaceAll(n, "\\", "/")
	n = strings.TrimPrefix(n, "./")
	return strings.TrimPrefix(n, "/")
}

// detectPrefix finds the single top-level directory holding the manifest
// when the package root itself was zipped. Returns "" when the manifest
// is at the root or cannot be located.
func detectPrefix(entries map[string]*zip.File) string {
	manifest := normalize(scormpack.ManifestFileName)
	if _, ok := entries[manifest]; ok {
		return ""
	}
	for name := range entries {
		if strings.HasSuffix(name, "/"+manifest) && strings.Count(name, "/") == 1 {
			return strings.TrimSuffix(name, manifest)
		}
	}
	return ""
}
