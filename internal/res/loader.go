// Package res loads font files from local search-path directories for
// the Font/Metrics Service. Adapted from the teacher's
// internal/res/loader.go: the HTTP-remote-fetch and generic
// image/CSS/HTML resource paths are dropped (spec §1's Non-goals
// exclude network fetches; images are inline base64 data URIs decoded
// directly by internal/layout and internal/render/pdf), leaving the
// local-search-path font lookup the rest of the pipeline still needs.
package res

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader searches a list of directories for named font files.
type Loader struct {
	searchPaths []string
}

// NewLoader constructs an empty Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// AddSearchPath adds a directory to search for font files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFont searches every registered path for a file named family plus
// one of the recognized font extensions (.ttf, .otf) and returns its
// bytes.
func (l *Loader) LoadFont(family string) ([]byte, error) {
	candidates := []string{family + ".ttf", family + ".otf"}
	for _, dir := range l.searchPaths {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if data, err := os.ReadFile(path); err == nil {
				return data, nil
			}
		}
	}
	return nil, fmt.Errorf("font not found in search paths: %s", family)
}

// IsFontFile reports whether path has a recognized font file extension.
func IsFontFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ttf" || ext == ".otf"
}

// FontFile is a discovered font file and the family name derived from
// its base filename (minus extension).
type FontFile struct {
	Family string
	Path   string
}

// ListFontFiles scans every registered search path (non-recursively)
// for font files, so a pipeline can bulk-register every font it finds
// without the caller needing to know family names in advance.
func (l *Loader) ListFontFiles() []FontFile {
	var found []FontFile
	for _, dir := range l.searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !IsFontFile(entry.Name()) {
				continue
			}
			family := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
			found = append(found, FontFile{Family: family, Path: filepath.Join(dir, entry.Name())})
		}
	}
	return found
}
