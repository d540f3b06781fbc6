// Package fonts implements the Font/Metrics Service: a per-call store
// of font faces keyed by (family, bold, italic), with a synthetic
// Helvetica face always present so measurement never fails.
package fonts

import (
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"
)

// Key identifies a font face by family, weight, and style.
type Key struct {
	Family string
	Bold   bool
	Italic bool
}

// Face caches a font's raw bytes (when loaded from disk) and its four
// metrics, scaled in font units (units-per-em basis).
type Face struct {
	Bytes         []byte // nil for the synthetic fallback face
	UnitsPerEm    float64
	Ascender      float64
	Descender     float64
	LineGap       float64
}

// synthetic is the always-present Helvetica heuristic face per spec
// §4.3: no glyph bytes, conventional metrics.
var synthetic = Face{
	UnitsPerEm: 1000,
	Ascender:   750,
	Descender:  -250,
	LineGap:    0,
}

// Service is the Font/Metrics Service: owned per pipeline call, never
// shared across calls (spec §5).
type Service struct {
	mu    sync.Mutex
	faces map[Key]Face

	// measurePDF backs real glyph-advance measurement via fpdf's font
	// metrics tables, grounded on the teacher's engine.go
	// measureTextWidth/resolveFontFromStyle. Lazily constructed so a
	// Service that never measures real faces never pays fpdf's setup
	// cost.
	measurePDF     *fpdf.Fpdf
	measurePDFOnce sync.Once
}

// NewService constructs a Font/Metrics Service with the synthetic
// Helvetica face pre-registered.
func NewService() *Service {
	return &Service{
		faces: map[Key]Face{
			{Family: "Helvetica", Bold: false, Italic: false}: synthetic,
		},
	}
}

// LoadFace registers a real font face loaded from disk bytes, caching
// its metrics under the given key.
func (s *Service) LoadFace(key Key, data []byte, unitsPerEm, ascender, descender, lineGap float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faces[key] = Face{
		Bytes:      data,
		UnitsPerEm: unitsPerEm,
		Ascender:   ascender,
		Descender:  descender,
		LineGap:    lineGap,
	}
}

// face resolves the closest registered face for a key, falling back to
// the synthetic Helvetica face so lookup never fails.
func (s *Service) face(key Key) Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.faces[key]; ok {
		return f
	}
	if f, ok := s.faces[Key{Family: key.Family}]; ok {
		return f
	}
	return synthetic
}

func (s *Service) initMeasurePDF() {
	s.measurePDF = fpdf.New("P", "pt", "A4", "")
	s.measurePDF.SetFont("Helvetica", "", 12)
}

// pdfFontSpec maps a family name + bold/italic flags to fpdf's core
// font family name and style string, per the teacher's
// resolveFontFromStyle.
func pdfFontSpec(family string, bold, italic bool) (string, string) {
	fam := "Helvetica"
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "arial", "helvetica", "sans-serif", "":
		fam = "Helvetica"
	case "times", "times new roman", "serif":
		fam = "Times"
	case "courier", "courier new", "monospace":
		fam = "Courier"
	}
	sty := ""
	if bold {
		sty += "B"
	}
	if italic {
		sty += "I"
	}
	return fam, sty
}
