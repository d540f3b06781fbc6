package fonts

import (
	"strings"

	"golang.org/x/text/width"
)

// MeasureTextWidth returns the width in px of text set at fontSize in
// the given family/weight/style: fpdf core-font metrics when the
// resolved face has bytes (see measureRealGlyphs), else a
// per-character heuristic.
func (s *Service) MeasureTextWidth(text string, fontSize float64, bold, italic bool, family string) float64 {
	if text == "" || fontSize <= 0 {
		return 0
	}
	key := Key{Family: family, Bold: bold, Italic: italic}
	face := s.face(key)
	if face.Bytes != nil {
		return s.measureRealGlyphs(text, fontSize, bold, italic, family)
	}
	return s.measureHeuristic(text, fontSize, bold)
}

// measureRealGlyphs measures text for a face that has bytes, via
// fpdf.GetStringWidth (grounded on the teacher's measureTextWidth).
// The width comes from fpdf's built-in core font that pdfFontSpec maps
// the family to (Helvetica, Times or Courier, with bold/italic); the
// face's own bytes and its units-per-em are not read, and characters
// the core font lacks get whatever width fpdf assigns them.
func (s *Service) measureRealGlyphs(text string, fontSize float64, bold, italic bool, family string) float64 {
	s.measurePDFOnce.Do(s.initMeasurePDF)
	s.mu.Lock()
	defer s.mu.Unlock()
	fam, sty := pdfFontSpec(family, bold, italic)
	s.measurePDF.SetFont(fam, sty, fontSize)
	return s.measurePDF.GetStringWidth(text)
}

// measureHeuristic implements the no-real-glyph-bytes branch:
// char_count * font-size * (0.55 if bold else 0.5), additionally
// treating East-Asian fullwidth/wide runes as double-width via
// golang.org/x/text/width before applying the per-character heuristic
// (a supplemented detail; the ASCII-only heuristic path is unchanged
// for ASCII text).
func (s *Service) measureHeuristic(text string, fontSize float64, bold bool) float64 {
	base := 0.5
	if bold {
		base = 0.55
	}
	unit := fontSize * base
	total := 0.0
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			total += unit * 2
		default:
			total += unit
		}
	}
	return total
}

// LineHeightPx returns font-size * multiplier.
func (s *Service) LineHeightPx(fontSize, multiplier float64) float64 {
	return fontSize * multiplier
}

// AscenderPx returns ascender * font-size / units-per-em for the
// resolved face.
func (s *Service) AscenderPx(fontSize float64, bold, italic bool, family string) float64 {
	face := s.face(Key{Family: family, Bold: bold, Italic: italic})
	if face.UnitsPerEm == 0 {
		return fontSize * 0.75
	}
	return face.Ascender * fontSize / face.UnitsPerEm
}

// WrapText hard-splits on '\n', then greedy-wraps each paragraph's
// whitespace-separated words against widthPx, per spec §4.3. Never
// returns an empty slice.
func (s *Service) WrapText(text string, widthPx float64, fontSize float64, bold, italic bool, family string) []string {
	if widthPx <= 0 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	var lines []string
	for _, para := range paragraphs {
		lines = append(lines, s.wrapParagraph(para, widthPx, fontSize, bold, italic, family)...)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

func (s *Service) wrapParagraph(para string, widthPx, fontSize float64, bold, italic bool, family string) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var current strings.Builder
	for _, word := range words {
		candidate := word
		if current.Len() > 0 {
			candidate = current.String() + " " + word
		}
		if s.MeasureTextWidth(candidate, fontSize, bold, italic, family) > widthPx && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			continue
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 || len(lines) == 0 {
		lines = append(lines, current.String())
	}
	return lines
}
