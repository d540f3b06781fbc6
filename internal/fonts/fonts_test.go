package fonts

import "testing"

func TestWrapTextNeverEmpty(t *testing.T) {
	s := NewService()
	if lines := s.WrapText("", 100, 16, false, false, "Helvetica"); len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected [\"\"], got %#v", lines)
	}
	if lines := s.WrapText("hello", 0, 16, false, false, "Helvetica"); len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("expected passthrough for width<=0, got %#v", lines)
	}
}

func TestWrapTextHardSplitsOnNewline(t *testing.T) {
	s := NewService()
	lines := s.WrapText("line one\nline two", 1000, 16, false, false, "Helvetica")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %#v", len(lines), lines)
	}
}

func TestWrapTextGreedyWraps(t *testing.T) {
	s := NewService()
	wordWidth := s.MeasureTextWidth("word", 16, false, false, "Helvetica")
	lines := s.WrapText("word word word word", wordWidth*2.5, 16, false, false, "Helvetica")
	if len(lines) < 2 {
		t.Fatalf("expected wrapping to produce multiple lines, got %#v", lines)
	}
	for _, l := range lines {
		w := s.MeasureTextWidth(l, 16, false, false, "Helvetica")
		words := len(splitFields(l))
		if w > wordWidth*2.5+0.01 && words > 1 {
			t.Fatalf("line %q exceeds wrap width", l)
		}
	}
}

func splitFields(s string) []string {
	var out []string
	var cur []rune
	for _, r := range s {
		if r == ' ' {
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}

func TestMeasureHeuristicNoRealGlyphs(t *testing.T) {
	s := NewService()
	w := s.MeasureTextWidth("abcd", 20, false, false, "UnknownFamily")
	want := 4 * 20 * 0.5
	if w != want {
		t.Fatalf("expected heuristic width %v, got %v", want, w)
	}
}

func TestLineHeightAndAscender(t *testing.T) {
	s := NewService()
	if got := s.LineHeightPx(16, 1.4); got != 22.4 {
		t.Fatalf("expected 22.4, got %v", got)
	}
	if got := s.AscenderPx(16, false, false, "Helvetica"); got != 12 {
		t.Fatalf("expected ascender 12, got %v", got)
	}
}
