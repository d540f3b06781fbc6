package pdf

import (
	"testing"

	"github.com/McPeakDev/pdf-forge/internal/pagination"
)

func TestRenderEmptyPageProducesValidPDF(t *testing.T) {
	config := &pagination.LayoutConfig{
		Title:        "empty",
		PageWidthPt:  595.28,
		PageHeightPt: 841.89,
	}
	bytes, err := NewRenderer().Render(config)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(bytes) < 5 || string(bytes[:5]) != "%PDF-" {
		t.Fatalf("expected output to start with the PDF magic number, got %q", bytes[:min(5, len(bytes))])
	}
}

func TestRenderBoxWithTextAndBackground(t *testing.T) {
	marker := "1. "
	config := &pagination.LayoutConfig{
		Title:        "doc",
		PageWidthPt:  595.28,
		PageHeightPt: 841.89,
		Pages: []pagination.Page{{
			PageIndex: 0,
			Boxes: []*pagination.LayoutBox{{
				X: 40, Y: 40, Width: 200, Height: 20,
				BackgroundColor: &[4]float64{1, 1, 1, 1},
				Text: &pagination.TextContent{
					Lines:      []pagination.TextLine{{Text: "hello", XOffset: 0, YOffset: 0}},
					FontFamily: "Helvetica",
					FontSize:   12,
					Color:      [4]float64{0, 0, 0, 1},
					LineHeight: 14,
					TextAlign:  "left",
					ListMarker: &marker,
				},
			}},
		}},
	}
	bytes, err := NewRenderer().Render(config)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(bytes) == 0 {
		t.Fatalf("expected non-empty PDF output")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
