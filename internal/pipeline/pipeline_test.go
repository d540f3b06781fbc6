package pipeline

import "testing"

func TestGenerateProducesValidPDF(t *testing.T) {
	result, err := Generate("<h1>Hello</h1><p>World</p>", DefaultConfig())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.PDF) < 5 || string(result.PDF[:5]) != "%PDF-" {
		t.Fatalf("expected PDF magic number, got %q", result.PDF[:5])
	}
	if len(result.LayoutConfig.Pages) == 0 {
		t.Fatalf("expected at least one page")
	}
}

func TestGenerateNoWarningsForPlainDocument(t *testing.T) {
	result, err := Generate("<p>plain text</p>", DefaultConfig())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(result.Warnings()) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings())
	}
}

func TestLandscapeSwapsDimensions(t *testing.T) {
	config := DefaultConfig()
	config.Orientation = Landscape
	if config.EffectiveWidth() != config.PageHeight || config.EffectiveHeight() != config.PageWidth {
		t.Fatalf("expected landscape to swap page dimensions")
	}
}

func TestComputeLayoutConfigMultiPage(t *testing.T) {
	html := ""
	for i := 0; i < 80; i++ {
		html += "<p>Paragraph with enough text to take up some vertical space on the page.</p>"
	}
	config := DefaultConfig()
	layoutConfig := ComputeLayoutConfig(html, config)
	if len(layoutConfig.Pages) <= 1 {
		t.Fatalf("expected multiple pages, got %d", len(layoutConfig.Pages))
	}
}

func TestRenderLayoutConfigStandalone(t *testing.T) {
	config := DefaultConfig()
	layoutConfig := ComputeLayoutConfig("<p>hi</p>", config)
	pdfBytes, err := RenderLayoutConfig(layoutConfig)
	if err != nil {
		t.Fatalf("RenderLayoutConfig returned error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatalf("expected non-empty PDF bytes")
	}
}
