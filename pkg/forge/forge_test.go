package forge

import (
	"testing"

	"github.com/McPeakDev/pdf-forge/internal/pipeline"
)

func TestConvertProducesValidPDF(t *testing.T) {
	pdfBytes, err := New().Convert("<h1>Title</h1><p>Body text</p>")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if len(pdfBytes) < 5 || string(pdfBytes[:5]) != "%PDF-" {
		t.Fatalf("expected PDF magic number, got %q", pdfBytes[:5])
	}
}

func TestWithOptionChaining(t *testing.T) {
	c := New().SetTitle("My Report").SetLandscape(true).SetMargin(20)
	config := c.options.toConfig()
	if config.Title != "My Report" || config.Orientation != pipeline.Landscape || config.PageMargin != 20 {
		t.Fatalf("expected chained options to apply, got %#v", config)
	}
}

func TestComputeLayoutConfigHasNoRendering(t *testing.T) {
	layoutConfig := New().ComputeLayoutConfig("<p>text</p>")
	if len(layoutConfig.Pages) == 0 {
		t.Fatalf("expected at least one page")
	}
}

func TestDefaultOptionsMatchA4Portrait(t *testing.T) {
	opts := DefaultOptions()
	if opts.PageWidth != PageSizeA4Width || opts.PageHeight != PageSizeA4Height {
		t.Fatalf("expected A4 default page size, got %vx%v", opts.PageWidth, opts.PageHeight)
	}
	if opts.Landscape {
		t.Fatalf("expected portrait by default")
	}
}
