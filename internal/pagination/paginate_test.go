package pagination

import (
	"strings"
	"testing"

	"github.com/McPeakDev/pdf-forge/internal/dom"
	"github.com/McPeakDev/pdf-forge/internal/fonts"
	"github.com/McPeakDev/pdf-forge/internal/layout"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

func layoutBoxes(html string, contentWidth float64, fontService *fonts.Service) []*layout.Box {
	doc := dom.Parse(html)
	nodes := style.NewEngine().Resolve(doc.BodyChildren())
	return layout.NewEngine(fontService).Compute(nodes, contentWidth, PageMarginPt)
}

func TestSinglePage(t *testing.T) {
	fontService := fonts.NewService()
	boxes := layoutBoxes("<p>Short text</p>", 595.28-2*PageMarginPt, fontService)

	p := NewPaginator(fontService)
	config := p.Paginate("", boxes)

	if len(config.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(config.Pages))
	}
}

func TestMultiplePages(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		sb.WriteString("<p>Paragraph with some text that takes up vertical space on the page.</p>")
	}

	fontService := fonts.NewService()
	boxes := layoutBoxes(sb.String(), 595.28-2*PageMarginPt, fontService)

	p := NewPaginator(fontService)
	config := p.Paginate("", boxes)

	if len(config.Pages) <= 1 {
		t.Fatalf("expected multiple pages, got %d", len(config.Pages))
	}
}

func TestEmptyDocumentProducesOneEmptyPage(t *testing.T) {
	fontService := fonts.NewService()
	p := NewPaginator(fontService)
	config := p.Paginate("", nil)

	if len(config.Pages) != 1 {
		t.Fatalf("expected 1 page even for empty input, got %d", len(config.Pages))
	}
	if len(config.Pages[0].Boxes) != 0 {
		t.Fatalf("expected the sole page to be empty")
	}
}

func TestBreakBeforeStartsNewPage(t *testing.T) {
	fontService := fonts.NewService()
	boxes := layoutBoxes(`<p>first</p><div style="break-before: page">second</div>`, 500, fontService)

	p := NewPaginator(fontService)
	config := p.Paginate("", boxes)

	if len(config.Pages) < 2 {
		t.Fatalf("expected break-before to force a second page, got %d pages", len(config.Pages))
	}
}

func TestDefaultTitle(t *testing.T) {
	fontService := fonts.NewService()
	p := NewPaginator(fontService)
	config := p.Paginate("", nil)
	if config.Title == "" {
		t.Fatalf("expected a non-empty default title")
	}
}
