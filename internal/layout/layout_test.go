package layout

import (
	"testing"

	"github.com/McPeakDev/pdf-forge/internal/dom"
	"github.com/McPeakDev/pdf-forge/internal/fonts"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

func compute(t *testing.T, html string, contentWidth float64) []*Box {
	t.Helper()
	doc := dom.Parse(html)
	nodes := style.NewEngine().Resolve(doc.BodyChildren())
	return NewEngine(fonts.NewService()).Compute(nodes, contentWidth, 0)
}

func TestMinimalDocTwoTextBoxes(t *testing.T) {
	boxes := compute(t, `<div><h1>Title</h1><p>Body text</p></div>`, 500)
	if len(boxes) != 1 {
		t.Fatalf("expected 1 top-level box, got %d", len(boxes))
	}
	div := boxes[0]
	if len(div.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(div.Children))
	}
	h1 := div.Children[0]
	if _, ok := h1.Content.(TextContent); !ok {
		t.Fatalf("expected h1 to be a text box")
	}
	if h1.Style.FontSize != 32 || h1.Style.FontWeight != style.WeightBold {
		t.Fatalf("expected h1 font-size 32 bold, got %v/%v", h1.Style.FontSize, h1.Style.FontWeight)
	}
}

func TestParagraphWithSpansCollapses(t *testing.T) {
	boxes := compute(t, `<p>Hello <span class="font-bold">world</span>!</p>`, 500)
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	tc, ok := boxes[0].Content.(TextContent)
	if !ok {
		t.Fatalf("expected text content")
	}
	if tc.Original != "Hello world!" && tc.Original != "Hello world !" {
		t.Fatalf("unexpected collapsed text: %q", tc.Original)
	}
}

func TestSelfClosingImageNoChildren(t *testing.T) {
	boxes := compute(t, `<img src="logo.png" />`, 500)
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	img, ok := boxes[0].Content.(ImageContent)
	if !ok || img.Src != "logo.png" {
		t.Fatalf("expected image content logo.png, got %#v", boxes[0].Content)
	}
}

func TestListMarkers(t *testing.T) {
	boxes := compute(t, `<ul><li>one</li><li>two</li></ul>`, 500)
	ul := boxes[0]
	if len(ul.Children) != 2 {
		t.Fatalf("expected 2 li boxes, got %d", len(ul.Children))
	}
	li := ul.Children[0]
	if len(li.Children) == 0 {
		t.Fatalf("expected li to have a marker child")
	}
	marker, ok := li.Children[0].Content.(MarkerContent)
	if !ok || marker.Marker != "• " {
		t.Fatalf("expected bullet marker, got %#v", li.Children[0].Content)
	}
}

func TestOrderedListMarkers(t *testing.T) {
	boxes := compute(t, `<ol><li>one</li><li>two</li></ol>`, 500)
	ol := boxes[0]
	m0 := ol.Children[0].Children[0].Content.(MarkerContent)
	m1 := ol.Children[1].Children[0].Content.(MarkerContent)
	if m0.Marker != "1. " || m1.Marker != "2. " {
		t.Fatalf("expected 1. / 2. markers, got %q / %q", m0.Marker, m1.Marker)
	}
}

func TestTableCellsEqualWidth(t *testing.T) {
	boxes := compute(t, `<table><tr><td>a</td><td>bb</td></tr></table>`, 400)
	table := boxes[0]
	tr := table.Children[0]
	if len(tr.Children) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(tr.Children))
	}
	if tr.Children[0].Width != tr.Children[1].Width {
		t.Fatalf("expected equal-width columns, got %v vs %v", tr.Children[0].Width, tr.Children[1].Width)
	}
}

func TestBoxesAreAbsolutelyPositioned(t *testing.T) {
	boxes := compute(t, `<div><p>a</p><p>b</p></div>`, 400)
	div := boxes[0]
	p0, p1 := div.Children[0], div.Children[1]
	if p1.Y <= p0.Y {
		t.Fatalf("expected second paragraph below the first: %v vs %v", p0.Y, p1.Y)
	}
}
