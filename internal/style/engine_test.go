package style

import (
	"testing"

	"github.com/McPeakDev/pdf-forge/internal/dom"
)

func TestResolveMinimalDoc(t *testing.T) {
	doc := dom.Parse(`<div><h1>Title</h1><p>Body text</p></div>`)
	nodes := NewEngine().Resolve(doc.Nodes)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	div := nodes[0].(*ElementNode)
	h1 := div.Children[0].(*ElementNode)
	if h1.Style.FontSize != 32 {
		t.Fatalf("expected h1 font-size 32, got %v", h1.Style.FontSize)
	}
	if h1.Style.FontWeight != WeightBold {
		t.Fatalf("expected h1 bold")
	}
}

func TestInheritanceOfTextGroupOnly(t *testing.T) {
	doc := dom.Parse(`<div style="color: #ff0000"><p>child</p></div>`)
	nodes := NewEngine().Resolve(doc.Nodes)
	div := nodes[0].(*ElementNode)
	p := div.Children[0].(*ElementNode)
	if p.Style.Color != (RGB(1, 0, 0)) {
		t.Fatalf("expected inherited red color, got %v", p.Style.Color)
	}
	// Non-inheritable field: p keeps its own tag-default margin, not div's (zero).
	if p.Style.Margin.Bottom != 10 {
		t.Fatalf("expected p's own margin-bottom default 10, got %v", p.Style.Margin.Bottom)
	}
}

func TestUtilityClassPadding(t *testing.T) {
	s := Default()
	applyUtilityClass(&s, "p-4")
	if s.Padding.Top != 16 || s.Padding.Left != 16 {
		t.Fatalf("expected padding 16, got %+v", s.Padding)
	}
}

func TestInlineStyleFontSizeAndColor(t *testing.T) {
	s := Default()
	applyInlineStyle(&s, "font-size: 24px; color: #ff0000")
	if s.FontSize != 24 {
		t.Fatalf("expected font-size 24, got %v", s.FontSize)
	}
	if s.Color != (RGB(1, 0, 0)) {
		t.Fatalf("expected red, got %v", s.Color)
	}
}

func TestUnknownTagIsDisplayNone(t *testing.T) {
	doc := dom.Parse(`<widget>x</widget>`)
	nodes := NewEngine().Resolve(doc.Nodes)
	el := nodes[0].(*ElementNode)
	if el.Style.Display != DisplayNone {
		t.Fatalf("expected display none for unknown tag")
	}
}

func TestTextNodeClearsBoxModel(t *testing.T) {
	doc := dom.Parse(`<div class="p-4 bg-red-500">text</div>`)
	nodes := NewEngine().Resolve(doc.Nodes)
	div := nodes[0].(*ElementNode)
	text := div.Children[0].(TextNode)
	if text.Style.Padding.Top != 0 {
		t.Fatalf("expected text node padding cleared, got %v", text.Style.Padding.Top)
	}
	if !text.Style.BackgroundColor.Transparent() {
		t.Fatalf("expected text node background cleared")
	}
}
