package dom

import "testing"

func TestParseMinimal(t *testing.T) {
	doc := Parse(`<div><h1>Title</h1><p>Body text</p></div>`)
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(doc.Nodes))
	}
	div, ok := doc.Nodes[0].(*Element)
	if !ok || div.Tag != TagDiv {
		t.Fatalf("expected root div, got %#v", doc.Nodes[0])
	}
	if len(div.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(div.Children))
	}
	h1 := div.Children[0].(*Element)
	if h1.Tag != TagH1 {
		t.Fatalf("expected h1, got %v", h1.Tag)
	}
	if text, ok := h1.Children[0].(Text); !ok || text != "Title" {
		t.Fatalf("expected Title text, got %#v", h1.Children[0])
	}
}

func TestParseSelfClosingImage(t *testing.T) {
	doc := Parse(`<img src="logo.png" />`)
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(doc.Nodes))
	}
	img := doc.Nodes[0].(*Element)
	if img.Tag != TagImg {
		t.Fatalf("expected img, got %v", img.Tag)
	}
	if src, _ := img.Attr("src"); src != "logo.png" {
		t.Fatalf("expected src=logo.png, got %q", src)
	}
	if len(img.Children) != 0 {
		t.Fatalf("img must have no children, got %d", len(img.Children))
	}
}

func TestParseParagraphWithSpans(t *testing.T) {
	doc := Parse(`<p>Hello <span class="font-bold">world</span>!</p>`)
	p := doc.Nodes[0].(*Element)
	if len(p.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(p.Children))
	}
	if _, ok := p.Children[0].(Text); !ok {
		t.Fatalf("expected first child text")
	}
	span, ok := p.Children[1].(*Element)
	if !ok || span.Tag != TagSpan {
		t.Fatalf("expected second child span")
	}
	if _, ok := p.Children[2].(Text); !ok {
		t.Fatalf("expected third child text")
	}
	_ = span
}

func TestParseToleratesMismatchedClosingTags(t *testing.T) {
	doc := Parse(`<div><p>text</div>`)
	div := doc.Nodes[0].(*Element)
	if len(div.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(div.Children))
	}
	p, ok := div.Children[0].(*Element)
	if !ok || p.Tag != TagP {
		t.Fatalf("expected p element")
	}
}

func TestParseEntities(t *testing.T) {
	doc := Parse(`<p>A &amp; B &lt;&gt; &quot;q&quot; &#39;s&#39; &apos;a&apos; C&nbsp;D</p>`)
	p := doc.Nodes[0].(*Element)
	text := string(p.Children[0].(Text))
	want := "A & B <> \"q\" 's' 'a' C D"
	if text != want {
		t.Fatalf("got %q want %q", text, want)
	}
}

func TestParseDropsCommentsAndDoctype(t *testing.T) {
	doc := Parse(`<!doctype html><!-- comment --><div>x</div>`)
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(doc.Nodes))
	}
}

func TestParseDropsInterElementWhitespace(t *testing.T) {
	doc := Parse("<div>\n  <p>a</p>\n  <p>b</p>\n</div>")
	div := doc.Nodes[0].(*Element)
	if len(div.Children) != 2 {
		t.Fatalf("expected 2 children after whitespace dropped, got %d", len(div.Children))
	}
}

func TestParseUnknownTag(t *testing.T) {
	doc := Parse(`<widget>hi</widget>`)
	el := doc.Nodes[0].(*Element)
	if el.Tag != TagUnknown || el.Name != "widget" {
		t.Fatalf("expected Unknown(widget), got %v/%s", el.Tag, el.Name)
	}
}

func TestBodyChildren(t *testing.T) {
	doc := Parse(`<html><head><title>x</title></head><body><p>a</p><p>b</p></body></html>`)
	children := doc.BodyChildren()
	if len(children) != 2 {
		t.Fatalf("expected 2 body children, got %d", len(children))
	}
}

func TestBodyChildrenFallsBackToWholeForest(t *testing.T) {
	doc := Parse(`<p>a</p><p>b</p>`)
	children := doc.BodyChildren()
	if len(children) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(children))
	}
}
