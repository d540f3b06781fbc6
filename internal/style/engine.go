package style

import "github.com/McPeakDev/pdf-forge/internal/dom"

// Engine walks a DOM forest top-down and produces a parallel Styled
// forest, applying tag defaults, utility classes, and inline
// declarations with text-group inheritance. Shaped after the teacher's
// cascade-walking StyleEngine, with §4.2's simpler flat-style
// resolution in place of a full selector cascade.
type Engine struct{}

// NewEngine constructs a style resolution Engine. It carries no
// state: resolution is a pure function of the DOM node and the
// parent's resolved style.
func NewEngine() *Engine {
	return &Engine{}
}

// Resolve resolves an entire DOM forest against the root's implicit
// parent context (the document default style).
func (e *Engine) Resolve(nodes []dom.Node) []Node {
	root := Default()
	return e.resolveNodes(nodes, &root)
}

func (e *Engine) resolveNodes(nodes []dom.Node, parent *ComputedStyle) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, e.resolveNode(n, parent))
	}
	return out
}

func (e *Engine) resolveNode(n dom.Node, parent *ComputedStyle) Node {
	switch v := n.(type) {
	case dom.Text:
		s := *parent
		clearBoxModel(&s)
		return TextNode{Text: string(v), Style: s}
	case *dom.Element:
		return e.resolveElement(v, parent)
	default:
		return TextNode{}
	}
}

func (e *Engine) resolveElement(el *dom.Element, parent *ComputedStyle) *ElementNode {
	s := baseStyleForTag(el.Tag)
	tagDefaults, def := s, Default()
	inheritText(parent, &s)
	// Text fields the tag default sets itself (h1-h3 size/weight, th
	// weight) take precedence over the inherited values.
	if tagDefaults.FontSize != def.FontSize {
		s.FontSize = tagDefaults.FontSize
	}
	if tagDefaults.FontWeight != def.FontWeight {
		s.FontWeight = tagDefaults.FontWeight
	}

	for _, token := range el.Class() {
		applyUtilityClass(&s, token)
	}
	if raw, ok := el.Attr("style"); ok {
		applyInlineStyle(&s, raw)
	}

	node := &ElementNode{
		Tag:   el.Tag,
		Name:  el.Name,
		Style: s,
		Attrs: el.Attrs,
	}
	if len(el.Children) > 0 {
		node.Children = e.resolveNodes(el.Children, &s)
	}
	return node
}
