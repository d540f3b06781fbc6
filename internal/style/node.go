package style

import "github.com/McPeakDev/pdf-forge/internal/dom"

// Node is either a styled Text leaf or a styled *Element.
type Node interface {
	isStyledNode()
}

// TextNode is a resolved text leaf: the parent's style unchanged
// except that box-model fields are cleared.
type TextNode struct {
	Text  string
	Style ComputedStyle
}

func (TextNode) isStyledNode() {}

// ElementNode is a resolved element: its tag, computed style, styled
// children, and the original DOM attributes (kept for downstream
// consumers, e.g. `src` on an img).
type ElementNode struct {
	Tag      dom.Tag
	Name     string
	Style    ComputedStyle
	Attrs    map[string]string
	Children []Node
}

func (*ElementNode) isStyledNode() {}
