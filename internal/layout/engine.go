package layout

import (
	"github.com/McPeakDev/pdf-forge/internal/dom"
	"github.com/McPeakDev/pdf-forge/internal/fonts"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

// Engine builds a Positioned Box tree from a Styled forest at a fixed
// content width, per spec §4.4. Grounded on original_source/layout.rs's
// LayoutBuilder, in the teacher's Box/BlockBox/InlineBox/Engine package
// shape.
type Engine struct {
	Fonts *fonts.Service
}

// NewEngine constructs a Layout Engine backed by the given Font/Metrics
// Service.
func NewEngine(fontService *fonts.Service) *Engine {
	return &Engine{Fonts: fontService}
}

// Compute lays out a styled forest at the given content width (page
// width minus both margins) and returns the top-level Positioned
// Boxes. The root wraps the sequence in an implicit flex-column
// container at content-width; originX shifts every box's x by the
// page's left margin so that Positioned Box x already carries it, per
// spec §4.4 ("x offset by left page margin; y starts at 0 and
// accumulates") — pagination only adds the top margin to y.
func (e *Engine) Compute(nodes []style.Node, contentWidth, originX float64) []*Box {
	root := &Box{Style: style.Default()}
	boxes := make([]*Box, 0, len(nodes))
	for _, n := range nodes {
		b := e.buildNode(n, contentWidth)
		if b != nil {
			boxes = append(boxes, b)
		}
	}
	root.Height = stackColumn(root, boxes, style.ComputedStyle{})
	for _, b := range root.Children {
		shift(b, originX, 0)
	}
	return root.Children
}

// buildNode dispatches on node kind, applying the paragraph-collapsing
// rule first (spec §4.4): an eligible p/h1/h2/h3 with only
// text/inline descendants becomes a single text leaf instead of a
// container.
func (e *Engine) buildNode(node style.Node, availWidth float64) *Box {
	switch v := node.(type) {
	case style.TextNode:
		return e.buildTextLeaf(v, availWidth)
	case *style.ElementNode:
		return e.buildElement(v, availWidth)
	default:
		return nil
	}
}

func (e *Engine) buildElement(node *style.ElementNode, availWidth float64) *Box {
	if node.Style.Display == style.DisplayNone {
		return nil
	}
	if isParagraphLike(node.Tag) && len(node.Children) > 0 && allInlineOrText(node.Children) {
		text := collapseWhitespace(collectInlineText(node.Children))
		return e.buildTextBox(node.Style, text, availWidth)
	}
	if node.Tag == dom.TagImg {
		return e.buildImage(node, availWidth)
	}
	return e.buildContainer(node, availWidth)
}
