package layout

import (
	"strings"

	"github.com/McPeakDev/pdf-forge/internal/dom"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

// buildTextLeaf builds a Positioned Box for a styled text leaf: its
// intrinsic size is (max line width, line count * line-height-px)
// after wrapping against availWidth, per spec §4.4's "Text leaf
// sizing".
func (e *Engine) buildTextLeaf(node style.TextNode, availWidth float64) *Box {
	if node.Text == "" {
		return nil
	}
	return e.buildTextBox(node.Style, node.Text, availWidth)
}

// buildTextBox is shared by plain text leaves and paragraph-collapsed
// elements (p/h1/h2/h3 whose descendants are all text/inline).
func (e *Engine) buildTextBox(s style.ComputedStyle, text string, availWidth float64) *Box {
	innerWidth := availWidth - horizontalBoxModel(s)
	if innerWidth < 0 {
		innerWidth = 0
	}
	bold := s.FontWeight == style.WeightBold
	italic := s.FontStyle == style.StyleItalic
	lines := e.Fonts.WrapText(text, innerWidth, s.FontSize, bold, italic, s.FontFamily)

	lineHeight := e.Fonts.LineHeightPx(s.FontSize, s.LineHeight)
	maxWidth := 0.0
	for _, line := range lines {
		if w := e.Fonts.MeasureTextWidth(line, s.FontSize, bold, italic, s.FontFamily); w > maxWidth {
			maxWidth = w
		}
	}

	box := newBox(s)
	box.Content = TextContent{Original: text, Lines: lines}
	box.Width = maxWidth + horizontalBoxModel(s)
	box.Height = float64(len(lines))*lineHeight + verticalBoxModel(s)
	return box
}

// isParagraphLike reports whether tag is one of p/h1/h2/h3, the tags
// eligible for paragraph collapsing (spec §4.4).
func isParagraphLike(tag dom.Tag) bool {
	switch tag {
	case dom.TagP, dom.TagH1, dom.TagH2, dom.TagH3:
		return true
	}
	return false
}

// allInlineOrText reports whether every descendant of nodes is either
// a text leaf or an inline/inline-block element, the precondition for
// paragraph collapsing.
func allInlineOrText(nodes []style.Node) bool {
	for _, n := range nodes {
		switch v := n.(type) {
		case style.TextNode:
			continue
		case *style.ElementNode:
			if v.Style.Display != style.DisplayInline && v.Style.Display != style.DisplayInlineBlock {
				return false
			}
			if !allInlineOrText(v.Children) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// collectInlineText concatenates the in-order text of nodes' text
// descendants (spec §4.4's paragraph collapsing).
func collectInlineText(nodes []style.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case style.TextNode:
			sb.WriteString(v.Text)
		case *style.ElementNode:
			sb.WriteString(collectInlineText(v.Children))
		}
	}
	return sb.String()
}

// collapseWhitespace collapses every run of whitespace (including
// newlines) to a single space, per spec §4.4's paragraph collapsing
// rule.
func collapseWhitespace(s string) string {
	var sb strings.Builder
	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !inRun {
				sb.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		sb.WriteRune(r)
	}
	return sb.String()
}
