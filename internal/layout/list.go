package layout

import (
	"strconv"

	"github.com/McPeakDev/pdf-forge/internal/dom"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

// buildListChildren builds the children of a ul/ol: each li child
// gets a marker box ("• " for ul, "N. " for ol, starting at 1)
// prepended to its own content, per spec §4.4's "List items" rule. The
// li's own children continue to lay out as normal.
func (e *Engine) buildListChildren(node *style.ElementNode, flow containerFlow, innerWidth float64) []*Box {
	ordinal := 1
	var boxes []*Box
	for _, child := range node.Children {
		el, ok := child.(*style.ElementNode)
		if !ok || el.Tag != dom.TagLI {
			b := e.buildNode(child, innerWidth)
			if b != nil {
				boxes = append(boxes, b)
			}
			continue
		}
		marker := "• "
		if node.Tag == dom.TagOL {
			marker = strconv.Itoa(ordinal) + ". "
		}
		ordinal++
		boxes = append(boxes, e.buildListItem(el, marker, innerWidth))
	}
	return boxes
}

// buildListItem builds an li as a flex-column container whose first
// child is a marker box, followed by the li's normal content.
func (e *Engine) buildListItem(el *style.ElementNode, marker string, availWidth float64) *Box {
	s := el.Style
	outerWidth := resolveBlockWidth(s, availWidth)
	innerWidth := outerWidth - horizontalBoxModel(s)
	if innerWidth < 0 {
		innerWidth = 0
	}

	markerStyle := s
	markerBox := e.buildTextBox(markerStyle, marker, innerWidth)
	markerBox.Content = MarkerContent{Marker: marker}

	contentChildren := e.buildChildren(el, containerFlow{direction: axisColumn}, innerWidth)
	children := append([]*Box{markerBox}, contentChildren...)

	box := newBox(s)
	box.Width = outerWidth
	box.Height = stackColumn(box, children, s) + verticalBoxModel(s)
	return box
}
