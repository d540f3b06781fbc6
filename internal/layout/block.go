package layout

import (
	"github.com/McPeakDev/pdf-forge/internal/dom"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

// axis is the container's flow axis after tag-based and display-based
// remapping (spec §4.4's table remapping and default block layout
// rules).
type axis int

const (
	axisColumn axis = iota
	axisRow
)

// containerFlow holds the effective flex parameters a container uses
// to arrange its children, after table remapping overrides any
// computed display.
type containerFlow struct {
	direction    axis
	wrap         style.FlexWrap
	stretchCross bool // tr: children stretch to the row's full height
}

// effectiveFlow resolves how a container tag/style combination lays
// out its children, per spec §4.4's "Table remapping" and "Default
// block layout" rules. Table remapping applies regardless of computed
// display; it is keyed on tag, not style.
func effectiveFlow(tag dom.Tag, s style.ComputedStyle) containerFlow {
	switch tag {
	case dom.TagTable:
		return containerFlow{direction: axisColumn}
	case dom.TagTR:
		return containerFlow{direction: axisRow, stretchCross: true}
	case dom.TagTD, dom.TagTH:
		return containerFlow{direction: axisColumn}
	}
	switch s.Display {
	case style.DisplayInline:
		return containerFlow{direction: axisRow, wrap: style.Wrap}
	case style.DisplayFlex:
		dir := axisColumn
		if s.FlexDirection == style.FlexRow {
			dir = axisRow
		}
		return containerFlow{direction: dir, wrap: s.FlexWrap}
	default: // block, list-item, table-row, table-cell, inline-block, grid (non-table)
		return containerFlow{direction: axisColumn}
	}
}

// cellFlexBasis reports whether a child tag forces the table-cell
// flex-grow=1/flex-shrink=1/zero-basis rule (td/th produce equal-width
// columns regardless of their own computed flex properties).
func cellFlexBasis(tag dom.Tag) bool {
	return tag == dom.TagTD || tag == dom.TagTH
}

// buildContainer lays out a non-leaf element: it resolves the
// container's own width, computes each child's available width (the
// per-child width estimation rule for flex-row/tr containers, or the
// full inner width otherwise), builds each child at local origin, then
// stacks them along the flow axis and shifts each into place.
func (e *Engine) buildContainer(node *style.ElementNode, availWidth float64) *Box {
	s := node.Style
	flow := effectiveFlow(node.Tag, s)

	outerWidth := resolveBlockWidth(s, availWidth)
	innerWidth := outerWidth - horizontalBoxModel(s)
	if innerWidth < 0 {
		innerWidth = 0
	}

	children := e.buildChildren(node, flow, innerWidth)

	box := newBox(s)
	box.Width = outerWidth

	switch flow.direction {
	case axisRow:
		box.Height = stackRow(box, children, s)
		if flow.stretchCross {
			for _, c := range children {
				c.Height = box.Height - c.Style.Margin.Top - c.Style.Margin.Bottom
			}
		}
	default:
		box.Height = stackColumn(box, children, s)
	}
	box.Height += verticalBoxModel(s)
	return box
}

// buildChildren builds each element-generating child of node (markers
// for ul/ol are prepended by buildListChildren), assigning each the
// per-child estimated width when the container is a flex-row or tr.
func (e *Engine) buildChildren(node *style.ElementNode, flow containerFlow, innerWidth float64) []*Box {
	if node.Tag == dom.TagUL || node.Tag == dom.TagOL {
		return e.buildListChildren(node, flow, innerWidth)
	}

	n := countElementChildren(node.Children)
	childWidth := innerWidth
	if flow.direction == axisRow && n > 0 {
		childWidth = (innerWidth - node.Style.Gap*float64(n-1)) / float64(n)
		if childWidth < 0 {
			childWidth = 0
		}
	}

	var boxes []*Box
	for _, child := range node.Children {
		b := e.buildNode(child, childWidth)
		if b == nil {
			continue
		}
		if node.Tag == dom.TagTR {
			if el, ok := child.(*style.ElementNode); ok && cellFlexBasis(el.Tag) {
				b.Style.FlexGrow = 1
				b.Style.FlexShrink = 1
			}
		}
		boxes = append(boxes, b)
	}
	return boxes
}

// countElementChildren counts dom-element-generating styled children
// (spec §4.4: "N is the count of element children (min 1)").
func countElementChildren(nodes []style.Node) int {
	n := 0
	for _, c := range nodes {
		if _, ok := c.(*style.ElementNode); ok {
			n++
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// stackColumn stacks children vertically, applying margins and gap,
// and returns the content height consumed.
func stackColumn(parent *Box, children []*Box, s style.ComputedStyle) float64 {
	originX := s.Padding.Left + s.BorderWidth
	originY := s.Padding.Top + s.BorderWidth
	cursorY := originY
	maxWidth := 0.0
	for i, c := range children {
		cx := originX + c.Style.Margin.Left
		cy := cursorY + c.Style.Margin.Top
		shift(c, cx, cy)
		parent.Children = append(parent.Children, c)
		cursorY = cy + c.Height + c.Style.Margin.Bottom
		if i < len(children)-1 {
			cursorY += s.Gap
		}
		if w := c.Style.Margin.Left + c.Width + c.Style.Margin.Right; w > maxWidth {
			maxWidth = w
		}
	}
	return cursorY - originY
}

// stackRow stacks children horizontally, applying margins and gap, and
// returns the tallest child's outer height. All children are placed on
// one line: the container's wrap setting is not applied, so a row whose
// children are wider than the container overflows it.
func stackRow(parent *Box, children []*Box, s style.ComputedStyle) float64 {
	originX := s.Padding.Left + s.BorderWidth
	originY := s.Padding.Top + s.BorderWidth
	cursorX := originX
	maxHeight := 0.0
	for i, c := range children {
		cx := cursorX + c.Style.Margin.Left
		cy := originY + c.Style.Margin.Top
		shift(c, cx, cy)
		parent.Children = append(parent.Children, c)
		cursorX = cx + c.Width + c.Style.Margin.Right
		if i < len(children)-1 {
			cursorX += s.Gap
		}
		if h := c.Style.Margin.Top + c.Height + c.Style.Margin.Bottom; h > maxHeight {
			maxHeight = h
		}
	}
	return maxHeight
}

func horizontalBoxModel(s style.ComputedStyle) float64 {
	return s.Padding.Left + s.Padding.Right + 2*s.BorderWidth
}

func verticalBoxModel(s style.ComputedStyle) float64 {
	return s.Padding.Top + s.Padding.Bottom + 2*s.BorderWidth
}

// resolveBlockWidth resolves an element's own width: its explicit
// width if set, else the full available width (block elements default
// to filling their container, matching the per-child-width-estimation
// rule's assumption that "inner-width is the element's resolved
// width").
func resolveBlockWidth(s style.ComputedStyle, availWidth float64) float64 {
	if s.Width.IsAuto() {
		return availWidth
	}
	return s.Width.Resolve(availWidth, availWidth)
}
