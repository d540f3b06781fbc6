package style

import "github.com/McPeakDev/pdf-forge/internal/dom"

// paleGrey is TH's default background color.
var paleGrey = RGB(0.9, 0.9, 0.9)

// baseStyleForTag returns the tag-default record described by spec
// §4.2 step 1, before inheritance, classes, or inline declarations are
// applied.
func baseStyleForTag(tag dom.Tag) ComputedStyle {
	s := Default()
	switch tag {
	case dom.TagH1:
		s.FontSize = 32
		s.FontWeight = WeightBold
		s.Margin.Top = 16
		s.Margin.Bottom = 12
	case dom.TagH2:
		s.FontSize = 24
		s.FontWeight = WeightBold
		s.Margin.Top = 14
		s.Margin.Bottom = 10
	case dom.TagH3:
		s.FontSize = 20
		s.FontWeight = WeightBold
		s.Margin.Top = 12
		s.Margin.Bottom = 8
	case dom.TagP:
		s.Margin.Bottom = 10
	case dom.TagUL, dom.TagOL:
		s.Margin.Bottom = 10
		s.Padding.Left = 24
	case dom.TagLI:
		s.Display = DisplayListItem
		s.Margin.Bottom = 4
	case dom.TagTable:
		s.Display = DisplayGrid
		s.BorderWidth = 1
	case dom.TagTR:
		s.Display = DisplayTableRow
	case dom.TagTD:
		s.Display = DisplayTableCell
		s.Padding = Edges{Top: 4, Right: 8, Bottom: 4, Left: 8}
		s.BorderWidth = 1
	case dom.TagTH:
		s.Display = DisplayTableCell
		s.Padding = Edges{Top: 4, Right: 8, Bottom: 4, Left: 8}
		s.BorderWidth = 1
		s.FontWeight = WeightBold
		s.BackgroundColor = paleGrey
	case dom.TagSpan:
		s.Display = DisplayInline
	case dom.TagImg:
		s.Display = DisplayInlineBlock
	case dom.TagUnknown:
		s.Display = DisplayNone
	}
	return s
}
