// Package style implements the CSS-like cascade: tag defaults, utility
// classes, and inline declarations, producing a flat ComputedStyle per
// DOM node with inheritance of exactly the text-group fields.
package style

// Display is the closed set of computed display values.
type Display int

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayInline
	DisplayInlineBlock
	DisplayListItem
	DisplayTableRow
	DisplayTableCell
	DisplayNone
)

// FlexDirection is row or column.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexColumn
)

// FlexWrap is wrap or no-wrap.
type FlexWrap int

const (
	NoWrap FlexWrap = iota
	Wrap
)

// Justify enumerates justify-content values.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifyBetween
	JustifyAround
	JustifyEvenly
)

// AlignItems enumerates align-items values.
type AlignItems int

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// TextAlign enumerates text-align values.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// LengthKind distinguishes the three accepted length forms.
type LengthKind int

const (
	LengthAuto LengthKind = iota
	LengthPx
	LengthPercent
)

// Length is a CSS length: auto, a fixed pixel value, or a percentage of
// the containing block.
type Length struct {
	Kind  LengthKind
	Value float64 // meaningful when Kind != LengthAuto
}

func Auto() Length { return Length{Kind: LengthAuto} }
func Px(v float64) Length { return Length{Kind: LengthPx, Value: v} }
func Percent(v float64) Length { return Length{Kind: LengthPercent, Value: v} }

func (l Length) IsAuto() bool { return l.Kind == LengthAuto }

// Resolve returns the length in px given the size of the containing
// block (used for percentage resolution); auto resolves to fallback.
func (l Length) Resolve(containing, fallback float64) float64 {
	switch l.Kind {
	case LengthPx:
		return l.Value
	case LengthPercent:
		return containing * l.Value / 100
	default:
		return fallback
	}
}

// TrackKind distinguishes grid track sizing forms.
type TrackKind int

const (
	TrackFixed TrackKind = iota
	TrackFraction
	TrackAuto
)

// Track is one entry of a grid-template-columns/rows list.
type Track struct {
	Kind  TrackKind
	Value float64 // px for TrackFixed, fraction count for TrackFraction
}

// Color is RGBA with each channel in [0,1]. Transparent means alpha <
// 0.001.
type Color [4]float64

func RGB(r, g, b float64) Color      { return Color{r, g, b, 1} }
func RGBA(r, g, b, a float64) Color  { return Color{r, g, b, a} }
func (c Color) Transparent() bool    { return c[3] < 0.001 }

var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorBlack       = RGB(0, 0, 0)
	ColorWhite       = RGB(1, 1, 1)
)

// FontWeight is normal or bold.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontStyleKind is normal or italic.
type FontStyleKind int

const (
	StyleNormal FontStyleKind = iota
	StyleItalic
)

// TextDecoration is none or underline.
type TextDecoration int

const (
	DecorationNone TextDecoration = iota
	DecorationUnderline
)

// Edges holds a top/right/bottom/left quad, used for margin/padding.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// ComputedStyle is the flat record described by spec §3's table.
type ComputedStyle struct {
	// Display
	Display        Display
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	FlexGrow       float64
	FlexShrink     float64
	JustifyContent Justify
	AlignItems     AlignItems
	Gap            float64

	// Grid
	TemplateColumns []Track
	TemplateRows    []Track

	// Sizing
	Width     Length
	Height    Length
	MinWidth  Length
	MaxWidth  Length

	// Spacing
	Margin  Edges
	Padding Edges

	// Border
	BorderWidth float64
	BorderColor Color

	// Text (inheritable group)
	FontSize       float64
	FontWeight     FontWeight
	FontFamily     string
	Color          Color
	TextAlign      TextAlign
	LineHeight     float64
	TextDecoration TextDecoration
	FontStyle      FontStyleKind

	// Background
	BackgroundColor Color

	// Page break
	BreakBefore       bool
	BreakAfter        bool
	BreakInsideAvoid  bool
}

// Default returns the baseline ComputedStyle before tag defaults,
// classes, or inline declarations are applied: spec §3's defaults.
func Default() ComputedStyle {
	return ComputedStyle{
		Display:         DisplayBlock,
		FlexDirection:   FlexRow,
		FlexWrap:        NoWrap,
		FlexGrow:        0,
		FlexShrink:      1,
		JustifyContent:  JustifyStart,
		AlignItems:      AlignStretch,
		Gap:             0,
		Width:           Auto(),
		Height:          Auto(),
		MinWidth:        Auto(),
		MaxWidth:        Auto(),
		BorderWidth:     0,
		BorderColor:     ColorBlack,
		FontSize:        16,
		FontWeight:      WeightNormal,
		FontFamily:      "Helvetica",
		Color:           ColorBlack,
		TextAlign:       TextAlignLeft,
		LineHeight:      1.4,
		TextDecoration:  DecorationNone,
		FontStyle:       StyleNormal,
		BackgroundColor: ColorTransparent,
	}
}

// inheritText copies the inheritable text fields from parent to child:
// font size, weight, family, color, text-align, line-height and font
// style. TextDecoration is not inherited; the child keeps its own.
func inheritText(parent, child *ComputedStyle) {
	child.FontSize = parent.FontSize
	child.FontWeight = parent.FontWeight
	child.FontFamily = parent.FontFamily
	child.Color = parent.Color
	child.TextAlign = parent.TextAlign
	child.LineHeight = parent.LineHeight
	child.FontStyle = parent.FontStyle
}

// clearBoxModel zeroes every non-inheritable box-model field; used for
// text nodes, which inherit the parent style unchanged except for this.
func clearBoxModel(s *ComputedStyle) {
	s.Margin = Edges{}
	s.Padding = Edges{}
	s.BorderWidth = 0
	s.BackgroundColor = ColorTransparent
}
