package style

import (
	"strconv"
	"strings"
)

// palette is the closed color set named in spec §6 and nothing more;
// any other color name is not recognised by the text-/bg-/border-
// color classes.
var palette = map[string]Color{
	"white":      RGB(1, 1, 1),
	"black":      RGB(0, 0, 0),
	"red-500":    RGB(0.937, 0.267, 0.267),
	"red-700":    RGB(0.725, 0.110, 0.110),
	"blue-500":   RGB(0.231, 0.510, 0.965),
	"blue-700":   RGB(0.102, 0.306, 0.827),
	"green-500":  RGB(0.133, 0.773, 0.369),
	"green-700":  RGB(0.082, 0.533, 0.247),
	"gray-100":   RGB(0.953, 0.957, 0.961),
	"gray-200":   RGB(0.898, 0.906, 0.922),
	"gray-300":   RGB(0.831, 0.843, 0.871),
	"gray-500":   RGB(0.424, 0.447, 0.502),
	"gray-700":   RGB(0.216, 0.255, 0.318),
	"gray-900":   RGB(0.067, 0.094, 0.153),
	"yellow-500": RGB(0.918, 0.788, 0.153),
}

// fontSizeClasses maps the text-{xs..4xl} utility tokens to px values.
var fontSizeClasses = map[string]float64{
	"text-xs":  12,
	"text-sm":  14,
	"text-base": 16,
	"text-lg":  18,
	"text-xl":  20,
	"text-2xl": 24,
	"text-3xl": 30,
	"text-4xl": 36,
}

var widthFractionClasses = map[string]float64{
	"w-full": 100,
	"w-1/2":  50,
	"w-1/3":  100.0 / 3,
	"w-2/3":  200.0 / 3,
	"w-1/4":  25,
	"w-3/4":  75,
}

// applyUtilityClass applies a single utility-class token, per spec
// §4.2 step 3 and §6's closed vocabulary table. It first checks the
// fixed-token table, then falls through to the pattern parsers in the
// documented order; unrecognised tokens are silently ignored.
func applyUtilityClass(s *ComputedStyle, token string) {
	switch token {
	case "flex":
		s.Display = DisplayFlex
		return
	case "grid":
		s.Display = DisplayGrid
		return
	case "block":
		s.Display = DisplayBlock
		return
	case "inline":
		s.Display = DisplayInline
		return
	case "inline-block":
		s.Display = DisplayInlineBlock
		return
	case "hidden":
		s.Display = DisplayNone
		return
	case "flex-row":
		s.FlexDirection = FlexRow
		return
	case "flex-col":
		s.FlexDirection = FlexColumn
		return
	case "flex-wrap":
		s.FlexWrap = Wrap
		return
	case "flex-nowrap":
		s.FlexWrap = NoWrap
		return
	case "flex-grow", "grow":
		s.FlexGrow = 1
		return
	case "flex-shrink", "shrink":
		s.FlexShrink = 1
		return
	case "flex-1":
		s.FlexGrow = 1
		s.FlexShrink = 1
		return
	case "justify-start":
		s.JustifyContent = JustifyStart
		return
	case "justify-end":
		s.JustifyContent = JustifyEnd
		return
	case "justify-center":
		s.JustifyContent = JustifyCenter
		return
	case "justify-between":
		s.JustifyContent = JustifyBetween
		return
	case "justify-around":
		s.JustifyContent = JustifyAround
		return
	case "justify-evenly":
		s.JustifyContent = JustifyEvenly
		return
	case "items-start":
		s.AlignItems = AlignStart
		return
	case "items-end":
		s.AlignItems = AlignEnd
		return
	case "items-center":
		s.AlignItems = AlignCenter
		return
	case "items-stretch":
		s.AlignItems = AlignStretch
		return
	case "font-bold":
		s.FontWeight = WeightBold
		return
	case "font-normal":
		s.FontWeight = WeightNormal
		return
	case "italic":
		s.FontStyle = StyleItalic
		return
	case "not-italic":
		s.FontStyle = StyleNormal
		return
	case "underline":
		s.TextDecoration = DecorationUnderline
		return
	case "no-underline":
		s.TextDecoration = DecorationNone
		return
	case "text-left":
		s.TextAlign = TextAlignLeft
		return
	case "text-center":
		s.TextAlign = TextAlignCenter
		return
	case "text-right":
		s.TextAlign = TextAlignRight
		return
	case "break-before", "page", "page-break":
		s.BreakBefore = true
		return
	case "break-after":
		s.BreakAfter = true
		return
	case "break-inside-avoid":
		s.BreakInsideAvoid = true
		return
	}

	if px, ok := fontSizeClasses[token]; ok {
		s.FontSize = px
		return
	}
	if pct, ok := widthFractionClasses[token]; ok {
		s.Width = Percent(pct)
		return
	}
	if token == "w-auto" {
		s.Width = Auto()
		return
	}

	if tryParseSpacingClass(s, token) {
		return
	}
	if tryParseColorClass(s, token) {
		return
	}
	if tryParseGapClass(s, token) {
		return
	}
	if tryParseGridColsClass(s, token) {
		return
	}
	if tryParseSizeClass(s, token) {
		return
	}
	// Unrecognized tokens are silently ignored.
}

// tryParseSpacingClass handles {p|m}{,x,y,t,r,b,l}-N, spacing unit 1 =
// 4px.
func tryParseSpacingClass(s *ComputedStyle, token string) bool {
	if len(token) < 3 {
		return false
	}
	var kind byte // 'p' or 'm'
	switch token[0] {
	case 'p', 'm':
		kind = token[0]
	default:
		return false
	}
	rest := token[1:]
	var axis byte // 0, 'x', 'y', 't', 'r', 'b', 'l'
	idx := 0
	switch {
	case strings.HasPrefix(rest, "x-"):
		axis, idx = 'x', 2
	case strings.HasPrefix(rest, "y-"):
		axis, idx = 'y', 2
	case strings.HasPrefix(rest, "t-"):
		axis, idx = 't', 2
	case strings.HasPrefix(rest, "r-"):
		axis, idx = 'r', 2
	case strings.HasPrefix(rest, "b-"):
		axis, idx = 'b', 2
	case strings.HasPrefix(rest, "l-"):
		axis, idx = 'l', 2
	case strings.HasPrefix(rest, "-"):
		axis, idx = 0, 1
	default:
		return false
	}
	n, err := strconv.ParseFloat(rest[idx:], 64)
	if err != nil || n < 0 {
		return false
	}
	px := n * 4

	var edges *Edges
	if kind == 'p' {
		edges = &s.Padding
	} else {
		edges = &s.Margin
	}
	switch axis {
	case 0:
		edges.Top, edges.Right, edges.Bottom, edges.Left = px, px, px, px
	case 'x':
		edges.Left, edges.Right = px, px
	case 'y':
		edges.Top, edges.Bottom = px, px
	case 't':
		edges.Top = px
	case 'r':
		edges.Right = px
	case 'b':
		edges.Bottom = px
	case 'l':
		edges.Left = px
	}
	return true
}

// tryParseColorClass handles text-NAME, bg-NAME, border-NAME against
// the closed palette.
func tryParseColorClass(s *ComputedStyle, token string) bool {
	var prefix string
	switch {
	case strings.HasPrefix(token, "text-"):
		prefix = "text-"
	case strings.HasPrefix(token, "bg-"):
		prefix = "bg-"
	case strings.HasPrefix(token, "border-"):
		prefix = "border-"
	default:
		return false
	}
	name := token[len(prefix):]
	color, ok := palette[name]
	if !ok {
		return false
	}
	switch prefix {
	case "text-":
		s.Color = color
	case "bg-":
		s.BackgroundColor = color
	case "border-":
		s.BorderColor = color
	}
	return true
}

func tryParseGapClass(s *ComputedStyle, token string) bool {
	if !strings.HasPrefix(token, "gap-") {
		return false
	}
	n, err := strconv.ParseFloat(token[len("gap-"):], 64)
	if err != nil || n < 0 {
		return false
	}
	s.Gap = n * 4
	return true
}

func tryParseGridColsClass(s *ComputedStyle, token string) bool {
	if !strings.HasPrefix(token, "grid-cols-") {
		return false
	}
	n, err := strconv.Atoi(token[len("grid-cols-"):])
	if err != nil || n <= 0 {
		return false
	}
	tracks := make([]Track, n)
	for i := range tracks {
		tracks[i] = Track{Kind: TrackFraction, Value: 1}
	}
	s.TemplateColumns = tracks
	return true
}

// tryParseSizeClass handles w-N/h-N, in the same 1-unit = 4px scale as
// the spacing classes (original_source's try_parse_width_class/
// try_parse_height_class multiply by 4.0; the spec glossary only
// mentions the 4px unit for spacing/gap, but original_source is the
// tie-breaker for this ambiguity — see DESIGN.md).
func tryParseSizeClass(s *ComputedStyle, token string) bool {
	switch {
	case strings.HasPrefix(token, "w-"):
		n, err := strconv.ParseFloat(token[len("w-"):], 64)
		if err != nil || n < 0 {
			return false
		}
		s.Width = Px(n * 4)
		return true
	case strings.HasPrefix(token, "h-"):
		n, err := strconv.ParseFloat(token[len("h-"):], 64)
		if err != nil || n < 0 {
			return false
		}
		s.Height = Px(n * 4)
		return true
	}
	return false
}
