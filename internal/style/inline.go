package style

import (
	"strconv"
	"strings"
)

// applyInlineStyle parses the `style` attribute (semicolon-separated
// declarations) and applies each supported property, per spec §4.2
// step 4 and §6's closed property list.
func applyInlineStyle(s *ComputedStyle, raw string) {
	for _, decl := range strings.Split(raw, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		parts := strings.SplitN(decl, ":", 2)
		if len(parts) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		applyCSSProperty(s, prop, value)
	}
}

func applyCSSProperty(s *ComputedStyle, prop, value string) {
	switch prop {
	case "display":
		switch value {
		case "flex":
			s.Display = DisplayFlex
		case "grid":
			s.Display = DisplayGrid
		case "block":
			s.Display = DisplayBlock
		case "inline":
			s.Display = DisplayInline
		case "inline-block":
			s.Display = DisplayInlineBlock
		case "list-item":
			s.Display = DisplayListItem
		case "table-row":
			s.Display = DisplayTableRow
		case "table-cell":
			s.Display = DisplayTableCell
		case "none":
			s.Display = DisplayNone
		}
	case "flex-direction":
		switch value {
		case "row":
			s.FlexDirection = FlexRow
		case "column":
			s.FlexDirection = FlexColumn
		}
	case "font-size":
		if px, ok := parsePx(value); ok {
			s.FontSize = px
		}
	case "font-weight":
		switch value {
		case "bold":
			s.FontWeight = WeightBold
		case "normal":
			s.FontWeight = WeightNormal
		}
	case "font-style":
		switch value {
		case "italic":
			s.FontStyle = StyleItalic
		case "normal":
			s.FontStyle = StyleNormal
		}
	case "color":
		if c, ok := parseHexColor(value); ok {
			s.Color = c
		}
	case "background-color", "background":
		if c, ok := parseHexColor(value); ok {
			s.BackgroundColor = c
		}
	case "text-align":
		switch value {
		case "left":
			s.TextAlign = TextAlignLeft
		case "center":
			s.TextAlign = TextAlignCenter
		case "right":
			s.TextAlign = TextAlignRight
		}
	case "width":
		if l, ok := parseDimension(value); ok {
			s.Width = l
		}
	case "height":
		if l, ok := parseDimension(value); ok {
			s.Height = l
		}
	case "margin":
		applyShorthandSpacing(&s.Margin, value)
	case "margin-top":
		if px, ok := parsePx(value); ok {
			s.Margin.Top = px
		}
	case "margin-right":
		if px, ok := parsePx(value); ok {
			s.Margin.Right = px
		}
	case "margin-bottom":
		if px, ok := parsePx(value); ok {
			s.Margin.Bottom = px
		}
	case "margin-left":
		if px, ok := parsePx(value); ok {
			s.Margin.Left = px
		}
	case "padding":
		applyShorthandSpacing(&s.Padding, value)
	case "padding-top":
		if px, ok := parsePx(value); ok {
			s.Padding.Top = px
		}
	case "padding-right":
		if px, ok := parsePx(value); ok {
			s.Padding.Right = px
		}
	case "padding-bottom":
		if px, ok := parsePx(value); ok {
			s.Padding.Bottom = px
		}
	case "padding-left":
		if px, ok := parsePx(value); ok {
			s.Padding.Left = px
		}
	case "border-width":
		if px, ok := parsePx(value); ok {
			s.BorderWidth = px
		}
	case "border":
		for _, tok := range strings.Fields(value) {
			if px, ok := parsePx(tok); ok {
				s.BorderWidth = px
				continue
			}
			if c, ok := parseHexColor(tok); ok {
				s.BorderColor = c
			}
		}
	case "border-color":
		if c, ok := parseHexColor(value); ok {
			s.BorderColor = c
		}
	case "line-height":
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			s.LineHeight = n
		}
	case "gap":
		if px, ok := parsePx(value); ok {
			s.Gap = px
		}
	case "break-before", "page-break-before":
		s.BreakBefore = value != "" && value != "auto" && value != "avoid"
	case "break-after", "page-break-after":
		s.BreakAfter = value != "" && value != "auto" && value != "avoid"
	case "page-break-inside":
		s.BreakInsideAvoid = value == "avoid"
	}
}

// parsePx parses a bare number or an "Npx" length (decimals are
// accepted). Returns ok=false for anything else (including percentages
// and "auto").
func parsePx(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, "px")
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDimension parses width/height values: auto, N%, or a px length.
func parseDimension(value string) (Length, bool) {
	value = strings.TrimSpace(value)
	if value == "auto" {
		return Auto(), true
	}
	if strings.HasSuffix(value, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return Length{}, false
		}
		return Percent(n), true
	}
	if px, ok := parsePx(value); ok {
		return Px(px), true
	}
	return Length{}, false
}

// applyShorthandSpacing parses the 1/2/4-value margin/padding
// shorthand forms.
func applyShorthandSpacing(edges *Edges, value string) {
	fields := strings.Fields(value)
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		px, ok := parsePx(f)
		if !ok {
			return
		}
		vals = append(vals, px)
	}
	switch len(vals) {
	case 1:
		edges.Top, edges.Right, edges.Bottom, edges.Left = vals[0], vals[0], vals[0], vals[0]
	case 2:
		edges.Top, edges.Bottom = vals[0], vals[0]
		edges.Right, edges.Left = vals[1], vals[1]
	case 4:
		edges.Top, edges.Right, edges.Bottom, edges.Left = vals[0], vals[1], vals[2], vals[3]
	}
}

// parseHexColor accepts #rrggbb or #rgb.
func parseHexColor(value string) (Color, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		return Color{}, false
	}
	hex := value[1:]
	expand := func(c byte) (float64, bool) {
		n, err := strconv.ParseUint(string(c)+string(c), 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(n) / 255, true
	}
	full := func(s string) (float64, bool) {
		n, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		return float64(n) / 255, true
	}
	switch len(hex) {
	case 3:
		r, ok1 := expand(hex[0])
		g, ok2 := expand(hex[1])
		b, ok3 := expand(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return RGB(r, g, b), true
	case 6:
		r, ok1 := full(hex[0:2])
		g, ok2 := full(hex[2:4])
		b, ok3 := full(hex[4:6])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return RGB(r, g, b), true
	default:
		return Color{}, false
	}
}
