package pagination

import (
	"github.com/McPeakDev/pdf-forge/internal/fonts"
	"github.com/McPeakDev/pdf-forge/internal/layout"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

// PageMarginPt is the default page margin in PDF points, grounded on
// original_source/pagination.rs's PAGE_MARGIN_PT.
const PageMarginPt = 40.0

// Options configures a Paginator run.
type Options struct {
	PageSize PageSize
	Margins  Margins
}

// Paginator splits a Positioned Box tree into pages.
type Paginator struct {
	options Options
	fonts   *fonts.Service
}

// NewPaginator constructs a Paginator backed by the given Font/Metrics
// Service, matching the teacher's NewPaginator/Paginate call shape.
func NewPaginator(fontService *fonts.Service) *Paginator {
	return &Paginator{
		fonts: fontService,
		options: Options{
			PageSize: PageSize{Width: 595.28, Height: 841.89, Name: "A4"},
			Margins:  Margins{Top: PageMarginPt, Right: PageMarginPt, Bottom: PageMarginPt, Left: PageMarginPt},
		},
	}
}

// SetOptions replaces the Paginator's page size and margins.
func (p *Paginator) SetOptions(o Options) {
	p.options = o
}

// Paginate splits boxes (the top-level Positioned Box tree, already
// laid out at content-width with x offset by the left margin — see
// layout.Engine.Compute) into a Layout Config titled title, per spec
// §4.5.
func (p *Paginator) Paginate(title string, boxes []*layout.Box) *LayoutConfig {
	pageWidth, pageHeight := p.options.PageSize.Width, p.options.PageSize.Height
	pageMargin := p.options.Margins.Top
	config := newLayoutConfig(title, pageWidth, pageHeight)

	contentHeight := pageHeight - 2*pageMargin

	flat := flattenForPagination(boxes, contentHeight)

	current := &Page{PageIndex: 0}
	pageStartDocY := 0.0

	flush := func() {
		config.Pages = append(config.Pages, *current)
		current = &Page{PageIndex: len(config.Pages)}
	}

	for _, b := range flat {
		if b.BreakBefore && len(current.Boxes) > 0 {
			flush()
			pageStartDocY = b.Y
		}

		yOnPage := maxFloat(0, b.Y-pageStartDocY)
		boxBottom := yOnPage + b.Height

		if boxBottom > contentHeight && len(current.Boxes) > 0 {
			if isTableLike(b) && !b.BreakInsideAvoid {
				p.splitTableBox(b, config, &current, &pageStartDocY, contentHeight, pageMargin, &flush)
				continue
			}
			flush()
			pageStartDocY = b.Y
			yOnPage = 0
		}

		lb := p.positionedToLayoutBox(b, pageMargin, yOnPage)
		current.Boxes = append(current.Boxes, lb)

		if b.BreakAfter {
			flush()
			pageStartDocY = b.Y + b.Height
		}
	}

	if len(current.Boxes) > 0 || len(config.Pages) == 0 {
		config.Pages = append(config.Pages, *current)
	}
	return config
}

// flattenForPagination recursively replaces any pure-container box
// (no content, non-empty children) whose height exceeds content-height
// with its own children in place, so that oversize wrapper divs don't
// prevent their contents from splitting across pages (spec §4.5).
func flattenForPagination(boxes []*layout.Box, contentHeight float64) []*layout.Box {
	result := make([]*layout.Box, 0, len(boxes))
	for _, b := range boxes {
		_, isNone := b.Content.(layout.NoContent)
		if b.Height > contentHeight && isNone && len(b.Children) > 0 {
			result = append(result, flattenForPagination(b.Children, contentHeight)...)
			continue
		}
		result = append(result, b)
	}
	return result
}

// isTableLike reports whether a box is a table-remapped container
// eligible for row-by-row page splitting (spec §4.5's table-row split
// rule): a grid-display box (the <table> tag's remapped display, per
// style.baseStyleForTag) with at least one child.
func isTableLike(b *layout.Box) bool {
	return b.Style.Display == style.DisplayGrid && len(b.Children) > 0
}

// splitTableBox emits a table-like box's row children individually,
// flushing the page between rows as needed, instead of treating the
// table as one atomic box (spec §4.5's table-row split rule).
func (p *Paginator) splitTableBox(table *layout.Box, config *LayoutConfig, current **Page, pageStartDocY *float64, contentHeight, pageMargin float64, flush *func()) {
	for _, row := range table.Children {
		yOnPage := maxFloat(0, row.Y-*pageStartDocY)
		if yOnPage+row.Height > contentHeight && len((*current).Boxes) > 0 {
			(*flush)()
			*pageStartDocY = row.Y
			yOnPage = 0
		}
		lb := p.positionedToLayoutBox(row, pageMargin, yOnPage)
		(*current).Boxes = append((*current).Boxes, lb)
	}
}

func (p *Paginator) positionedToLayoutBox(b *layout.Box, pageMargin, yOnPage float64) *LayoutBox {
	absX := b.X
	absY := pageMargin + yOnPage
	return p.buildLayoutBox(b, absX, absY)
}

// buildLayoutBox recursively builds a Layout Box tree with
// page-absolute coordinates: each child's absolute y is
// parentAbsY + (child.Y - parent.Y), since Positioned Box y values are
// document-space absolutes (spec §4.5's "Box emission").
func (p *Paginator) buildLayoutBox(b *layout.Box, absX, absY float64) *LayoutBox {
	lb := &LayoutBox{X: absX, Y: absY, Width: b.Width, Height: b.Height}

	if !b.Style.BackgroundColor.Transparent() {
		c := [4]float64(b.Style.BackgroundColor)
		lb.BackgroundColor = &c
	}
	if b.Style.BorderWidth > 0.5 {
		lb.Border = &BorderStyle{Width: b.Style.BorderWidth, Color: [4]float64(b.Style.BorderColor)}
	}

	switch c := b.Content.(type) {
	case layout.TextContent:
		lb.Text = p.buildTextContent(b.Style, c.Lines, nil)
	case layout.MarkerContent:
		marker := c.Marker
		lb.Text = p.buildTextContent(b.Style, nil, &marker)
	case layout.ImageContent:
		lb.Image = &ImageContent{Src: c.Src, Width: b.Width, Height: b.Height}
	}

	for _, child := range b.Children {
		childAbsX := child.X
		childAbsY := absY + (child.Y - b.Y)
		lb.Children = append(lb.Children, p.buildLayoutBox(child, childAbsX, childAbsY))
	}
	return lb
}

func (p *Paginator) buildTextContent(s style.ComputedStyle, lines []string, marker *string) *TextContent {
	lineHeight := p.fonts.LineHeightPx(s.FontSize, s.LineHeight)
	textLines := make([]TextLine, len(lines))
	for i, line := range lines {
		textLines[i] = TextLine{Text: line, XOffset: 0, YOffset: float64(i) * lineHeight}
	}
	return &TextContent{
		Lines:      textLines,
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
		Bold:       s.FontWeight == style.WeightBold,
		Italic:     s.FontStyle == style.StyleItalic,
		Color:      [4]float64(s.Color),
		LineHeight: lineHeight,
		TextAlign:  textAlignString(s.TextAlign),
		Underline:  s.TextDecoration == style.DecorationUnderline,
		ListMarker: marker,
	}
}

func textAlignString(a style.TextAlign) string {
	switch a {
	case style.TextAlignCenter:
		return "center"
	case style.TextAlignRight:
		return "right"
	default:
		return "left"
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
