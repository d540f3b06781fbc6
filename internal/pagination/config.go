// Package pagination implements the Paginator: a Positioned Box tree
// in document-space coordinates is split across pages, producing a
// Layout Config whose Layout Boxes carry page-absolute coordinates.
// Grounded on original_source/src/pagination.rs and layout_config.rs,
// in the teacher's Engine/Options/Page/Paginator package shape
// (internal/pagination/engine.go, paginate.go).
package pagination

// PageSize is a page's physical dimensions in PDF points.
type PageSize struct {
	Width  float64
	Height float64
	Name   string
}

// Margins are a page's four margins in PDF points. The paginator
// itself only uses a single uniform margin (spec §4.5's
// content-height = page-height - 2*page-margin); Top is the value
// used for that computation and for the top offset of every page. The
// other three fields are kept for symmetry with the teacher's Options
// shape; the paginator does not read them and the Layout Config does
// not carry margins to the renderer.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// LayoutConfig is the frozen, serializable output of pagination: the
// stable contract consumed by an external PDF renderer (spec §3/§6).
type LayoutConfig struct {
	Title        string `json:"title"`
	PageWidthPt  float64 `json:"page_width_pt"`
	PageHeightPt float64 `json:"page_height_pt"`
	Pages        []Page `json:"pages"`
}

// Page is one page of content: an ordered list of page-absolute Layout
// Boxes.
type Page struct {
	PageIndex int          `json:"page_index"`
	Boxes     []*LayoutBox `json:"boxes"`
}

// LayoutBox is a positioned rectangle with optional visual styling and
// content, page-absolute (origin = top-left of the physical page).
type LayoutBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	BackgroundColor *[4]float64 `json:"background_color,omitempty"`
	Border          *BorderStyle `json:"border,omitempty"`

	Text  *TextContent  `json:"text,omitempty"`
	Image *ImageContent `json:"image,omitempty"`

	Children []*LayoutBox `json:"children"`
}

// BorderStyle is a box's border width and color.
type BorderStyle struct {
	Width float64    `json:"width"`
	Color [4]float64 `json:"color"`
}

// TextContent carries a box's pre-wrapped lines and text styling.
type TextContent struct {
	Lines      []TextLine `json:"lines"`
	FontFamily string     `json:"font_family"`
	FontSize   float64    `json:"font_size"`
	Bold       bool       `json:"bold"`
	Italic     bool       `json:"italic"`
	Color      [4]float64 `json:"color"`
	LineHeight float64    `json:"line_height"`
	TextAlign  string     `json:"text_align"`
	Underline  bool       `json:"underline"`
	// ListMarker holds a list item's bullet/number prefix ("• " or
	// "1. "); nil for ordinary text boxes.
	ListMarker *string `json:"list_marker,omitempty"`
}

// TextLine is one pre-wrapped line of text, positioned within its
// Layout Box.
type TextLine struct {
	Text    string  `json:"text"`
	XOffset float64 `json:"x_offset"`
	YOffset float64 `json:"y_offset"`
}

// ImageContent carries an image box's source and resolved pixel size.
type ImageContent struct {
	Src    string  `json:"src"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func newLayoutConfig(title string, pageWidth, pageHeight float64) *LayoutConfig {
	if title == "" {
		title = "rpdf output"
	}
	return &LayoutConfig{Title: title, PageWidthPt: pageWidth, PageHeightPt: pageHeight}
}
