// Package pdf renders a Layout Config to PDF bytes via
// codeberg.org/go-pdf/fpdf — the external renderer collaborator, kept
// real (not stubbed) but out of this repo's core scope (spec §1/§4.6:
// the Paginator's Layout Config JSON is the stable contract; a
// renderer need only consume it).
package pdf

import (
	"bytes"
	"encoding/base64"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/McPeakDev/pdf-forge/internal/pagination"
)

// Renderer draws a Layout Config page-by-page using fpdf, grounded on
// original_source/src/render.rs's box-by-box drawing algorithm
// (background, border, text lines + underline, list marker, image)
// and the teacher's own fpdf call shapes (SetFillColor/Rect/Text/
// Image) in internal/render/pdf/pdf.go.
type Renderer struct {
	imageCounter int
}

// NewRenderer constructs a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws config's pages and returns the generated PDF bytes.
func (r *Renderer) Render(config *pagination.LayoutConfig) ([]byte, error) {
	orientation := "P"
	if config.PageWidthPt > config.PageHeightPt {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "pt", "", "")
	pdf.SetTitle(config.Title, false)
	pdf.SetAutoPageBreak(false, 0)

	pages := config.Pages
	if len(pages) == 0 {
		pages = []pagination.Page{{PageIndex: 0}}
	}

	for _, page := range pages {
		pdf.AddPageFormat(orientation, fpdf.SizeType{Wd: config.PageWidthPt, Ht: config.PageHeightPt})
		for _, box := range page.Boxes {
			r.renderBox(pdf, box)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderBox(pdf *fpdf.Fpdf, box *pagination.LayoutBox) {
	if box.BackgroundColor != nil {
		c := *box.BackgroundColor
		pdf.SetFillColor(channel(c[0]), channel(c[1]), channel(c[2]))
		pdf.Rect(box.X, box.Y, box.Width, box.Height, "F")
	}

	if box.Border != nil {
		c := box.Border.Color
		pdf.SetDrawColor(channel(c[0]), channel(c[1]), channel(c[2]))
		pdf.SetLineWidth(box.Border.Width)
		pdf.Rect(box.X, box.Y, box.Width, box.Height, "D")
	}

	if box.Text != nil {
		r.renderText(pdf, box)
	}
	if box.Image != nil {
		r.renderImage(pdf, box)
	}

	for _, child := range box.Children {
		r.renderBox(pdf, child)
	}
}

func (r *Renderer) renderText(pdf *fpdf.Fpdf, box *pagination.LayoutBox) {
	text := box.Text
	style := ""
	if text.Bold {
		style += "B"
	}
	if text.Italic {
		style += "I"
	}
	pdf.SetFont("Helvetica", style, text.FontSize)
	pdf.SetTextColor(channel(text.Color[0]), channel(text.Color[1]), channel(text.Color[2]))

	ascenderOffset := text.FontSize * 0.75
	for _, line := range text.Lines {
		if line.Text == "" {
			continue
		}
		x := box.X + line.XOffset
		y := box.Y + line.YOffset + ascenderOffset
		pdf.Text(x, y, line.Text)

		if text.Underline {
			underlineY := y + text.FontSize*0.1
			pdf.SetDrawColor(channel(text.Color[0]), channel(text.Color[1]), channel(text.Color[2]))
			pdf.SetLineWidth(0.5)
			pdf.Line(x, underlineY, x+box.Width, underlineY)
		}
	}

	if text.ListMarker != nil {
		pdf.SetFont("Helvetica", "", text.FontSize)
		pdf.Text(box.X-16, box.Y+ascenderOffset, *text.ListMarker)
	}
}

func (r *Renderer) renderImage(pdf *fpdf.Fpdf, box *pagination.LayoutBox) {
	mime, payload, ok := decodeDataURI(box.Image.Src)
	if !ok {
		return
	}
	r.imageCounter++
	name := imageName(r.imageCounter)
	opts := fpdf.ImageOptions{ImageType: imageFormat(mime)}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(payload))
	pdf.ImageOptions(name, box.X, box.Y, box.Image.Width, box.Image.Height, false, opts, 0, "")
}

func channel(v float64) int {
	c := int(v * 255)
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

func imageName(n int) string {
	return "img" + itoa(n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

func imageFormat(mime string) string {
	switch {
	case strings.Contains(mime, "png"):
		return "PNG"
	case strings.Contains(mime, "jpeg"), strings.Contains(mime, "jpg"):
		return "JPG"
	case strings.Contains(mime, "gif"):
		return "GIF"
	default:
		return "PNG"
	}
}

func decodeDataURI(src string) (mime string, payload []byte, ok bool) {
	const prefix = "data:"
	if !strings.HasPrefix(src, prefix) {
		return "", nil, false
	}
	rest := src[len(prefix):]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return "", nil, false
	}
	meta, data := rest[:comma], rest[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, false
	}
	mime = strings.TrimSuffix(meta, ";base64")
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", nil, false
	}
	return mime, decoded, true
}
