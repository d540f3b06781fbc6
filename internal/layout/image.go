package layout

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/McPeakDev/pdf-forge/internal/style"
)

// buildImage lays out an <img>. When width or height is auto, its
// base64 data-URI payload is decoded once to resolve the missing
// dimension by aspect ratio (or both, 1:1, if both are auto); a decode
// failure leaves the style untouched and the image lays out at zero
// size, per spec §4.4's "Image intrinsic size" rule.
func (e *Engine) buildImage(node *style.ElementNode, availWidth float64) *Box {
	s := node.Style
	src := node.Attrs["src"]

	widthAuto, heightAuto := s.Width.IsAuto(), s.Height.IsAuto()
	resolvedW := s.Width.Resolve(availWidth, 0)
	resolvedH := s.Height.Resolve(availWidth, 0)

	if widthAuto || heightAuto {
		if pxW, pxH, ok := decodeIntrinsicSize(src); ok && pxW > 0 && pxH > 0 {
			resolvedW, resolvedH = resolveAutoDimensions(widthAuto, heightAuto, resolvedW, resolvedH, pxW, pxH)
		} else {
			if widthAuto {
				resolvedW = 0
			}
			if heightAuto {
				resolvedH = 0
			}
		}
	}

	box := newBox(s)
	box.Content = ImageContent{Src: src}
	box.Width = resolvedW + horizontalBoxModel(s)
	box.Height = resolvedH + verticalBoxModel(s)
	return box
}

// resolveAutoDimensions fills in whichever of width/height is auto
// using the decoded pixel aspect ratio; if both are auto, the pixel
// dimensions are used 1:1.
func resolveAutoDimensions(widthAuto, heightAuto bool, w, h, pxW, pxH float64) (float64, float64) {
	switch {
	case widthAuto && heightAuto:
		return pxW, pxH
	case heightAuto:
		return w, w * pxH / pxW
	case widthAuto:
		return h * pxW / pxH, h
	default:
		return w, h
	}
}

// decodeIntrinsicSize decodes a base64 data: URI image payload and
// returns its pixel dimensions. Non-data-URI sources (no network
// fetches, per spec §1's Non-goals) return ok=false.
func decodeIntrinsicSize(src string) (w, h float64, ok bool) {
	payload, mime, ok := parseDataURI(src)
	if !ok {
		return 0, 0, false
	}

	if mime == "image/svg+xml" {
		return decodeSVGSize(payload)
	}

	var cfg image.Config
	var err error
	switch mime {
	case "image/webp":
		cfg, err = webp.DecodeConfig(bytes.NewReader(payload))
	case "image/bmp":
		cfg, err = bmp.DecodeConfig(bytes.NewReader(payload))
	default:
		cfg, _, err = image.DecodeConfig(bytes.NewReader(payload))
	}
	if err != nil {
		return 0, 0, false
	}
	return float64(cfg.Width), float64(cfg.Height), true
}

// decodeSVGSize resolves an SVG's intrinsic size from its viewBox (or
// width/height attributes), via oksvg's parser — the concrete home
// for the teacher's SVG dependency inside the (out-of-render) layout
// stage; this repo's renderer does not rasterize SVGs, but intrinsic
// sizing legitimately needs the same parser the teacher uses for
// rasterization.
func decodeSVGSize(payload []byte) (w, h float64, ok bool) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(payload))
	if err != nil {
		return 0, 0, false
	}
	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return 0, 0, false
	}
	return vb.W, vb.H, true
}

// parseDataURI decodes an RFC 2397 base64 data: URI into its payload
// bytes and MIME type.
func parseDataURI(src string) (payload []byte, mime string, ok bool) {
	const prefix = "data:"
	if !strings.HasPrefix(src, prefix) {
		return nil, "", false
	}
	rest := src[len(prefix):]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return nil, "", false
	}
	meta, data := rest[:comma], rest[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", false
	}
	mime = strings.TrimSuffix(meta, ";base64")
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", false
	}
	return decoded, mime, true
}
