// Package layout implements the Layout Engine: Styled forest ->
// Positioned Box tree in document-space coordinates. It hand-rolls a
// small flex-style solver (spec §9 allows any solver whose contract is
// a definite-width/max-content-height entry point producing a
// Positioned Box tree; no off-the-shelf constraint solver appears
// anywhere in the example pack, so this follows the teacher's own
// hand-rolled Box/BlockBox/InlineBox approach rather than an external
// dependency).
package layout

import "github.com/McPeakDev/pdf-forge/internal/style"

// Content is the sum type carried by a Box: none, wrapped text, an
// image reference, or a list-item marker string.
type Content interface {
	isContent()
}

// NoContent marks a pure container box.
type NoContent struct{}

func (NoContent) isContent() {}

// TextContent carries the original source string plus its wrapped
// lines at the box's resolved width.
type TextContent struct {
	Original string
	Lines    []string
}

func (TextContent) isContent() {}

// ImageContent carries the original `src` attribute value.
type ImageContent struct {
	Src string
}

func (ImageContent) isContent() {}

// MarkerContent carries a rendered list-item marker string ("• " or
// "N. ").
type MarkerContent struct {
	Marker string
}

func (MarkerContent) isContent() {}

// Box is a Positioned Box: absolute document-space x,y; width,
// height; its full computed style; content; ordered children; and the
// three page-break flags copied from style. Invariant: a Box's
// rectangle encloses all its immediate children's rectangles
// including their own padding/border; margins are external (already
// reflected in the box's own location).
type Box struct {
	Style    style.ComputedStyle
	X, Y     float64
	Width    float64
	Height   float64
	Content  Content
	Children []*Box

	BreakBefore      bool
	BreakAfter       bool
	BreakInsideAvoid bool
}

func newBox(s style.ComputedStyle) *Box {
	return &Box{
		Style:            s,
		Content:          NoContent{},
		BreakBefore:      s.BreakBefore,
		BreakAfter:       s.BreakAfter,
		BreakInsideAvoid: s.BreakInsideAvoid,
	}
}

// shift translates a box and every descendant by (dx, dy), turning
// locally-built (origin-relative) coordinates into the caller's
// coordinate space. This is how absolute offset-accumulation (spec
// §4.4's "walk the tree and emit Positioned Boxes carrying absolute
// (offset-accumulating) x,y") is realized: each container builds its
// children at local origin (0,0), then shifts each child into place.
func shift(b *Box, dx, dy float64) {
	b.X += dx
	b.Y += dy
	for _, c := range b.Children {
		shift(c, dx, dy)
	}
}
