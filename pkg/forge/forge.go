// Package forge is the public API: HTML string in, PDF bytes out.
// Grounded on the teacher's pkg/api.Converter (functional-option
// builder over an Options struct) and original_source/src/pipeline.rs
// (the PipelineConfig this wraps).
package forge

import (
	"go.uber.org/zap"

	"github.com/McPeakDev/pdf-forge/internal/pagination"
	"github.com/McPeakDev/pdf-forge/internal/pipeline"
)

// Converter converts HTML documents to PDF.
type Converter struct {
	options Options
}

// New constructs a Converter with default options (A4 portrait, 40pt
// margins, "rpdf output" title).
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions constructs a Converter with the given options.
func NewWithOptions(options Options) *Converter {
	return &Converter{options: options}
}

// WithOptions returns a new Converter with the given options.
func (c *Converter) WithOptions(options Options) *Converter {
	return NewWithOptions(options)
}

// WithOption returns a new Converter with option applied on top of
// its current options.
func (c *Converter) WithOption(option Option) *Converter {
	newOptions := c.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Convert renders an HTML document to PDF bytes.
func (c *Converter) Convert(html string) ([]byte, error) {
	result, err := pipeline.Generate(html, c.options.toConfig())
	if err != nil {
		return nil, err
	}
	return result.PDF, nil
}

// ConvertWithWarnings is Convert plus the non-fatal warnings collected
// along the way (font files in a font directory that fail to load).
func (c *Converter) ConvertWithWarnings(html string) ([]byte, []error, error) {
	result, err := pipeline.Generate(html, c.options.toConfig())
	if err != nil {
		return nil, nil, err
	}
	return result.PDF, result.Warnings(), nil
}

// ComputeLayoutConfig runs parsing through pagination only and returns
// the resulting Layout Config, without rendering a PDF.
func (c *Converter) ComputeLayoutConfig(html string) *pagination.LayoutConfig {
	return pipeline.ComputeLayoutConfig(html, c.options.toConfig())
}

// RenderLayoutConfig renders a previously computed Layout Config to
// PDF bytes, without re-running parsing/styling/layout/pagination.
func RenderLayoutConfig(layoutConfig *pagination.LayoutConfig) ([]byte, error) {
	return pipeline.RenderLayoutConfig(layoutConfig)
}

// SetTitle returns a new Converter with the document title set.
func (c *Converter) SetTitle(title string) *Converter {
	return c.WithOption(WithTitle(title))
}

// SetPageSize returns a new Converter with the page size set.
func (c *Converter) SetPageSize(width, height float64) *Converter {
	return c.WithOption(WithPageSize(width, height))
}

// SetMargin returns a new Converter with the uniform page margin set.
func (c *Converter) SetMargin(margin float64) *Converter {
	return c.WithOption(WithMargin(margin))
}

// SetLandscape returns a new Converter with landscape orientation.
func (c *Converter) SetLandscape(landscape bool) *Converter {
	return c.WithOption(WithLandscape(landscape))
}

// AddFontDirectory returns a new Converter with dir added to the font
// search paths.
func (c *Converter) AddFontDirectory(dir string) *Converter {
	return c.WithOption(WithFontDirectory(dir))
}

// SetLogger returns a new Converter using logger for pipeline
// diagnostics instead of a no-op logger.
func (c *Converter) SetLogger(logger *zap.Logger) *Converter {
	return c.WithOption(WithLogger(logger))
}
