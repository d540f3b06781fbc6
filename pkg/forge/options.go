package forge

import (
	"go.uber.org/zap"

	"github.com/McPeakDev/pdf-forge/internal/pipeline"
)

// Options configures a Converter. Grounded on the teacher's
// pkg/api.Options, trimmed to the fields this spec's pipeline
// actually consumes (no UA-stylesheet/DPI/debug-overlay fields: this
// design has no `<style>`-sheet cascade and no debug box-outline
// renderer).
type Options struct {
	Title           string
	PageWidth       float64
	PageHeight      float64
	PageMargin      float64
	Landscape       bool
	FontDirectories []string
	Logger          *zap.Logger
}

// Option mutates Options; applied via Converter.WithOption.
type Option func(*Options)

// DefaultOptions returns A4 portrait, a 40pt margin, and the default
// title, matching pipeline.DefaultConfig.
func DefaultOptions() Options {
	def := pipeline.DefaultConfig()
	return Options{
		Title:      def.Title,
		PageWidth:  def.PageWidth,
		PageHeight: def.PageHeight,
		PageMargin: def.PageMargin,
	}
}

func (o Options) toConfig() pipeline.Config {
	orientation := pipeline.Portrait
	if o.Landscape {
		orientation = pipeline.Landscape
	}
	return pipeline.Config{
		Title:           o.Title,
		PageWidth:       o.PageWidth,
		PageHeight:      o.PageHeight,
		PageMargin:      o.PageMargin,
		Orientation:     orientation,
		FontDirectories: o.FontDirectories,
		Logger:          o.Logger,
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithPageSize sets the page width and height in PDF points.
func WithPageSize(width, height float64) Option {
	return func(o *Options) { o.PageWidth, o.PageHeight = width, height }
}

// WithMargin sets the uniform page margin in PDF points.
func WithMargin(margin float64) Option {
	return func(o *Options) { o.PageMargin = margin }
}

// WithLandscape toggles landscape orientation.
func WithLandscape(landscape bool) Option {
	return func(o *Options) { o.Landscape = landscape }
}

// WithFontDirectory adds a directory to search for font files.
func WithFontDirectory(dir string) Option {
	return func(o *Options) { o.FontDirectories = append(o.FontDirectories, dir) }
}

// WithLogger sets the zap logger used for pipeline diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Standard page sizes in PDF points (1 pt = 1/72 inch), kept from the
// teacher's pkg/api.Options constants.
const (
	PageSizeA4Width      = 595.28
	PageSizeA4Height     = 841.89
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4.
func WithPageSizeA4() Option { return WithPageSize(PageSizeA4Width, PageSizeA4Height) }

// WithPageSizeLetter sets the page size to US Letter.
func WithPageSizeLetter() Option { return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight) }

// WithPageSizeLegal sets the page size to US Legal.
func WithPageSizeLegal() Option { return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight) }
