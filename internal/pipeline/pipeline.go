// Package pipeline implements the Pipeline Orchestrator: it ties
// parsing, style resolution, layout, pagination, and rendering
// together behind three entry points, per spec §4.6. Grounded on
// original_source/src/pipeline.rs (PipelineConfig, effective
// width/height swap on landscape, generate_pdf/
// compute_layout_config) and the teacher's pkg/api.Converter (the
// Go-side Options/functional-option shape, moved down into an
// internal orchestration layer that pkg/forge wraps).
package pipeline

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/McPeakDev/pdf-forge/internal/dom"
	"github.com/McPeakDev/pdf-forge/internal/fonts"
	"github.com/McPeakDev/pdf-forge/internal/layout"
	"github.com/McPeakDev/pdf-forge/internal/pagination"
	pdfrender "github.com/McPeakDev/pdf-forge/internal/render/pdf"
	"github.com/McPeakDev/pdf-forge/internal/res"
	"github.com/McPeakDev/pdf-forge/internal/style"
)

// PageOrientation selects the generated PDF's page orientation.
type PageOrientation int

const (
	// Portrait is the default: height > width.
	Portrait PageOrientation = iota
	// Landscape swaps width and height.
	Landscape
)

// Config configures a pipeline run.
type Config struct {
	Title           string
	PageWidth       float64
	PageHeight      float64
	PageMargin      float64
	Orientation     PageOrientation
	FontDirectories []string
	Logger          *zap.Logger
}

// DefaultConfig returns an A4-portrait config with a 40pt margin and
// the default title, matching original_source's PipelineConfig
// default.
func DefaultConfig() Config {
	return Config{
		Title:      "rpdf output",
		PageWidth:  595.28,
		PageHeight: 841.89,
		PageMargin: pagination.PageMarginPt,
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// EffectiveWidth returns the page width after applying orientation.
func (c Config) EffectiveWidth() float64 {
	if c.Orientation == Landscape {
		return c.PageHeight
	}
	return c.PageWidth
}

// EffectiveHeight returns the page height after applying orientation.
func (c Config) EffectiveHeight() float64 {
	if c.Orientation == Landscape {
		return c.PageWidth
	}
	return c.PageHeight
}

// Result is the full output of a Generate call: rendered PDF bytes,
// the Layout Config that produced them, and any non-fatal warnings
// collected along the way (spec §7's fail-soft conditions).
type Result struct {
	PDF          []byte
	LayoutConfig *pagination.LayoutConfig
	warnings     error
}

// Warnings returns every non-fatal condition tolerated during this
// run, aggregated via multierr. Only font files that fail to load
// from Config.FontDirectories are collected; other fail-soft
// conditions (e.g. an undecodable image) add no warning. Grounded
// on rupor-github-fb2cng's warning-collection convention since the
// teacher itself has none.
func (r *Result) Warnings() []error {
	return multierr.Errors(r.warnings)
}

func (r *Result) addWarning(err error) {
	r.warnings = multierr.Append(r.warnings, err)
}

// Generate runs the full pipeline: HTML string -> PDF bytes plus the
// Layout Config that produced them.
func Generate(html string, config Config) (*Result, error) {
	result := &Result{}
	log := config.logger()

	log.Debug("parsing HTML")
	nodes, fontService := resolveAndMeasure(html, config, log, result)

	contentWidth := config.EffectiveWidth() - 2*config.PageMargin
	log.Debug("computing layout", zap.Float64("content_width", contentWidth))
	boxes := layout.NewEngine(fontService).Compute(nodes, contentWidth, config.PageMargin)

	log.Debug("paginating")
	paginator := pagination.NewPaginator(fontService)
	paginator.SetOptions(pagination.Options{
		PageSize: pagination.PageSize{Width: config.EffectiveWidth(), Height: config.EffectiveHeight()},
		Margins: pagination.Margins{
			Top: config.PageMargin, Right: config.PageMargin,
			Bottom: config.PageMargin, Left: config.PageMargin,
		},
	})
	layoutConfig := paginator.Paginate(config.Title, boxes)
	result.LayoutConfig = layoutConfig

	log.Debug("rendering PDF", zap.Int("pages", len(layoutConfig.Pages)))
	pdfBytes, err := pdfrender.NewRenderer().Render(layoutConfig)
	if err != nil {
		return result, fmt.Errorf("failed to render PDF: %w", err)
	}
	result.PDF = pdfBytes
	return result, nil
}

// ComputeLayoutConfig runs only parsing, style resolution, layout, and
// pagination — no rendering — useful for testing and for serving a
// Layout Config JSON to an external renderer (spec §4.6's "compute
// layout only" entry point).
func ComputeLayoutConfig(html string, config Config) *pagination.LayoutConfig {
	result := &Result{}
	log := config.logger()
	nodes, fontService := resolveAndMeasure(html, config, log, result)

	contentWidth := config.EffectiveWidth() - 2*config.PageMargin
	boxes := layout.NewEngine(fontService).Compute(nodes, contentWidth, config.PageMargin)

	paginator := pagination.NewPaginator(fontService)
	paginator.SetOptions(pagination.Options{
		PageSize: pagination.PageSize{Width: config.EffectiveWidth(), Height: config.EffectiveHeight()},
		Margins: pagination.Margins{
			Top: config.PageMargin, Right: config.PageMargin,
			Bottom: config.PageMargin, Left: config.PageMargin,
		},
	})
	return paginator.Paginate(config.Title, boxes)
}

// RenderLayoutConfig renders an already-computed Layout Config to PDF
// bytes (spec §4.6's "render from layout JSON" entry point — the
// renderer is an external collaborator that can run standalone given
// just the frozen Layout Config contract).
func RenderLayoutConfig(layoutConfig *pagination.LayoutConfig) ([]byte, error) {
	return pdfrender.NewRenderer().Render(layoutConfig)
}

func resolveAndMeasure(html string, config Config, log *zap.Logger, result *Result) ([]style.Node, *fonts.Service) {
	doc := dom.Parse(html)
	nodes := style.NewEngine().Resolve(doc.BodyChildren())

	fontService := fonts.NewService()
	if len(config.FontDirectories) > 0 {
		loader := res.NewLoader()
		for _, dir := range config.FontDirectories {
			loader.AddSearchPath(dir)
		}
		for _, ff := range loader.ListFontFiles() {
			data, err := loader.LoadFont(ff.Family)
			if err != nil {
				log.Warn("skipping font file", zap.String("family", ff.Family), zap.Error(err))
				result.addWarning(fmt.Errorf("font %q: %w", ff.Family, err))
				continue
			}
			fontService.LoadFace(fonts.Key{Family: ff.Family}, data, 1000, 750, -250, 0)
		}
	}
	return nodes, fontService
}
