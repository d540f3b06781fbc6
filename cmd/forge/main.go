// Command forge converts an HTML document to a PDF file.
//
// Usage:
//
//	forge <input.html> [output.pdf] [--landscape] [--title "My Report"]
//
// If output.pdf is omitted, the PDF is written next to the input file
// with the same stem (e.g. report.html -> report.pdf).
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/McPeakDev/pdf-forge/pkg/forge"
)

func main() {
	cmd := &cli.Command{
		Name:      "forge",
		Usage:     "HTML to PDF converter (pdf-forge)",
		ArgsUsage: "<input.html> [output.pdf]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "landscape",
				Aliases: []string{"l"},
				Usage:   "use landscape page orientation",
			},
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "document title in PDF metadata (default: input filename stem)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable verbose logging",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	input := cmd.Args().First()
	if input == "" {
		return cli.Exit("no input file specified", 1)
	}

	output := cmd.Args().Get(1)
	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + ".pdf"
	}

	html, err := os.ReadFile(input)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %q: %v", input, err), 1)
	}

	title := cmd.String("title")
	if title == "" {
		stem := filepath.Base(input)
		title = strings.TrimSuffix(stem, filepath.Ext(stem))
	}

	converter := forge.New().SetTitle(title).SetLandscape(cmd.Bool("landscape"))
	if cmd.Bool("verbose") {
		logger, _ := zap.NewDevelopment()
		converter = converter.SetLogger(logger)
	}

	pdfBytes, warnings, err := converter.ConvertWithWarnings(string(html))
	if err != nil {
		return cli.Exit(fmt.Sprintf("generating PDF: %v", err), 1)
	}

	if dir := filepath.Dir(output); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return cli.Exit(fmt.Sprintf("creating output directory: %v", err), 1)
		}
	}
	if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
		return cli.Exit(fmt.Sprintf("writing %q: %v", output, err), 1)
	}

	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}

	fmt.Fprintf(os.Stderr, "Wrote %q (%d bytes)\n", output, len(pdfBytes))
	return nil
}
