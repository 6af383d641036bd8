package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/docio"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	exportPDFInput      string
	exportPDFOutput     string
	exportPDFTemplate   string
	exportPDFChromePath string
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Render a resume document to PDF",
	Long:  "Reads a resume document JSON file, derives section visibility from its content, and renders it to a paginated PDF through a headless browser.",
	RunE:  runExportPDF,
}

func init() {
	exportPDFCmd.Flags().StringVarP(&exportPDFInput, "in", "i", "", "Path to resume document JSON file (required)")
	exportPDFCmd.Flags().StringVarP(&exportPDFOutput, "out", "o", "", "Path to output PDF file (defaults to the dated download name)")
	exportPDFCmd.Flags().StringVarP(&exportPDFTemplate, "template", "t", rendering.DefaultTemplateID, "Visual template id")
	exportPDFCmd.Flags().StringVar(&exportPDFChromePath, "chrome-path", "", "Path to Chrome/Chromium binary (defaults to CHROME_PATH or lookup)")

	if err := exportPDFCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(exportPDFInput)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	result, err := docio.Import(data)
	if err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	sections := types.DefaultSections()
	for i := range sections {
		if sections[i].IsOptional {
			sections[i].IsVisible = result.Document.HasOptionalSectionData(sections[i].Type)
		}
	}

	styles := types.DefaultStyleSettings()
	styles.TemplateID = exportPDFTemplate

	chromePath := exportPDFChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}

	exporter := export.NewExporter(export.NewChromeRenderer(chromePath))
	res, err := exporter.Export(cmd.Context(), result.Document, sections, styles)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	outPath := exportPDFOutput
	if outPath == "" {
		outPath = res.Filename
	}

	if err := os.WriteFile(outPath, res.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(res.PDF))
	return nil
}
