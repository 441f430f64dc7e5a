package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"Girder/internal/analysis"
	"Girder/internal/diagram"
	"Girder/internal/table"
)

// maxTableRows caps the data table so a large results file cannot blow up
// the document.
const maxTableRows = 30

// Generate builds the analysis report PDF and writes it to w. Diagram
// images are rendered into workDir; the caller owns that directory and its
// cleanup. beamImage is the beam-configuration figure to embed.
func Generate(w io.Writer, t *table.Table, res analysis.Result, mode analysis.Mode, beamImage, workDir string) error {
	shearPNG := filepath.Join(workDir, "shear.png")
	momentPNG := filepath.Join(workDir, "moment.png")
	if err := diagram.SaveShear(res.Samples, shearPNG); err != nil {
		return fmt.Errorf("render shear diagram: %w", err)
	}
	if err := diagram.SaveMoment(res.Samples, momentPNG); err != nil {
		return fmt.Errorf("render moment diagram: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Structural Analysis Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Automated Beam Analyzer")
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	sectionTitle(pdf, "1. Beam Configuration")
	pdf.ImageOptions(beamImage, 15, pdf.GetY(), 180, 0, true,
		gofpdf.ImageOptions{ImageType: imageType(beamImage), ReadDpi: true}, 0, "")
	pdf.Ln(6)

	sectionTitle(pdf, "2. Provided Data")
	dataTable(pdf, t)
	pdf.Ln(6)

	pdf.AddPage()
	sectionTitle(pdf, "3. Analysis")
	pdf.SetFont("Helvetica", "", 11)
	if mode == analysis.ModeCalculate {
		pdf.Cell(0, 6, fmt.Sprintf("Support reactions: R_A = %.2f kN, R_B = %.2f kN", res.RA, res.RB))
	} else {
		pdf.Cell(0, 6, "Diagrams plotted from user-provided results; reactions not computed.")
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Shear Force Diagram")
	pdf.Ln(8)
	pdf.ImageOptions(shearPNG, 15, pdf.GetY(), 180, 0, true,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Bending Moment Diagram")
	pdf.Ln(8)
	pdf.ImageOptions(momentPNG, 15, pdf.GetY(), 180, 0, true,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func dataTable(pdf *gofpdf.Fpdf, t *table.Table) {
	if len(t.Headers) == 0 {
		return
	}
	colW := 180.0 / float64(len(t.Headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range t.Headers {
		pdf.CellFormat(colW, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, row := range t.Rows {
		if i >= maxTableRows {
			break
		}
		for j := range t.Headers {
			var cell string
			if j < len(row) {
				cell = formatCell(row[j])
			}
			pdf.CellFormat(colW, 6, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// formatCell renders numeric-looking cells with two decimals and leaves
// everything else alone.
func formatCell(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%.2f", v)
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}
