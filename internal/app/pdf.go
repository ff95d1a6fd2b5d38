package app

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/goscrape/internal/extract"
)

// writeResultPDF renders the scan result as a minimal PDF: the page URL,
// then one heading per pattern field followed by its matches. Layout is
// intentionally simple.
func writeResultPDF(pageURL string, result extract.Result, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Scrape result", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, pageURL, "", "L", false)
	pdf.Ln(4)

	for _, name := range result.Names() {
		matches := result.Matches(name)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s (%d)", name, len(matches)), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		if len(matches) == 0 {
			pdf.MultiCell(0, 5, "(none)", "", "L", false)
		} else {
			for _, m := range matches {
				pdf.MultiCell(0, 5, m, "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	return pdf.OutputFileAndClose(outPath)
}
