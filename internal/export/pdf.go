package export

import (
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFamily      = "Helvetica"
	pdfCustomFont  = "summary"
	pdfMaxLineLen  = 200
	pdfLineHeight  = 6.0
	pdfMarginMM    = 15.0
	pdfTitleSizePt = 16
)

func (e *implExporter) writePDF(path string, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(true, pdfMarginMM)

	family := pdfFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if e.pdfFontPath != "" {
		pdf.AddUTF8Font(pdfCustomFont, "", e.pdfFontPath)
		pdf.AddUTF8Font(pdfCustomFont, "B", e.pdfFontPath)
		family = pdfCustomFont
		tr = func(s string) string { return s }
	}

	pdf.SetTitle(doc.Title, true)
	pdf.AddPage()

	size := float64(e.fontSize)
	if doc.Title != "" {
		pdf.SetFont(family, "B", pdfTitleSizePt)
		pdf.MultiCell(0, pdfLineHeight+2, tr(truncateLine(doc.Title)), "", "L", false)
		pdf.Ln(pdfLineHeight)
	}

	for _, b := range parseBlocks(doc.Body) {
		switch b.kind {
		case blockHeading:
			pdf.SetFont(family, "B", float64(headingSize(b.level, e.fontSize)))
			for _, line := range b.plain() {
				pdf.MultiCell(0, pdfLineHeight+1, tr(truncateLine(line)), "", "L", false)
			}
		default:
			for i, line := range b.lines {
				if b.kind == blockListItem && i == 0 {
					pdf.SetFont(family, "", size)
					pdf.Write(pdfLineHeight, tr(b.marker+" "))
				}
				writeRuns(pdf, family, size, line, tr)
				pdf.Ln(pdfLineHeight)
			}
		}
		pdf.Ln(pdfLineHeight / 2)
	}

	return pdf.OutputFileAndClose(path)
}

// writeRuns writes one line, switching to bold as needed and stopping at
// pdfMaxLineLen characters.
func writeRuns(pdf *fpdf.Fpdf, family string, size float64, line []run, tr func(string) string) {
	remaining := pdfMaxLineLen
	for _, r := range line {
		if remaining <= 0 {
			return
		}
		t := r.text
		if n := utf8.RuneCountInString(t); n > remaining {
			t = string([]rune(t)[:remaining])
		}
		remaining -= utf8.RuneCountInString(t)

		style := ""
		if r.bold {
			style = "B"
		}
		pdf.SetFont(family, style, size)
		pdf.Write(pdfLineHeight, tr(t))
	}
}

func truncateLine(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= pdfMaxLineLen {
		return s
	}
	return string([]rune(s)[:pdfMaxLineLen])
}
