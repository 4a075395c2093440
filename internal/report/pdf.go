package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// Document is a fully assembled report ready for rendering.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Sections    []string
	Blocks      []Block
}

// Render produces the PDF bytes. Page breaks follow the layout engine's
// assignment; fpdf's automatic page breaking stays off so a block can
// never be split underneath us.
func Render(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	writeHeader(pdf, doc)

	heights := make([]float64, len(doc.Blocks))
	for i, b := range doc.Blocks {
		heights[i] = b.Height()
	}
	pages := Engine{UsableHeight: UsableHeight()}.Pages(heights)

	current := 0
	for i, b := range doc.Blocks {
		if pages[i] != current {
			pdf.AddPage()
			current = pages[i]
		}
		writeBlock(pdf, b)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *fpdf.Fpdf, doc *Document) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Generated on: "+doc.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	for _, s := range doc.Sections {
		pdf.CellFormat(0, 6, "Section: "+s, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeBlock(pdf *fpdf.Fpdf, b Block) {
	for _, line := range b.Lines {
		if line.Bold {
			pdf.SetFont("Arial", "B", 11)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		for _, chunk := range wrapText(line.Text) {
			pdf.CellFormat(0, lineHeight, chunk, "", 1, "L", false, 0, "")
		}
	}

	// Dashed separator inside the trailing block gap.
	w, _ := pdf.GetPageSize()
	y := pdf.GetY() + blockGap/2
	pdf.SetDashPattern([]float64{1, 1}, 0)
	pdf.Line(marginLeft, y, w-marginLeft, y)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetY(pdf.GetY() + blockGap)
}

// wrapText splits text into the same fixed-width chunks the height
// estimator counts. Chunks are rune-aligned so multi-byte characters are
// never split across lines.
func wrapText(s string) []string {
	runes := []rune(s)
	if len(runes) <= charsPerLine {
		return []string{s}
	}
	var out []string
	for len(runes) > charsPerLine {
		out = append(out, string(runes[:charsPerLine]))
		runes = runes[charsPerLine:]
	}
	return append(out, string(runes))
}
