package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(summary model.BillingSummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Waste Collection Billing Summary", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	period := fmt.Sprintf("Period: %s to %s",
		formatDate(summary.PeriodStart),
		formatDate(summary.PeriodEnd.AddDate(0, 0, -1)))
	pdf.CellFormat(0, 6, period, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Totals", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Collections: %d", summary.CollectionCount), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total weight: %.2f kg", summary.TotalWeightKG), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total revenue: %.2f", summary.TotalRevenue), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "By local body", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	headers := []string{"Local body", "Collections", "Weight, kg", "Revenue"}
	colWidths := []float64{80, 30, 35, 35}
	drawTableRow(pdf, headers, colWidths, true)

	for _, stat := range summary.Localbodies {
		row := []string{
			stat.Localbody,
			fmt.Sprintf("%d", stat.CollectionCount),
			fmt.Sprintf("%.2f", stat.TotalWeightKG),
			fmt.Sprintf("%.2f", stat.TotalRevenue),
		}
		drawTableRow(pdf, row, colWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
