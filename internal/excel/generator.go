package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the billing summary as a single-sheet workbook: the
// period block on top, then a localbody table ordered as the summary
// itself is (revenue descending).
func (g *Generator) Generate(summary model.BillingSummary) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Billing Summary"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Period start")
	set("B1", formatDate(summary.PeriodStart))
	set("A2", "Period end")
	set("B2", formatDate(summary.PeriodEnd.AddDate(0, 0, -1)))
	set("A3", "Collections")
	set("B3", summary.CollectionCount)
	set("A4", "Total weight, kg")
	set("B4", summary.TotalWeightKG)
	set("A5", "Total revenue")
	set("B5", summary.TotalRevenue)

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "Local body")
	set(fmt.Sprintf("B%d", tableRow), "Collections")
	set(fmt.Sprintf("C%d", tableRow), "Weight, kg")
	set(fmt.Sprintf("D%d", tableRow), "Revenue")

	for i, stat := range summary.Localbodies {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), stat.Localbody)
		set(fmt.Sprintf("B%d", row), stat.CollectionCount)
		set(fmt.Sprintf("C%d", row), stat.TotalWeightKG)
		set(fmt.Sprintf("D%d", row), stat.TotalRevenue)
	}

	if err := file.SetColWidth(sheet, "A", "A", 28); err != nil {
		return nil, err
	}
	if err := file.SetColWidth(sheet, "B", "D", 16); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}
