package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/NABEEL165/suchigo-project/internal/model"
)

func TestGenerateBillingSummaryWorkbook(t *testing.T) {
	summary := model.BillingSummary{
		PeriodStart:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		TotalWeightKG:   15,
		TotalRevenue:    750,
		CollectionCount: 3,
		Localbodies: []model.LocalbodyStat{
			{Localbody: "Beta", TotalWeightKG: 10, TotalRevenue: 500, CollectionCount: 1},
			{Localbody: "Alpha", TotalWeightKG: 5, TotalRevenue: 250, CollectionCount: 2},
		},
	}

	content, err := NewGenerator().Generate(summary)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	sheet := "Billing Summary"
	cell := func(ref string) string {
		value, err := file.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "01.06.2024", cell("B1"))
	assert.Equal(t, "30.06.2024", cell("B2"))
	assert.Equal(t, "3", cell("B3"))
	assert.Equal(t, "Local body", cell("A7"))
	// Rows keep the summary's revenue-descending order.
	assert.Equal(t, "Beta", cell("A8"))
	assert.Equal(t, "Alpha", cell("A9"))
	assert.Equal(t, "250", cell("D9"))
}
