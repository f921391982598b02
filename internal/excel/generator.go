package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/marketplace-ledger/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the best-clients statement as a single-sheet workbook.
func (g *Generator) Generate(statement model.ClientsStatement) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Best clients"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Report")
	set("B1", "Best clients by paid job total")
	set("A2", "Period start")
	set("B2", formatDate(statement.PeriodStart))
	set("A3", "Period end")
	set("B3", formatDate(statement.PeriodEnd))
	set("A4", "Clients")
	set("B4", len(statement.Clients))
	set("A5", "Total paid")
	set("B5", formatAmount(statement.TotalPaid()))

	tableRow := 7
	set(fmt.Sprintf("A%d", tableRow), "#")
	set(fmt.Sprintf("B%d", tableRow), "Client")
	set(fmt.Sprintf("C%d", tableRow), "Client ID")
	set(fmt.Sprintf("D%d", tableRow), "Total paid")

	for i, client := range statement.Clients {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), i+1)
		set(fmt.Sprintf("B%d", row), client.FullName)
		set(fmt.Sprintf("C%d", row), client.ID.String())
		set(fmt.Sprintf("D%d", row), formatAmount(client.TotalPaid))
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	_ = file.SetColWidth(sheet, "B", "B", 32)
	_ = file.SetColWidth(sheet, "C", "C", 40)
	_ = file.SetColWidth(sheet, "D", "D", 16)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatAmount(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
