package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TemplateColumn describes one column of the order export template.
type TemplateColumn struct {
	Key          string // header name expected at import
	Description  string
	ExampleValue string
	Required     bool // must be present as a column for the import to run
}

// OrderTemplateColumns returns the ordered column set the importer
// understands. Only "product" must exist; every other column degrades to
// empty values when absent.
func OrderTemplateColumns() []TemplateColumn {
	return []TemplateColumn{
		{Key: "company", Description: "Company name, leave empty for private customers", ExampleValue: "Acme BV"},
		{Key: "firstname", Description: "First name", ExampleValue: "Jan"},
		{Key: "lastname", Description: "Last name", ExampleValue: "Jansen"},
		{Key: "street", Description: "Street name", ExampleValue: "Kerkstraat"},
		{Key: "housenumber", Description: "House number", ExampleValue: "12"},
		{Key: "housenumber_suffix", Description: "House number suffix, appended without separator", ExampleValue: "A"},
		{Key: "zipcode", Description: "Postal code", ExampleValue: "1000AA"},
		{Key: "city", Description: "City", ExampleValue: "Amsterdam"},
		{Key: "product", Description: "Product name, used for filtering", ExampleValue: "Boek: Sales, oprecht en ontspannen", Required: true},
		{Key: "paid_at", Description: "Payment date, YYYY-MM-DD or DD-MM-YYYY with optional time", ExampleValue: "2024-05-01 14:30:00"},
		{Key: "quantity", Description: "Purchased quantity, defaults to 1", ExampleValue: "2"},
		{Key: "amount_with_tax", Description: "Order amount incl. tax, statistics only", ExampleValue: "24.95"},
		{Key: "email", Description: "Customer email, not printed", ExampleValue: "jan@example.com"},
	}
}

// GenerateOrderTemplate creates a downloadable .xlsx template with the
// expected columns, one example row, and an instructions sheet.
func GenerateOrderTemplate() ([]byte, error) {
	columns := OrderTemplateColumns()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Orders"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheetName)

	requiredHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	optionalHeaderStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6B7280"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})

	letters := columnLetters(len(columns))
	for i, column := range columns {
		cell := fmt.Sprintf("%s1", letters[i])

		headerText := column.Key
		if column.Required {
			headerText += " *"
		}
		f.SetCellValue(sheetName, cell, headerText)

		if column.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredHeaderStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, optionalHeaderStyle)
		}

		width := float64(len(column.Key)) * 1.3
		if width < 14 {
			width = 14
		}
		f.SetColWidth(sheetName, letters[i], letters[i], width)

		f.SetCellValue(sheetName, fmt.Sprintf("%s2", letters[i]), column.ExampleValue)
	}

	// Freeze header row
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	// Instructions sheet
	instr := "Instructions"
	if _, err := f.NewSheet(instr); err == nil {
		boldStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
		f.SetCellValue(instr, "A1", "Column")
		f.SetCellValue(instr, "B1", "Description")
		f.SetCellValue(instr, "C1", "Example")
		f.SetCellStyle(instr, "A1", "C1", boldStyle)
		f.SetColWidth(instr, "A", "A", 22)
		f.SetColWidth(instr, "B", "B", 60)
		f.SetColWidth(instr, "C", "C", 35)

		for i, column := range columns {
			row := fmt.Sprintf("%d", i+2)
			f.SetCellValue(instr, "A"+row, column.Key)
			f.SetCellValue(instr, "B"+row, column.Description)
			f.SetCellValue(instr, "C"+row, column.ExampleValue)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write template workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// columnLetters returns the first n spreadsheet column letters (A, B, ... Z, AA, ...).
func columnLetters(n int) []string {
	letters := make([]string, n)
	for i := 0; i < n; i++ {
		name, _ := excelize.ColumnNumberToName(i + 1)
		letters[i] = name
	}
	return letters
}
