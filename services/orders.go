package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// OrderRow is one normalized record from an uploaded order export.
// String fields hold "" for missing, blank or NaN-like source values;
// Quantity defaults to 1 when the source value is absent or unparsable.
type OrderRow struct {
	Company           string  `json:"company"`
	FirstName         string  `json:"firstname"`
	LastName          string  `json:"lastname"`
	Street            string  `json:"street"`
	HouseNumber       string  `json:"housenumber"`
	HouseNumberSuffix string  `json:"housenumber_suffix"`
	Zipcode           string  `json:"zipcode"`
	City              string  `json:"city"`
	Product           string  `json:"product"`
	PaidAtRaw         string  `json:"paid_at"`
	Quantity          int     `json:"quantity"`
	AmountWithTax     float64 `json:"amount_with_tax"`
	Email             string  `json:"email"`
}

// PaidAt returns the parsed payment timestamp. The second return value
// is false when the raw value is empty or matches none of the known formats.
func (r OrderRow) PaidAt() (time.Time, bool) {
	return ParsePaidAt(r.PaidAtRaw)
}

// orderColumns maps recognized header names to setters on OrderRow.
// Headers are matched case-insensitively after trimming; unknown columns
// are ignored so exports with extra bookkeeping columns still load.
var orderColumns = map[string]func(*OrderRow, string){
	"company":            func(r *OrderRow, v string) { r.Company = v },
	"firstname":          func(r *OrderRow, v string) { r.FirstName = v },
	"lastname":           func(r *OrderRow, v string) { r.LastName = v },
	"street":             func(r *OrderRow, v string) { r.Street = v },
	"housenumber":        func(r *OrderRow, v string) { r.HouseNumber = normalizeHouseNumber(v) },
	"housenumber_suffix": func(r *OrderRow, v string) { r.HouseNumberSuffix = v },
	"zipcode":            func(r *OrderRow, v string) { r.Zipcode = v },
	"city":               func(r *OrderRow, v string) { r.City = v },
	"product":            func(r *OrderRow, v string) { r.Product = v },
	"paid_at":            func(r *OrderRow, v string) { r.PaidAtRaw = v },
	"quantity":           func(r *OrderRow, v string) { r.Quantity = parseQuantity(v) },
	"amount_with_tax":    func(r *OrderRow, v string) { r.AmountWithTax = parseAmount(v) },
	"email":              func(r *OrderRow, v string) { r.Email = v },
}

// ParseOrderFile reads an uploaded .csv or .xlsx order export and returns
// the normalized rows. The file must contain a header row with at least
// a "product" column; all other columns are optional.
func ParseOrderFile(file multipart.File, fileName string) ([]OrderRow, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseOrderCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseOrderExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	return buildOrderRows(headers, dataRows)
}

// parseOrderCSV reads a CSV file and returns headers + data rows.
func parseOrderCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseOrderExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseOrderExcel(file multipart.File) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// buildOrderRows maps the header-driven columns onto OrderRow values.
func buildOrderRows(headers []string, dataRows [][]string) ([]OrderRow, error) {
	setters := make([]func(*OrderRow, string), len(headers))
	hasProduct := false
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		// The downloadable template marks required columns with a trailing "*".
		norm = strings.TrimSpace(strings.TrimSuffix(norm, "*"))
		if set, ok := orderColumns[norm]; ok {
			setters[i] = set
		}
		if norm == "product" {
			hasProduct = true
		}
	}
	if !hasProduct {
		return nil, fmt.Errorf("required column %q not found in header row", "product")
	}

	rows := make([]OrderRow, 0, len(dataRows))
	for _, raw := range dataRows {
		row := OrderRow{Quantity: 1}
		for colIdx, set := range setters {
			if set == nil {
				continue
			}
			value := ""
			if colIdx < len(raw) {
				value = cleanCell(raw[colIdx])
			}
			set(&row, value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cleanCell trims a cell value and collapses NaN-like sentinels
// (some exports render empty cells as "nan" or "None") to "".
func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "nan", "none", "null":
		return ""
	}
	return v
}

// normalizeHouseNumber strips the trailing ".0" artifact that numeric
// spreadsheet columns produce ("12.0" -> "12"). Non-numeric values
// ("12a", "12-14") pass through unchanged.
func normalizeHouseNumber(v string) string {
	if v == "" {
		return ""
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return v
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return v
}

// parseQuantity converts a raw quantity cell to an int, defaulting to 1
// when the value is missing or unparsable. Zero and negative values are
// kept as-is; the row filter rejects them later.
func parseQuantity(v string) int {
	if v == "" {
		return 1
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	// Numeric exports sometimes render integers as "2.0".
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == float64(int64(f)) {
		return int(f)
	}
	return 1
}

// parseAmount converts a raw amount cell to a float64, defaulting to 0.
func parseAmount(v string) float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil {
		return 0
	}
	return f
}
