package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// memFile adapts a bytes.Reader to multipart.File for tests.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(data []byte) memFile {
	return memFile{bytes.NewReader(data)}
}

const ordersCSV = `company,firstname,lastname,street,housenumber,housenumber_suffix,zipcode,city,product,paid_at,quantity,amount_with_tax,email
Acme BV,Jan,Jansen,Kerkstraat,12.0,A,1000AA,Amsterdam,Boek: Sales,2024-05-01,2,49.90,jan@example.com
,Piet,Peters,Dorpsweg,3,,2000BB,Rotterdam,Boek: Sales,2024-05-02,abc,24.95,
nan,Kees,Klaassen,Laan,7,nan,3000CC,Den Haag,Workshop,,,
`

func TestParseOrderFile_CSV(t *testing.T) {
	rows, err := ParseOrderFile(newMemFile([]byte(ordersCSV)), "orders.csv")
	if err != nil {
		t.Fatalf("ParseOrderFile() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Company != "Acme BV" || first.FirstName != "Jan" || first.LastName != "Jansen" {
		t.Errorf("unexpected name fields: %+v", first)
	}
	if first.HouseNumber != "12" {
		t.Errorf("housenumber 12.0 must normalize to 12, got %q", first.HouseNumber)
	}
	if first.HouseNumberSuffix != "A" {
		t.Errorf("unexpected suffix %q", first.HouseNumberSuffix)
	}
	if first.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", first.Quantity)
	}
	if first.AmountWithTax != 49.90 {
		t.Errorf("expected amount 49.90, got %v", first.AmountWithTax)
	}

	second := rows[1]
	if second.Quantity != 1 {
		t.Errorf("unparsable quantity must default to 1, got %d", second.Quantity)
	}
	if second.Company != "" {
		t.Errorf("empty company must stay empty, got %q", second.Company)
	}

	third := rows[2]
	if third.Company != "" || third.HouseNumberSuffix != "" {
		t.Errorf("nan sentinels must become empty, got %q / %q", third.Company, third.HouseNumberSuffix)
	}
	if third.Quantity != 1 {
		t.Errorf("missing quantity must default to 1, got %d", third.Quantity)
	}
}

func TestParseOrderFile_HeaderCaseInsensitive(t *testing.T) {
	csvData := "Product, City \nBoek,Amsterdam\n"
	rows, err := ParseOrderFile(newMemFile([]byte(csvData)), "orders.csv")
	if err != nil {
		t.Fatalf("ParseOrderFile() error = %v", err)
	}
	if rows[0].Product != "Boek" || rows[0].City != "Amsterdam" {
		t.Errorf("header matching must ignore case and spacing: %+v", rows[0])
	}
}

func TestParseOrderFile_MissingProductColumn(t *testing.T) {
	csvData := "firstname,lastname\nJan,Jansen\n"
	_, err := ParseOrderFile(newMemFile([]byte(csvData)), "orders.csv")
	if err == nil {
		t.Fatal("expected an error for a missing product column")
	}
	if !strings.Contains(err.Error(), "product") {
		t.Errorf("error should name the missing column, got %q", err.Error())
	}
}

func TestParseOrderFile_UnknownColumnsIgnored(t *testing.T) {
	csvData := "product,internal_note\nBoek,do not ship before friday\n"
	rows, err := ParseOrderFile(newMemFile([]byte(csvData)), "orders.csv")
	if err != nil {
		t.Fatalf("ParseOrderFile() error = %v", err)
	}
	if rows[0].Product != "Boek" {
		t.Errorf("unexpected product %q", rows[0].Product)
	}
}

func TestParseOrderFile_HeaderOnly(t *testing.T) {
	if _, err := ParseOrderFile(newMemFile([]byte("product\n")), "orders.csv"); err == nil {
		t.Fatal("expected an error for a file without data rows")
	}
}

func TestParseOrderFile_UnsupportedExtension(t *testing.T) {
	if _, err := ParseOrderFile(newMemFile([]byte("x")), "orders.txt"); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}

func TestParseOrderFile_Excel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetSheetRow(sheet, "A1", &[]any{"product", "firstname", "lastname", "quantity"})
	f.SetSheetRow(sheet, "A2", &[]any{"Boek", "Jan", "Jansen", 2})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	f.Close()

	rows, err := ParseOrderFile(newMemFile(buf.Bytes()), "orders.xlsx")
	if err != nil {
		t.Fatalf("ParseOrderFile() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Product != "Boek" || rows[0].Quantity != 2 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestNormalizeHouseNumber(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"12", "12"},
		{"12.0", "12"},
		{"12.5", "12.5"},
		{"12a", "12a"},
		{"12-14", "12-14"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeHouseNumber(tt.input); got != tt.expect {
			t.Errorf("normalizeHouseNumber(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		input  string
		expect int
	}{
		{"", 1},
		{"3", 3},
		{"2.0", 2},
		{"abc", 1},
		{"0", 0},
		{"-1", -1},
	}

	for _, tt := range tests {
		if got := parseQuantity(tt.input); got != tt.expect {
			t.Errorf("parseQuantity(%q) = %d, want %d", tt.input, got, tt.expect)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input  string
		expect float64
	}{
		{"", 0},
		{"24.95", 24.95},
		{"24,95", 24.95},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := parseAmount(tt.input); got != tt.expect {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.input, got, tt.expect)
		}
	}
}
