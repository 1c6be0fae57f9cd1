package services

import "testing"

func TestCollectUnique_Deduplicates(t *testing.T) {
	rows := []OrderRow{
		{FirstName: "Jan", LastName: "Jansen", Street: "Kerkstraat", HouseNumber: "12", Zipcode: "1000AA", City: "Amsterdam"},
		{FirstName: "Jan", LastName: "Jansen", Street: "Kerkstraat", HouseNumber: "12", Zipcode: "1000AA", City: "Amsterdam"},
		{FirstName: "Piet", LastName: "Peters", Street: "Dorpsweg", HouseNumber: "3", Zipcode: "2000BB", City: "Rotterdam"},
	}

	records := CollectUnique(rows)
	if len(records) != 2 {
		t.Fatalf("expected 2 unique records, got %d", len(records))
	}

	seen := make(map[string]bool)
	for _, rec := range records {
		k := rec.Name + "|" + rec.Address + "|" + rec.Postal
		if seen[k] {
			t.Errorf("duplicate key in output: %q", k)
		}
		seen[k] = true
	}
}

func TestCollectUnique_FirstOccurrenceWins(t *testing.T) {
	// Same recipient twice with different email fields; only the first
	// row's formatting is kept, the later one is skipped entirely.
	rows := []OrderRow{
		{FirstName: "Jan", LastName: "Jansen", Street: "Kerkstraat", HouseNumber: "12", Zipcode: "1000AA", City: "Amsterdam", PaidAtRaw: "2024-05-02"},
		{FirstName: "Jan", LastName: "Jansen", Street: "Kerkstraat", HouseNumber: "12", Zipcode: "1000AA", City: "Amsterdam", PaidAtRaw: "2024-05-01", Company: ""},
	}

	records := CollectUnique(rows)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestCollectUnique_SortOrderReversesOutput(t *testing.T) {
	rows := []OrderRow{
		{Company: "Acme BV", City: "Amsterdam", PaidAtRaw: "2024-05-01"},
		{Company: "Beta BV", City: "Rotterdam", PaidAtRaw: "2024-05-02"},
	}

	cfg := DefaultFilterConfig() // newest_first
	newest := CollectUnique(SortRows(rows, cfg))

	cfg.SortOrder = SortOldestFirst
	oldest := CollectUnique(SortRows(rows, cfg))

	if len(newest) != 2 || len(oldest) != 2 {
		t.Fatalf("expected 2 records each, got %d and %d", len(newest), len(oldest))
	}
	if newest[0] != oldest[1] || newest[1] != oldest[0] {
		t.Errorf("oldest_first output must be the reverse of newest_first: %+v vs %+v", newest, oldest)
	}
}

func TestCollectUnique_DuplicateKeyDedupsUnderEitherSort(t *testing.T) {
	// The same recipient paid twice on different dates. Whichever sort
	// order runs, exactly one record survives: the first one the
	// collector encounters in that order.
	rows := []OrderRow{
		{Company: "Acme BV", Street: "Kerkstraat", HouseNumber: "12", Zipcode: "1000AA", City: "Amsterdam", PaidAtRaw: "2024-05-01"},
		{Company: "Acme BV", Street: "Kerkstraat", HouseNumber: "12", Zipcode: "1000AA", City: "Amsterdam", PaidAtRaw: "2024-05-02"},
	}

	for _, order := range []string{SortNewestFirst, SortOldestFirst} {
		cfg := DefaultFilterConfig()
		cfg.SortOrder = order
		records := CollectUnique(SortRows(rows, cfg))
		if len(records) != 1 {
			t.Errorf("%s: expected 1 record, got %d", order, len(records))
		}
	}
}

func TestCollectUnique_OutputOrderFollowsInput(t *testing.T) {
	rows := []OrderRow{
		{City: "Amsterdam", FirstName: "A", LastName: "A"},
		{City: "Rotterdam", FirstName: "B", LastName: "B"},
		{City: "Utrecht", FirstName: "C", LastName: "C"},
	}

	records := CollectUnique(rows)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	wantPostal := []string{"Amsterdam", "Rotterdam", "Utrecht"}
	for i, postal := range wantPostal {
		if records[i].Postal != postal {
			t.Errorf("position %d: got %q, want %q", i, records[i].Postal, postal)
		}
	}
}

func TestCollectUnique_CountNeverExceedsInput(t *testing.T) {
	rows := []OrderRow{
		{City: "A"}, {City: "A"}, {City: "B"}, {City: "B"}, {City: "C"},
	}
	records := CollectUnique(rows)
	if len(records) > len(rows) {
		t.Errorf("output %d exceeds input %d", len(records), len(rows))
	}
	if len(records) != 3 {
		t.Errorf("expected 3 unique records, got %d", len(records))
	}
}

func TestLabelTexts_Order(t *testing.T) {
	records := []LabelRecord{
		{Name: "A", Address: "Street 1", Postal: "1000AA X"},
		{Name: "B", Address: "Street 2", Postal: "2000BB Y"},
	}

	texts := LabelTexts(records)
	if len(texts) != 2 {
		t.Fatalf("expected 2 texts, got %d", len(texts))
	}
	if texts[0] != "A\nStreet 1\n1000AA X" {
		t.Errorf("unexpected first text: %q", texts[0])
	}
	if texts[1] != "B\nStreet 2\n2000BB Y" {
		t.Errorf("unexpected second text: %q", texts[1])
	}
}
