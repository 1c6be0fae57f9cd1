package services

// LabelRecord is one unique recipient, created from the first qualifying
// row encountered in sort order. Later rows with the same key are skipped
// entirely, even when they carry more complete data.
type LabelRecord struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Postal  string `json:"postal"`
}

// Text joins the record into the three-line label block:
// name, street line, postal line.
func (r LabelRecord) Text() string {
	return r.Name + "\n" + r.Address + "\n" + r.Postal
}

// key is the dedup identity: the formatted triple, exact string equality.
func (r LabelRecord) key() string {
	return r.Name + "|" + r.Address + "|" + r.Postal
}

// CollectUnique consumes rows already filtered and sorted, and returns
// one LabelRecord per distinct (name, address, postal) triple, in first
// encounter order. Because the input order follows the configured sort,
// "first occurrence wins" means the newest row under newest_first and
// the oldest under oldest_first.
func CollectUnique(rows []OrderRow) []LabelRecord {
	seen := make(map[string]bool, len(rows))
	var records []LabelRecord

	for _, row := range rows {
		rec := LabelRecord{
			Name:    FormatName(row),
			Address: FormatAddress(row),
			Postal:  FormatPostal(row),
		}
		k := rec.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		records = append(records, rec)
	}
	return records
}

// LabelTexts renders the record sequence to label text blocks,
// preserving order.
func LabelTexts(records []LabelRecord) []string {
	texts := make([]string, len(records))
	for i, rec := range records {
		texts[i] = rec.Text()
	}
	return texts
}
