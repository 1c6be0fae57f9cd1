package services

import "strings"

// FormatName builds the recipient name block for a label. A company name
// takes the first line; the personal name is added on a second line unless
// it already appears inside the company name (case-insensitive). Without a
// company the personal name stands alone.
func FormatName(row OrderRow) string {
	company := strings.TrimSpace(row.Company)
	firstname := strings.TrimSpace(row.FirstName)
	lastname := strings.TrimSpace(row.LastName)

	if company == "" {
		return strings.TrimSpace(firstname + " " + lastname)
	}

	name := company
	if firstname != "" && lastname != "" {
		personal := firstname + " " + lastname
		if !strings.Contains(strings.ToLower(company), strings.ToLower(personal)) {
			name = company + "\n" + personal
		}
	}
	return name
}

// FormatAddress builds the street line: street, house number and suffix.
// The suffix is appended directly to the number ("12" + "A" -> "12A").
func FormatAddress(row OrderRow) string {
	street := strings.TrimSpace(row.Street)
	number := strings.TrimSpace(row.HouseNumber)
	suffix := strings.TrimSpace(row.HouseNumberSuffix)

	full := number
	if suffix != "" {
		full += suffix
	}
	return strings.TrimSpace(street + " " + full)
}

// FormatPostal builds the postal line: zipcode and city.
func FormatPostal(row OrderRow) string {
	zipcode := strings.TrimSpace(row.Zipcode)
	city := strings.TrimSpace(row.City)
	return strings.TrimSpace(zipcode + " " + city)
}
