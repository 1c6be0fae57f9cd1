package services

import (
	"strings"
	"time"
)

// paidAtFormats is the ordered list of layouts tried against a paid_at
// value. The first layout that parses wins.
var paidAtFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"02-01-2006",
}

// ParsePaidAt parses a payment timestamp string. It returns false when
// the value is empty or matches none of the known layouts; such rows
// sort as the earliest possible timestamp (the zero time).
func ParsePaidAt(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range paidAtFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
