package services

import (
	"sort"
	"time"
)

// RunStats summarizes one pipeline run for the preview surface.
type RunStats struct {
	TotalRows       int
	MatchedRows     int
	UniqueLabels    int
	PagesNeeded     int
	TruncatedLabels int
	// Revenue is the amount_with_tax sum over matched rows. Informational
	// only; it plays no role in label generation.
	Revenue float64
}

// RunResult is the outcome of one full pipeline invocation: the unique
// recipient records in final order plus the run statistics. An empty
// Records slice is a valid outcome ("no labels generated"), not an error.
type RunResult struct {
	Records []LabelRecord
	Stats   RunStats
}

// GenerateLabels runs the full derivation pipeline over the raw rows:
// filter, stable sort by paid_at, deduplicate by formatted recipient.
// It is a pure function of (rows, cfg) and safe to rerun with changed
// filters.
func GenerateLabels(rows []OrderRow, cfg FilterConfig) RunResult {
	matched := FilterRows(rows, cfg)
	sorted := SortRows(matched, cfg)
	records := CollectUnique(sorted)

	revenue := 0.0
	for _, row := range matched {
		revenue += row.AmountWithTax
	}

	return RunResult{
		Records: records,
		Stats: RunStats{
			TotalRows:    len(rows),
			MatchedRows:  len(matched),
			UniqueLabels: len(records),
			PagesNeeded:  PagesNeeded(len(records)),
			Revenue:      revenue,
		},
	}
}

// DistinctProducts returns the distinct non-empty product names in the
// rows, sorted alphabetically. The upload form rebuilds its product
// checkboxes from this list on every upload, so stale selections from a
// previous file can never leak into a new run.
func DistinctProducts(rows []OrderRow) []string {
	seen := make(map[string]bool)
	var products []string
	for _, row := range rows {
		p := row.Product
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		products = append(products, p)
	}
	sort.Strings(products)
	return products
}

// PaidAtRange returns the earliest and latest parsable paid_at values in
// the rows. ok is false when no row carries a parsable date.
func PaidAtRange(rows []OrderRow) (min, max time.Time, ok bool) {
	for _, row := range rows {
		t, parsed := row.PaidAt()
		if !parsed {
			continue
		}
		if !ok {
			min, max, ok = t, t, true
			continue
		}
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	return min, max, ok
}
