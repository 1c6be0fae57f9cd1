package services

import (
	"sort"
	"strings"
	"time"
)

// Sort order values for FilterConfig.SortOrder.
const (
	SortNewestFirst = "newest_first"
	SortOldestFirst = "oldest_first"
)

// FilterConfig is the complete filter surface for one pipeline run.
// It is supplied fresh on every invocation; the pipeline keeps no state
// between runs.
type FilterConfig struct {
	// AllowedProducts is the exact-match product allow list. An empty
	// list matches nothing.
	AllowedProducts []string

	// SortOrder is SortNewestFirst or SortOldestFirst; anything else
	// falls back to SortNewestFirst.
	SortOrder string

	// StartDate/EndDate bound paid_at inclusively when non-nil. While
	// either is set, rows whose paid_at cannot be parsed are dropped.
	StartDate *time.Time
	EndDate   *time.Time

	// MinQuantity is the lowest qualifying quantity (default 1).
	// MaxQuantity caps it when > 0.
	MinQuantity int
	MaxQuantity int
}

// DefaultFilterConfig returns a config with the standard quantity floor
// and newest-first ordering. Product selection must still be supplied.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SortOrder:   SortNewestFirst,
		MinQuantity: 1,
	}
}

// hasDateWindow reports whether an explicit date range is active.
func (c FilterConfig) hasDateWindow() bool {
	return c.StartDate != nil || c.EndDate != nil
}

// allowedSet builds the product lookup set from the allow list.
func (c FilterConfig) allowedSet() map[string]bool {
	set := make(map[string]bool, len(c.AllowedProducts))
	for _, p := range c.AllowedProducts {
		set[p] = true
	}
	return set
}

// FilterRows returns the rows qualifying under cfg: product in the
// allow list, quantity within range, and paid_at inside the window when
// one is configured. Rows without a parsable date are dropped only when
// a date window is active; otherwise they are kept and sort as oldest.
func FilterRows(rows []OrderRow, cfg FilterConfig) []OrderRow {
	allowed := cfg.allowedSet()
	minQty := cfg.MinQuantity
	if minQty < 1 {
		minQty = 1
	}

	var out []OrderRow
	for _, row := range rows {
		product := strings.TrimSpace(row.Product)
		if product == "" || !allowed[product] {
			continue
		}
		if row.Quantity <= 0 || row.Quantity < minQty {
			continue
		}
		if cfg.MaxQuantity > 0 && row.Quantity > cfg.MaxQuantity {
			continue
		}
		if cfg.hasDateWindow() {
			paidAt, ok := row.PaidAt()
			if !ok {
				continue
			}
			if cfg.StartDate != nil && paidAt.Before(*cfg.StartDate) {
				continue
			}
			if cfg.EndDate != nil && paidAt.After(*cfg.EndDate) {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}

// SortRows orders rows by parsed paid_at according to cfg.SortOrder.
// The sort is stable: rows with equal timestamps keep their original
// relative order, and rows without a date carry the zero time.
func SortRows(rows []OrderRow, cfg FilterConfig) []OrderRow {
	sorted := make([]OrderRow, len(rows))
	copy(sorted, rows)

	newestFirst := cfg.SortOrder != SortOldestFirst
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := sorted[i].PaidAt()
		tj, _ := sorted[j].PaidAt()
		if newestFirst {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
	return sorted
}
