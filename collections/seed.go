package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Default text fitting and rendering settings seeded on first startup.
const (
	defaultCharsPerLine = 40
	defaultMaxLines     = 6
)

// Seed creates the single label_settings record when none exists yet.
// Safe to call on every startup.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("label_settings")
	if err != nil {
		return fmt.Errorf("seed: could not find label_settings collection: %w", err)
	}

	existing, err := app.FindRecordsByFilter(col, "", "", 1, 0)
	if err == nil && len(existing) > 0 {
		return nil
	}

	record := core.NewRecord(col)
	record.Set("chars_per_line", defaultCharsPerLine)
	record.Set("max_lines", defaultMaxLines)
	// Sticker sheets by default: borders match the sheet background.
	record.Set("show_grid_lines", false)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed: could not save default label settings: %w", err)
	}
	return nil
}
