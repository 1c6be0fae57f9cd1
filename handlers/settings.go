package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"labelmaker/services"
	"labelmaker/templates"
)

// LabelSettings holds the deployment-level rendering options stored in
// the label_settings collection.
type LabelSettings struct {
	CharsPerLine  int
	MaxLines      int
	ShowGridLines bool
}

// LoadLabelSettings reads the settings record, falling back to the
// defaults when the record is missing or unreadable.
func LoadLabelSettings(app *pocketbase.PocketBase) LabelSettings {
	settings := LabelSettings{
		CharsPerLine: services.DefaultCharsPerLine,
		MaxLines:     services.DefaultMaxLines,
	}

	col, err := app.FindCollectionByNameOrId("label_settings")
	if err != nil {
		return settings
	}
	records, err := app.FindRecordsByFilter(col, "", "", 1, 0)
	if err != nil || len(records) == 0 {
		return settings
	}

	rec := records[0]
	if v := rec.GetInt("chars_per_line"); v > 0 {
		settings.CharsPerLine = v
	}
	if v := rec.GetInt("max_lines"); v > 0 {
		if v > services.MaxLinesPerCell {
			v = services.MaxLinesPerCell
		}
		settings.MaxLines = v
	}
	settings.ShowGridLines = rec.GetBool("show_grid_lines")
	return settings
}

// HandleSettingsPage renders the settings form.
// Route: GET /settings
func HandleSettingsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		settings := LoadLabelSettings(app)
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.SettingsPage(e.Response, templates.SettingsData{
			CharsPerLine:  settings.CharsPerLine,
			MaxLines:      settings.MaxLines,
			ShowGridLines: settings.ShowGridLines,
			Saved:         e.Request.URL.Query().Get("saved") == "1",
		})
	}
}

// HandleSettingsSave updates the settings record.
// Route: POST /settings
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		col, err := app.FindCollectionByNameOrId("label_settings")
		if err != nil {
			log.Printf("settings_save: collection not found: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var rec *core.Record
		records, err := app.FindRecordsByFilter(col, "", "", 1, 0)
		if err == nil && len(records) > 0 {
			rec = records[0]
		} else {
			rec = core.NewRecord(col)
		}

		if n, err := strconv.Atoi(e.Request.FormValue("chars_per_line")); err == nil && n > 0 {
			rec.Set("chars_per_line", n)
		}
		if n, err := strconv.Atoi(e.Request.FormValue("max_lines")); err == nil && n > 0 {
			if n > services.MaxLinesPerCell {
				n = services.MaxLinesPerCell
			}
			rec.Set("max_lines", n)
		}
		rec.Set("show_grid_lines", e.Request.FormValue("show_grid_lines") == "true")

		if err := app.Save(rec); err != nil {
			log.Printf("settings_save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save settings. Please try again.")
		}

		return e.Redirect(http.StatusFound, "/settings?saved=1")
	}
}
