package handlers

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"labelmaker/services"
	"labelmaker/templates"
)

// recordRun stores one successful generation in the label_runs
// collection. History is informational only; a failed insert never
// blocks the download.
func recordRun(app *pocketbase.PocketBase, fileName string, stats services.RunStats, cfg services.FilterConfig) error {
	col, err := app.FindCollectionByNameOrId("label_runs")
	if err != nil {
		return err
	}

	productsJSON, err := json.Marshal(cfg.AllowedProducts)
	if err != nil {
		productsJSON = []byte("[]")
	}

	rec := core.NewRecord(col)
	if fileName == "" {
		fileName = "(unknown)"
	}
	rec.Set("file_name", fileName)
	rec.Set("total_rows", stats.TotalRows)
	rec.Set("matched_rows", stats.MatchedRows)
	rec.Set("label_count", stats.UniqueLabels)
	rec.Set("page_count", stats.PagesNeeded)
	rec.Set("products", string(productsJSON))
	rec.Set("sort_order", cfg.SortOrder)
	return app.Save(rec)
}

// HandleRunsList renders the generation history, newest first.
// Route: GET /runs
func HandleRunsList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var rows []templates.RunRow

		col, err := app.FindCollectionByNameOrId("label_runs")
		if err == nil {
			records, err := app.FindRecordsByFilter(col, "", "-created", 100, 0)
			if err != nil {
				log.Printf("runs_list: query failed: %v", err)
				records = nil
			}
			for _, rec := range records {
				var products []string
				if raw := rec.GetString("products"); raw != "" {
					if err := json.Unmarshal([]byte(raw), &products); err != nil {
						products = nil
					}
				}
				rows = append(rows, templates.RunRow{
					FileName:   rec.GetString("file_name"),
					Created:    rec.GetDateTime("created").Time().Format("2006-01-02 15:04"),
					LabelCount: rec.GetInt("label_count"),
					PageCount:  rec.GetInt("page_count"),
					SortOrder:  rec.GetString("sort_order"),
					Products:   strings.Join(products, ", "),
				})
			}
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.RunsPage(e.Response, templates.RunsData{Runs: rows})
	}
}
