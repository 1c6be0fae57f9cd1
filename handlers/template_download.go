package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"labelmaker/services"
)

// HandleOrderTemplateDownload downloads an empty order export template
// with the expected columns and an instructions sheet.
// Route: GET /labels/template
func HandleOrderTemplateDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateOrderTemplate()
		if err != nil {
			log.Printf("template_download: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="order_template.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}
