package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"labelmaker/services"
	"labelmaker/templates"
)

// maxUploadMB caps the accepted order export size.
const maxUploadMB = 10

// HandleUploadPage renders the upload page.
// Route: GET /
func HandleUploadPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.UploadPage(e.Response, templates.UploadData{MaxUploadMB: maxUploadMB})
	}
}

// HandleOrderUpload receives an order export upload, parses it, and
// returns the filter form partial. The parsed rows travel back to the
// client as JSON in a hidden field, so follow-up requests carry the
// complete input and the server keeps no per-upload state.
// Route: POST /labels/upload
func HandleOrderUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(maxUploadMB << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		rows, err := services.ParseOrderFile(file, header.Filename)
		if err != nil {
			log.Printf("order_upload: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		rowsJSON, err := json.Marshal(rows)
		if err != nil {
			log.Printf("order_upload: marshal rows: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := templates.FilterFormData{
			FileName: header.Filename,
			RowCount: len(rows),
			Products: services.DistinctProducts(rows),
			RowsJSON: string(rowsJSON),
		}
		if min, max, ok := services.PaidAtRange(rows); ok {
			data.MinDate = min.Format("2006-01-02")
			data.MaxDate = max.Format("2006-01-02")
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.FilterForm(e.Response, data)
	}
}

// HandleLabelsPreview runs the pipeline and returns the statistics
// partial with the first few labels.
// Route: POST /labels/preview
func HandleLabelsPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, cfg, _, err := parseLabelForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		settings := LoadLabelSettings(app)
		result := services.GenerateLabels(rows, cfg)
		texts := services.LabelTexts(result.Records)
		_, truncated := services.BuildPages(texts, settings.CharsPerLine, settings.MaxLines)
		result.Stats.TruncatedLabels = truncated

		const sampleSize = 5
		samples := texts
		if len(samples) > sampleSize {
			samples = samples[:sampleSize]
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.PreviewResults(e.Response, templates.PreviewData{
			Stats:        result.Stats,
			SampleLabels: samples,
			MoreCount:    len(texts) - len(samples),
		})
	}
}

// HandleLabelsPDF runs the pipeline and streams the generated label
// sheet. An empty result is not an error: the user is sent back with a
// warning toast and no document is produced.
// Route: POST /labels/pdf
func HandleLabelsPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, cfg, fileName, err := parseLabelForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		result := services.GenerateLabels(rows, cfg)
		if len(result.Records) == 0 {
			SetToast(e, "warning", "No labels generated: no rows match the current filters")
			return e.Redirect(http.StatusFound, "/")
		}

		settings := LoadLabelSettings(app)
		texts := services.LabelTexts(result.Records)
		pages, _ := services.BuildPages(texts, settings.CharsPerLine, settings.MaxLines)

		pdfBytes, err := services.GenerateLabelPDF(pages, services.RenderOptions{
			ShowGridLines: settings.ShowGridLines,
		})
		if err != nil {
			log.Printf("labels_pdf: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate the label sheet. Please try again.")
		}

		if err := recordRun(app, fileName, result.Stats, cfg); err != nil {
			log.Printf("labels_pdf: record run: %v", err)
		}

		downloadName := fmt.Sprintf("verzendlabels_%s.pdf", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, downloadName))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleRecipientsExport downloads the deduplicated recipient list as
// an Excel file.
// Route: POST /labels/recipients
func HandleRecipientsExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rows, cfg, _, err := parseLabelForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		result := services.GenerateLabels(rows, cfg)
		if len(result.Records) == 0 {
			SetToast(e, "warning", "No recipients found: no rows match the current filters")
			return e.Redirect(http.StatusFound, "/")
		}

		xlsxBytes, err := services.GenerateRecipientsExcel(result.Records)
		if err != nil {
			log.Printf("recipients_export: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate the recipient list. Please try again.")
		}

		downloadName := fmt.Sprintf("recipients_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, downloadName))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// parseLabelForm reads the posted rows and filter fields shared by the
// preview, PDF and recipient export handlers.
func parseLabelForm(e *core.RequestEvent) ([]services.OrderRow, services.FilterConfig, string, error) {
	if err := e.Request.ParseForm(); err != nil {
		return nil, services.FilterConfig{}, "", fmt.Errorf("invalid form data")
	}

	rowsJSON := e.Request.FormValue("rows_json")
	if rowsJSON == "" {
		return nil, services.FilterConfig{}, "", fmt.Errorf("file data missing, please re-upload and try again")
	}
	var rows []services.OrderRow
	if err := json.Unmarshal([]byte(rowsJSON), &rows); err != nil {
		return nil, services.FilterConfig{}, "", fmt.Errorf("invalid file data, please re-upload and try again")
	}

	cfg := services.DefaultFilterConfig()
	cfg.AllowedProducts = e.Request.Form["products"]
	if order := e.Request.FormValue("sort_order"); order == services.SortOldestFirst {
		cfg.SortOrder = services.SortOldestFirst
	}

	if v := e.Request.FormValue("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, services.FilterConfig{}, "", fmt.Errorf("invalid start date %q", v)
		}
		cfg.StartDate = &t
	}
	if v := e.Request.FormValue("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, services.FilterConfig{}, "", fmt.Errorf("invalid end date %q", v)
		}
		// Inclusive: the whole end day qualifies.
		endOfDay := t.Add(24*time.Hour - time.Second)
		cfg.EndDate = &endOfDay
	}

	if v := e.Request.FormValue("min_quantity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinQuantity = n
		}
	}
	if v := e.Request.FormValue("max_quantity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxQuantity = n
		}
	}

	return rows, cfg, e.Request.FormValue("file_name"), nil
}
