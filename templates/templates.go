// Package templates renders the HTML surface of the label generator.
// Components are plain html/template documents executed into the
// response writer; partials are swapped in by HTMX on the client.
package templates

import (
	"html/template"
	"io"

	"labelmaker/services"
)

// UploadData drives the initial upload page.
type UploadData struct {
	MaxUploadMB int
}

// FilterFormData drives the filter form shown after a successful upload.
// RowsJSON carries the parsed rows through to the preview/generate posts
// so the server keeps no per-upload state.
type FilterFormData struct {
	FileName string
	RowCount int
	Products []string
	MinDate  string // yyyy-mm-dd, earliest parsable paid_at
	MaxDate  string // yyyy-mm-dd, latest parsable paid_at
	RowsJSON string
}

// PreviewData drives the statistics partial.
type PreviewData struct {
	Stats        services.RunStats
	SampleLabels []string
	MoreCount    int
}

// RunRow is one line of the generation history page.
type RunRow struct {
	FileName   string
	Created    string
	LabelCount int
	PageCount  int
	SortOrder  string
	Products   string
}

// RunsData drives the history page.
type RunsData struct {
	Runs []RunRow
}

// SettingsData drives the settings page.
type SettingsData struct {
	CharsPerLine  int
	MaxLines      int
	ShowGridLines bool
	Saved         bool
}

var (
	uploadTmpl   = template.Must(template.New("upload").Parse(layoutHTML + uploadHTML))
	filterTmpl   = template.Must(template.New("filter").Parse(filterFormHTML))
	previewTmpl  = template.Must(template.New("preview").Parse(previewHTML))
	runsTmpl     = template.Must(template.New("runs").Parse(layoutHTML + runsHTML))
	settingsTmpl = template.Must(template.New("settings").Parse(layoutHTML + settingsHTML))
)

// UploadPage renders the full upload page.
func UploadPage(w io.Writer, data UploadData) error {
	return uploadTmpl.ExecuteTemplate(w, "layout", data)
}

// FilterForm renders the post-upload filter form partial.
func FilterForm(w io.Writer, data FilterFormData) error {
	return filterTmpl.Execute(w, data)
}

// PreviewResults renders the statistics partial.
func PreviewResults(w io.Writer, data PreviewData) error {
	return previewTmpl.Execute(w, data)
}

// RunsPage renders the generation history page.
func RunsPage(w io.Writer, data RunsData) error {
	return runsTmpl.ExecuteTemplate(w, "layout", data)
}

// SettingsPage renders the settings page.
func SettingsPage(w io.Writer, data SettingsData) error {
	return settingsTmpl.ExecuteTemplate(w, "layout", data)
}
