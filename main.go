package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"labelmaker/collections"
	"labelmaker/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and default settings on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed default settings failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Label generation ─────────────────────────────────────
		se.Router.GET("/", handlers.HandleUploadPage(app))
		se.Router.POST("/labels/upload", handlers.HandleOrderUpload(app))
		se.Router.POST("/labels/preview", handlers.HandleLabelsPreview(app))
		se.Router.POST("/labels/pdf", handlers.HandleLabelsPDF(app))
		se.Router.POST("/labels/recipients", handlers.HandleRecipientsExport(app))
		se.Router.GET("/labels/template", handlers.HandleOrderTemplateDownload(app))

		// ── History & settings ───────────────────────────────────
		se.Router.GET("/runs", handlers.HandleRunsList(app))
		se.Router.GET("/settings", handlers.HandleSettingsPage(app))
		se.Router.POST("/settings", handlers.HandleSettingsSave(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
