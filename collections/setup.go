package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the label_runs and
// label_settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "label_runs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "file_name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "total_rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "matched_rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "label_count", Required: true})
		c.Fields.Add(&core.NumberField{Name: "page_count", Required: true})
		c.Fields.Add(&core.JSONField{Name: "products", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "sort_order",
			Required:  true,
			Values:    []string{"newest_first", "oldest_first"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "label_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "chars_per_line", Required: true})
		c.Fields.Add(&core.NumberField{Name: "max_lines", Required: true})
		c.Fields.Add(&core.BoolField{Name: "show_grid_lines", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
