package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the quotations and rates
// collections exist.
func Setup(app core.App) error {
	_, err := ensureCollection(app, Quotations, func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "quotation_no", Required: true, OnlyInt: true})
		c.Fields.Add(&core.JSONField{Name: "customer", Required: true})
		c.Fields.Add(&core.JSONField{Name: "selected_brands", Required: true})
		c.Fields.Add(&core.JSONField{Name: "brand_adjustments"})
		c.Fields.Add(&core.JSONField{Name: "products"})
		c.Fields.Add(&core.JSONField{Name: "additional_items"})
		c.Fields.Add(&core.NumberField{Name: "revision_of", OnlyInt: true})
		c.Fields.Add(&core.DateField{Name: "created_at", Required: true})
		c.AddIndex("idx_quotations_quotation_no", true, "quotation_no", "")
		c.AddIndex("idx_quotations_created_at", false, "created_at", "")
	})
	if err != nil {
		return err
	}

	_, err = ensureCollection(app, Rates, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.NumberField{Name: "rate_19mm"})
		c.Fields.Add(&core.NumberField{Name: "rate_12mm"})
		c.Fields.Add(&core.NumberField{Name: "rate_9mm"})
		c.Fields.Add(&core.NumberField{Name: "rate_6mm"})
		c.AddIndex("idx_rates_brand", true, "brand", "")
	})
	return err
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app core.App, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	log.Printf("collections: created %q (id=%s)", name, collection.Id)
	return collection, nil
}
