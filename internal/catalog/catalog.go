package catalog

import (
	"github.com/abelbrown/catalog/internal/fixture"
	"github.com/abelbrown/catalog/internal/logging"
	"github.com/abelbrown/catalog/internal/model"
)

// Catalog is the loaded, joined data set. Built once; read-only afterwards.
type Catalog struct {
	Users      []model.User
	Categories []model.Category
	Products   []model.EnrichedProduct
}

// New runs the join over set and logs unresolved references.
func New(set fixture.Set) *Catalog {
	for _, v := range Check(set) {
		logging.Warn("Unresolved reference", "kind", v.Kind, "id", v.ID, "missing", v.MissingID)
	}

	c := &Catalog{
		Users:      append([]model.User(nil), set.Users...),
		Categories: append([]model.Category(nil), set.Categories...),
		Products:   Enrich(set.Products, set.Categories, set.Users),
	}

	logging.Info("Catalog loaded",
		"users", len(c.Users),
		"categories", len(c.Categories),
		"products", len(c.Products))
	return c
}

// User returns the user with the given id.
func (c *Catalog) User(id int) (model.User, bool) {
	return findUser(c.Users, id)
}

// Category returns the category with the given id.
func (c *Catalog) Category(id int) (model.Category, bool) {
	return findCategory(c.Categories, id)
}
