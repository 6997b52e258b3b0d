// Package catalog joins the fixture sequences into enriched products.
package catalog

import "github.com/abelbrown/catalog/internal/model"

// Enrich attaches each product's category and the category's owner.
// A product whose category does not resolve gets a nil Category and a nil
// User; a category whose owner does not resolve yields a nil User.
// The result preserves product order and shares no memory with the inputs.
func Enrich(products []model.Product, categories []model.Category, users []model.User) []model.EnrichedProduct {
	result := make([]model.EnrichedProduct, 0, len(products))

	for _, p := range products {
		ep := model.EnrichedProduct{Product: p}

		if c, ok := findCategory(categories, p.CategoryID); ok {
			ep.Category = &c
			if u, ok := findUser(users, c.OwnerID); ok {
				ep.User = &u
			}
		}

		result = append(result, ep)
	}

	return result
}

// findCategory returns the first category with the given id.
func findCategory(categories []model.Category, id int) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// findUser returns the first user with the given id.
func findUser(users []model.User, id int) (model.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}
