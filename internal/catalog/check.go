package catalog

import (
	"fmt"

	"github.com/abelbrown/catalog/internal/fixture"
)

// ViolationKind names a broken reference between fixture sequences.
type ViolationKind string

const (
	ProductCategoryMissing ViolationKind = "product_category_missing"
	CategoryOwnerMissing   ViolationKind = "category_owner_missing"
)

// Violation is a reference that does not resolve. It is reported, never
// raised: the affected product is still listed, with a nil field.
type Violation struct {
	Kind      ViolationKind `json:"kind"`
	ID        int           `json:"id"`
	MissingID int           `json:"missingId"`
}

func (v Violation) String() string {
	switch v.Kind {
	case ProductCategoryMissing:
		return fmt.Sprintf("product %d references missing category %d", v.ID, v.MissingID)
	case CategoryOwnerMissing:
		return fmt.Sprintf("category %d references missing owner %d", v.ID, v.MissingID)
	}
	return fmt.Sprintf("%s: %d -> %d", v.Kind, v.ID, v.MissingID)
}

// Check lists every unresolved reference in set: categories first (in
// category order), then products (in product order).
func Check(set fixture.Set) []Violation {
	var out []Violation

	for _, c := range set.Categories {
		if _, ok := findUser(set.Users, c.OwnerID); !ok {
			out = append(out, Violation{Kind: CategoryOwnerMissing, ID: c.ID, MissingID: c.OwnerID})
		}
	}

	for _, p := range set.Products {
		if _, ok := findCategory(set.Categories, p.CategoryID); !ok {
			out = append(out, Violation{Kind: ProductCategoryMissing, ID: p.ID, MissingID: p.CategoryID})
		}
	}

	return out
}
