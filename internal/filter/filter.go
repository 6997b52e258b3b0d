// Package filter computes the visible product list from the enriched
// catalog and the current selection.
// All stage functions are pure: []EnrichedProduct in, []EnrichedProduct out.
// They never return nil and never alias their input.
package filter

import (
	"strings"
	"unicode"

	"github.com/abelbrown/catalog/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trace records how many products survived each stage.
type Trace struct {
	Input         int `json:"input"`
	AfterUser     int `json:"afterUser"`
	AfterQuery    int `json:"afterQuery"`
	AfterCategory int `json:"afterCategory"`
}

// Visible applies the user, query and category stages, in that order.
// With a default State it returns the full list in its original order.
func Visible(products []model.EnrichedProduct, st State) []model.EnrichedProduct {
	visible, _ := Explain(products, st)
	return visible
}

// Explain is Visible plus the per-stage counts.
func Explain(products []model.EnrichedProduct, st State) ([]model.EnrichedProduct, Trace) {
	tr := Trace{Input: len(products)}

	visible := ByUser(products, st.allUsers, st.userID)
	tr.AfterUser = len(visible)

	visible = ByQuery(visible, st.query)
	tr.AfterQuery = len(visible)

	visible = ByCategory(visible, st.allCategories, st.categories)
	tr.AfterCategory = len(visible)

	return visible, tr
}

// ByUser keeps products owned by userID. When allUsers is set every product
// passes. A product with no resolved owner never matches a specific user.
func ByUser(products []model.EnrichedProduct, allUsers bool, userID int) []model.EnrichedProduct {
	if allUsers {
		return clone(products)
	}

	result := make([]model.EnrichedProduct, 0, len(products))
	for _, p := range products {
		if p.User != nil && p.User.ID == userID {
			result = append(result, p)
		}
	}
	return result
}

// ByQuery keeps products whose name contains the query, ignoring case and
// surrounding white space. An empty query keeps everything.
func ByQuery(products []model.EnrichedProduct, query string) []model.EnrichedProduct {
	lower := cases.Lower(language.Und)
	needle := lower.String(trimQuery(query))

	result := make([]model.EnrichedProduct, 0, len(products))
	for _, p := range products {
		if strings.Contains(lower.String(p.Name), needle) {
			result = append(result, p)
		}
	}
	return result
}

// ByCategory keeps products whose category is selected in entries. When
// allCategories is set every product passes. With allCategories unset and
// nothing selected the result is empty.
func ByCategory(products []model.EnrichedProduct, allCategories bool, entries []model.CategoryFilter) []model.EnrichedProduct {
	if allCategories {
		return clone(products)
	}

	selected := make(map[int]bool, len(entries))
	for _, e := range entries {
		if e.Selected {
			selected[e.ID] = true
		}
	}

	result := make([]model.EnrichedProduct, 0, len(products))
	if len(selected) == 0 {
		return result
	}
	for _, p := range products {
		if p.Category != nil && selected[p.Category.ID] {
			result = append(result, p)
		}
	}
	return result
}

// trimQuery strips white space (including a byte order mark) from both ends.
func trimQuery(q string) string {
	return strings.TrimFunc(q, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

func clone(products []model.EnrichedProduct) []model.EnrichedProduct {
	result := make([]model.EnrichedProduct, len(products))
	copy(result, products)
	return result
}
