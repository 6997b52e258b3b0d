package ui

import (
	"strings"
	"testing"

	"github.com/abelbrown/catalog/internal/filter"
	"github.com/abelbrown/catalog/internal/model"
)

func TestRenderProductsEmpty(t *testing.T) {
	got := RenderProducts(nil, 0, 20, Options{NameWidth: 20})
	if !strings.Contains(got, NoResultsText) {
		t.Errorf("expected no-results message, got %q", got)
	}
}

func TestProductTableNullReferences(t *testing.T) {
	products := []model.EnrichedProduct{
		{Product: model.Product{ID: 101, Name: "Banana", CategoryID: 99}},
	}

	got := ProductTable(products, -1, Options{NameWidth: 20, ShowIcons: true})

	if !strings.Contains(got, "Banana") {
		t.Errorf("table missing product name:\n%s", got)
	}
	if !strings.Contains(got, "-") {
		t.Errorf("unresolved category/user should render as '-':\n%s", got)
	}
}

func TestProductTableColumns(t *testing.T) {
	fruits := model.Category{ID: 10, Title: "Fruits", Icon: "🍏", OwnerID: 1}
	maxUser := model.User{ID: 1, Name: "Max", Sex: model.SexMale}
	products := []model.EnrichedProduct{
		{Product: model.Product{ID: 100, Name: "Apple", CategoryID: 10}, Category: &fruits, User: &maxUser},
	}

	got := ProductTable(products, 0, Options{NameWidth: 20, ShowIcons: true})

	for _, want := range []string{"ID", "Product", "Category", "User", "100", "Apple", "🍏 - Fruits", "Max"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestRenderProductsScrollsToCursor(t *testing.T) {
	var products []model.EnrichedProduct
	for i := 1; i <= 30; i++ {
		products = append(products, model.EnrichedProduct{Product: model.Product{ID: i, Name: "Item" + strings.Repeat("x", i%3)}})
	}

	// 10 lines: 4 for the table chrome, 6 rows.
	got := RenderProducts(products, 29, 10, Options{NameWidth: 20})

	if !strings.Contains(got, "30") {
		t.Errorf("last row should be visible when cursor is on it:\n%s", got)
	}
	if strings.Contains(got, "│ 1 ") {
		t.Errorf("first row should be scrolled away:\n%s", got)
	}
}

func TestCalcScrollOffset(t *testing.T) {
	tests := []struct {
		cursor, rows, want int
	}{
		{0, 5, 0},
		{4, 5, 0},
		{5, 5, 1},
		{12, 5, 8},
	}
	for _, tt := range tests {
		if got := calcScrollOffset(tt.cursor, tt.rows); got != tt.want {
			t.Errorf("calcScrollOffset(%d, %d) = %d, want %d", tt.cursor, tt.rows, got, tt.want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	c := &model.Category{Title: "Drinks", Icon: "🍺"}
	if got := CategoryLabel(c, true); got != "🍺 - Drinks" {
		t.Errorf("got %q", got)
	}
	if got := CategoryLabel(c, false); got != "Drinks" {
		t.Errorf("got %q", got)
	}
	if got := CategoryLabel(nil, true); got != "-" {
		t.Errorf("got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Orange Juice", 8); got != "Orange …" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("Milk", 8); got != "Milk" {
		t.Errorf("got %q", got)
	}
	// Wide runes count as two cells.
	if got := Truncate("日本語の商品", 5); got != "日本…" {
		t.Errorf("got %q", got)
	}
}

func TestRenderSearchClearAffordance(t *testing.T) {
	if strings.Contains(RenderSearch("", ""), "[x]") {
		t.Error("clear button should be hidden for an empty query")
	}
	if !strings.Contains(RenderSearch("milk", "milk"), "[x]") {
		t.Error("clear button should be shown for a non-empty query")
	}
}

func TestRenderUserTabs(t *testing.T) {
	users := []model.User{{ID: 1, Name: "Roma"}, {ID: 2, Name: "Anna"}}
	st := filter.NewState(nil)
	st.SelectUser(2)

	got := RenderUserTabs(users, st, 0, false)
	for _, want := range []string{"All", "Roma", "Anna"} {
		if !strings.Contains(got, want) {
			t.Errorf("tabs missing %q: %q", want, got)
		}
	}
}

func TestRenderCategoryChips(t *testing.T) {
	entries := []model.CategoryFilter{{ID: 1, Title: "Grocery"}, {ID: 2, Title: "Drinks", Selected: true}}

	got := RenderCategoryChips(entries, false, 0, true)
	for _, want := range []string{"All", "Grocery", "Drinks"} {
		if !strings.Contains(got, want) {
			t.Errorf("chips missing %q: %q", want, got)
		}
	}
}

func TestRenderStatusBar(t *testing.T) {
	got := RenderStatusBar(1, 3, 10, 80, "q quit")
	if !strings.Contains(got, "2/3 of 10 products") {
		t.Errorf("unexpected status bar %q", got)
	}

	got = RenderStatusBar(0, 0, 10, 80, "")
	if !strings.Contains(got, "0/0 of 10 products") {
		t.Errorf("unexpected empty status bar %q", got)
	}
}
