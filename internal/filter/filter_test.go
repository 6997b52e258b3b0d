package filter

import (
	"testing"

	"github.com/abelbrown/catalog/internal/catalog"
	"github.com/abelbrown/catalog/internal/model"
	"github.com/google/go-cmp/cmp"
)

var (
	testUsers = []model.User{
		{ID: 1, Name: "Roma", Sex: model.SexMale},
		{ID: 2, Name: "Anna", Sex: model.SexFemale},
		{ID: 3, Name: "Max", Sex: model.SexMale},
	}
	testCategories = []model.Category{
		{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
		{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
		{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
		{ID: 4, Title: "Clothes", Icon: "👚", OwnerID: 3},
		{ID: 5, Title: "Orphans", Icon: "?", OwnerID: 42},
	}
	testProducts = []model.Product{
		{ID: 1, Name: "Milk", CategoryID: 1},
		{ID: 2, Name: "Bread", CategoryID: 1},
		{ID: 3, Name: "Beer", CategoryID: 2},
		{ID: 4, Name: "Apple", CategoryID: 3},
		{ID: 5, Name: "Jacket", CategoryID: 4},
		{ID: 6, Name: "Foo Fighters Tee", CategoryID: 4},
		{ID: 7, Name: "FOOD Box", CategoryID: 99},
		{ID: 8, Name: "Lost Sock", CategoryID: 5},
	}
)

func enriched() []model.EnrichedProduct {
	return catalog.Enrich(testProducts, testCategories, testUsers)
}

func ids(products []model.EnrichedProduct) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestVisibleDefaultState(t *testing.T) {
	products := enriched()
	st := NewState(testCategories)

	got := Visible(products, st)

	if diff := cmp.Diff(products, got); diff != "" {
		t.Errorf("default state should pass everything through (-want +got):\n%s", diff)
	}
}

func TestVisibleIdempotent(t *testing.T) {
	products := enriched()
	st := NewState(testCategories)
	st.SelectUser(2)
	st.SetQuery("e")
	st.ToggleCategory(1)

	first := Visible(products, st)
	second := Visible(products, st)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Visible not idempotent (-first +second):\n%s", diff)
	}
}

func TestVisibleDoesNotAliasInput(t *testing.T) {
	products := enriched()
	got := Visible(products, NewState(testCategories))

	got[0].Name = "Changed"
	if products[0].Name != "Milk" {
		t.Error("Visible result shares backing array with input")
	}
}

func TestUserFilter(t *testing.T) {
	products := enriched()

	for _, u := range testUsers {
		st := NewState(testCategories)
		st.SelectUser(u.ID)

		got := Visible(products, st)

		var want []int
		for _, p := range products {
			if p.User != nil && p.User.ID == u.ID {
				want = append(want, p.ID)
			}
		}
		if diff := cmp.Diff(want, ids(got), cmpEmpty); diff != "" {
			t.Errorf("user %d (-want +got):\n%s", u.ID, diff)
		}
	}
}

func TestUserFilterExcludesUnresolvedOwner(t *testing.T) {
	st := NewState(testCategories)
	st.SelectUser(42)

	if got := Visible(enriched(), st); len(got) != 0 {
		t.Errorf("dangling owner id must not match, got %v", ids(got))
	}
}

func TestSelectAllUsersKeepsUserID(t *testing.T) {
	st := NewState(testCategories)
	st.SelectUser(3)
	st.SelectAllUsers()

	if !st.AllUsers() {
		t.Error("expected all users selected")
	}
	if st.UserID() != 3 {
		t.Errorf("user id should be left untouched, got %d", st.UserID())
	}
	if st.UserActive(3) {
		t.Error("no user tab is active in all-users mode")
	}
	if got := Visible(enriched(), st); len(got) != len(testProducts) {
		t.Errorf("expected all products, got %d", len(got))
	}
}

func TestQueryFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []int
	}{
		{"", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{" Foo ", []int{6, 7}},
		{"FOO", []int{6, 7}},
		{"e", []int{2, 3, 4, 5, 6}},
		{"\t  ", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"milk bread", []int{}},
		{"zzz", []int{}},
	}

	for _, tt := range tests {
		st := NewState(testCategories)
		st.SetQuery(tt.query)

		got := ids(Visible(enriched(), st))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("query %q (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestSetQueryStoresVerbatim(t *testing.T) {
	st := NewState(testCategories)
	st.SetQuery("  Apple ")
	if st.Query() != "  Apple " {
		t.Errorf("query should be stored untrimmed, got %q", st.Query())
	}

	st.ClearQuery()
	if st.Query() != "" {
		t.Errorf("ClearQuery should empty the query, got %q", st.Query())
	}
}

func TestQueryMatchesUnresolvedProducts(t *testing.T) {
	st := NewState(testCategories)
	st.SetQuery("food")

	got := Visible(enriched(), st)
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("expected product 7, got %v", ids(got))
	}
	if got[0].Category != nil || got[0].User != nil {
		t.Error("product 7 should have no category and no user")
	}
}

func TestQueryUnicodeCase(t *testing.T) {
	products := catalog.Enrich([]model.Product{
		{ID: 1, Name: "ÄPFEL", CategoryID: 1},
		{ID: 2, Name: "Crème Brûlée", CategoryID: 1},
	}, testCategories, testUsers)

	st := NewState(testCategories)
	st.SetQuery("äpf")
	if got := ids(Visible(products, st)); !cmp.Equal(got, []int{1}) {
		t.Errorf("expected [1], got %v", got)
	}

	st.SetQuery("BRÛLÉE")
	if got := ids(Visible(products, st)); !cmp.Equal(got, []int{2}) {
		t.Errorf("expected [2], got %v", got)
	}
}

func TestCategoryFilter(t *testing.T) {
	st := NewState(testCategories)
	st.SelectAllCategories()
	st.ToggleCategory(1)
	st.ToggleCategory(3)

	got := ids(Visible(enriched(), st))
	want := []int{1, 2, 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{1, 3}, st.SelectedCategoryIDs()); diff != "" {
		t.Errorf("selected ids (-want +got):\n%s", diff)
	}
}

func TestToggleCategoryTwiceDeselects(t *testing.T) {
	st := NewState(testCategories)
	st.ToggleCategory(2)
	st.ToggleCategory(2)

	if st.AllCategories() {
		t.Error("toggling must leave all-categories mode")
	}
	if got := Visible(enriched(), st); len(got) != 0 {
		t.Errorf("nothing selected outside all mode should show nothing, got %v", ids(got))
	}
}

func TestToggleUnknownCategory(t *testing.T) {
	st := NewState(testCategories)
	before := st.Categories()

	st.ToggleCategory(999)

	if st.AllCategories() {
		t.Error("expected all-categories mode to be switched off")
	}
	if diff := cmp.Diff(before, st.Categories()); diff != "" {
		t.Errorf("entries changed for unknown id (-before +after):\n%s", diff)
	}
}

func TestForcedEmptyCategorySelection(t *testing.T) {
	st := NewState(testCategories)
	st.allCategories = false

	got := Visible(enriched(), st)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no products, got %v", ids(got))
	}
}

func TestCategoryFilterExcludesUnresolvedCategory(t *testing.T) {
	st := NewState(testCategories)
	st.ToggleCategory(99)

	if got := Visible(enriched(), st); len(got) != 0 {
		t.Errorf("product without category must not match, got %v", ids(got))
	}
}

func TestSelectAllCategoriesClearsEntries(t *testing.T) {
	st := NewState(testCategories)
	st.ToggleCategory(1)
	st.ToggleCategory(4)
	st.SelectAllCategories()

	if !st.AllCategories() {
		t.Error("expected all-categories mode")
	}
	for _, e := range st.Categories() {
		if e.Selected {
			t.Errorf("entry %d still selected", e.ID)
		}
	}

	// The next partial selection starts from scratch.
	st.ToggleCategory(2)
	if diff := cmp.Diff([]int{2}, st.SelectedCategoryIDs()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCombinedFilters(t *testing.T) {
	st := NewState(testCategories)
	st.SelectUser(2)
	st.SetQuery("a")
	st.ToggleCategory(1)

	got := ids(Visible(enriched(), st))
	if diff := cmp.Diff([]int{2}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResetLaw(t *testing.T) {
	products := enriched()
	want := Visible(products, NewState(testCategories))

	sequences := []func(*State){
		func(s *State) { s.SelectUser(1) },
		func(s *State) { s.SetQuery("  zz ") },
		func(s *State) { s.ToggleCategory(3); s.ToggleCategory(4) },
		func(s *State) { s.SelectUser(42); s.ToggleCategory(99); s.SetQuery("x") },
		func(s *State) { s.ToggleCategory(1); s.SelectAllCategories(); s.ToggleCategory(2) },
	}

	for i, mutate := range sequences {
		st := NewState(testCategories)
		mutate(&st)
		st.Reset()

		if !st.IsDefault() {
			t.Errorf("sequence %d: state not default after Reset", i)
		}
		if diff := cmp.Diff(want, Visible(products, st)); diff != "" {
			t.Errorf("sequence %d: (-want +got):\n%s", i, diff)
		}
	}
}

func TestStateCopyIsIndependent(t *testing.T) {
	st := NewState(testCategories)
	snapshot := st

	st.ToggleCategory(1)

	if len(snapshot.SelectedCategoryIDs()) != 0 {
		t.Error("mutating a State leaked into a copy")
	}
	if snapshot.Equal(st) {
		t.Error("copies should differ after mutation")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	st := NewState(testCategories)
	entries := st.Categories()
	entries[0].Selected = true

	if len(st.SelectedCategoryIDs()) != 0 {
		t.Error("Categories() exposed internal storage")
	}
}

func TestExplainTrace(t *testing.T) {
	st := NewState(testCategories)
	st.SelectUser(2)
	st.SetQuery("l")
	st.ToggleCategory(1)

	got, tr := Explain(enriched(), st)

	want := Trace{Input: 8, AfterUser: 3, AfterQuery: 2, AfterCategory: 1}
	if diff := cmp.Diff(want, tr); diff != "" {
		t.Errorf("trace (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, ids(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestStagesNeverReturnNil(t *testing.T) {
	if ByUser(nil, true, 0) == nil {
		t.Error("ByUser returned nil")
	}
	if ByUser(nil, false, 1) == nil {
		t.Error("ByUser returned nil")
	}
	if ByQuery(nil, "x") == nil {
		t.Error("ByQuery returned nil")
	}
	if ByCategory(nil, true, nil) == nil {
		t.Error("ByCategory returned nil")
	}
	if ByCategory(nil, false, nil) == nil {
		t.Error("ByCategory returned nil")
	}
}

func TestExampleScenario(t *testing.T) {
	users := []model.User{{ID: 1, Name: "Max", Sex: model.SexMale}}
	categories := []model.Category{{ID: 10, Title: "Fruits", OwnerID: 1}}
	products := catalog.Enrich([]model.Product{
		{ID: 100, Name: "Apple", CategoryID: 10},
		{ID: 101, Name: "Banana", CategoryID: 99},
	}, categories, users)

	if products[0].User == nil || products[0].User.Name != "Max" {
		t.Fatalf("Apple should be owned by Max, got %+v", products[0].User)
	}
	if products[1].User != nil || products[1].Category != nil {
		t.Fatalf("Banana should have no category and no user")
	}

	st := NewState(categories)
	st.SelectUser(1)
	if got := ids(Visible(products, st)); !cmp.Equal(got, []int{100}) {
		t.Errorf("selectUser(1): expected [100], got %v", got)
	}

	st = NewState(categories)
	st.SetQuery("an")
	if got := ids(Visible(products, st)); !cmp.Equal(got, []int{101}) {
		t.Errorf(`query "an": expected [101], got %v`, got)
	}
}

// cmpEmpty treats nil and empty int slices as equal.
var cmpEmpty = cmp.Comparer(func(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
})
