package filter

import "github.com/abelbrown/catalog/internal/model"

// State is the current selection: a user filter, a search query and a
// category filter. The zero value is not useful; start from NewState.
//
// Fields only change through the mutator methods. Mutators replace the
// category slice instead of writing into it, so a State copied by value
// keeps its own selection.
type State struct {
	allUsers bool
	userID   int

	query string

	allCategories bool
	categories    []model.CategoryFilter
}

// NewState returns the default selection: every user, no query, every
// category, and one deselected entry per category in catalog order.
func NewState(categories []model.Category) State {
	entries := make([]model.CategoryFilter, len(categories))
	for i, c := range categories {
		entries[i] = model.CategoryFilter{ID: c.ID, Title: c.Title}
	}

	return State{
		allUsers:      true,
		allCategories: true,
		categories:    entries,
	}
}

// SelectAllUsers switches the user filter off. The last selected user id
// is kept but ignored.
func (s *State) SelectAllUsers() {
	s.allUsers = true
}

// SelectUser restricts the list to products owned by userID.
func (s *State) SelectUser(userID int) {
	s.allUsers = false
	s.userID = userID
}

// SetQuery stores text verbatim; trimming happens while filtering.
func (s *State) SetQuery(text string) {
	s.query = text
}

// ClearQuery is SetQuery("").
func (s *State) ClearQuery() {
	s.SetQuery("")
}

// SelectAllCategories switches to "all categories" mode and deselects every
// entry, so the next partial selection starts empty.
func (s *State) SelectAllCategories() {
	s.allCategories = true

	entries := make([]model.CategoryFilter, len(s.categories))
	for i, e := range s.categories {
		e.Selected = false
		entries[i] = e
	}
	s.categories = entries
}

// ToggleCategory leaves "all categories" mode and flips the entry for
// categoryID. An unknown id only changes the mode.
func (s *State) ToggleCategory(categoryID int) {
	s.allCategories = false

	entries := make([]model.CategoryFilter, len(s.categories))
	for i, e := range s.categories {
		if e.ID == categoryID {
			e.Selected = !e.Selected
		}
		entries[i] = e
	}
	s.categories = entries
}

// Reset restores the default selection.
func (s *State) Reset() {
	s.SelectAllUsers()
	s.ClearQuery()
	s.SelectAllCategories()
}

// AllUsers reports whether the user filter is off.
func (s State) AllUsers() bool { return s.allUsers }

// UserID is the selected user; meaningless while AllUsers is true.
func (s State) UserID() int { return s.userID }

// Query is the raw search text.
func (s State) Query() string { return s.query }

// AllCategories reports whether the category filter is off.
func (s State) AllCategories() bool { return s.allCategories }

// Categories returns a copy of the per-category entries.
func (s State) Categories() []model.CategoryFilter {
	out := make([]model.CategoryFilter, len(s.categories))
	copy(out, s.categories)
	return out
}

// SelectedCategoryIDs lists the selected entries in catalog order.
func (s State) SelectedCategoryIDs() []int {
	ids := make([]int, 0, len(s.categories))
	for _, e := range s.categories {
		if e.Selected {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// UserActive reports whether userID is the active user tab.
func (s State) UserActive(userID int) bool {
	return !s.allUsers && s.userID == userID
}

// IsDefault reports whether the selection filters nothing out.
func (s State) IsDefault() bool {
	return s.allUsers && s.query == "" && s.allCategories && len(s.SelectedCategoryIDs()) == 0
}

// Equal reports structural equality.
func (s State) Equal(other State) bool {
	if s.allUsers != other.allUsers || s.userID != other.userID ||
		s.query != other.query || s.allCategories != other.allCategories ||
		len(s.categories) != len(other.categories) {
		return false
	}
	for i := range s.categories {
		if s.categories[i] != other.categories[i] {
			return false
		}
	}
	return true
}
