package ui

import (
	"github.com/abelbrown/catalog/internal/catalog"
	"github.com/abelbrown/catalog/internal/filter"
	"github.com/abelbrown/catalog/internal/logging"
	"github.com/abelbrown/catalog/internal/model"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Options are display preferences.
type Options struct {
	NameWidth int
	ShowIcons bool
}

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT hold *store.Store. It receives the catalog via CatalogLoaded.
type App struct {
	loadCatalog func() tea.Cmd
	opts        Options

	catalog *catalog.Catalog
	state   filter.State
	cache   *filter.Cache
	visible []model.EnrichedProduct

	focus   focusZone
	userTab int // 0 is "All", i is catalog.Users[i-1]
	chip    int // 0 is "All", i is state.Categories()[i-1]
	cursor  int
	search  textinput.Model
	keys    keyMap
	help    help.Model

	err    error
	width  int
	height int
	ready  bool
}

// NewApp creates a new App. loadCatalog returns a Cmd that loads the
// fixtures and replies with CatalogLoaded.
func NewApp(loadCatalog func() tea.Cmd, opts Options) App {
	if opts.NameWidth <= 0 {
		opts.NameWidth = 32
	}

	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = ""
	search.CharLimit = 100
	search.Width = 40

	return App{
		loadCatalog: loadCatalog,
		opts:        opts,
		search:      search,
		keys:        defaultKeyMap(),
		help:        help.New(),
		focus:       focusUsers,
	}
}

// Init starts loading the catalog.
func (a App) Init() tea.Cmd {
	if a.loadCatalog != nil {
		return a.loadCatalog()
	}
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.ready = true
		return a, nil

	case CatalogLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			logging.Error("Catalog load failed", "error", msg.Err)
			return a, nil
		}
		a.err = nil
		a.setCatalog(msg.Catalog)
		return a, nil
	}

	return a, nil
}

func (a *App) setCatalog(c *catalog.Catalog) {
	a.catalog = c
	a.state = filter.NewState(c.Categories)
	a.cache = filter.NewCache(c.Products)
	a.userTab, a.chip, a.cursor = 0, 0, 0
	a.search.SetValue("")
	a.refresh()
}

// refresh recomputes the visible products after a state change.
func (a *App) refresh() {
	if a.cache == nil {
		return
	}
	a.visible = a.cache.Visible(a.state)
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	logging.Debug("Filters applied",
		"all_users", a.state.AllUsers(),
		"user", a.state.UserID(),
		"query", a.state.Query(),
		"all_categories", a.state.AllCategories(),
		"categories", a.state.SelectedCategoryIDs(),
		"visible", len(a.visible))
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any existing error on key press
	if a.err != nil {
		a.err = nil
	}

	switch {
	case key.Matches(msg, a.keys.ForceQ):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Next):
		return a.setFocus((a.focus + 1) % focusZoneCount)
	case key.Matches(msg, a.keys.Prev):
		return a.setFocus((a.focus + focusZoneCount - 1) % focusZoneCount)
	case key.Matches(msg, a.keys.Reset):
		a.resetAll()
		return a, nil
	case key.Matches(msg, a.keys.Clear):
		a.clearSearch()
		return a, nil
	}

	if a.focus == focusSearch {
		return a.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Search):
		return a.setFocus(focusSearch)
	case key.Matches(msg, a.keys.Left):
		a.moveSelection(-1)
	case key.Matches(msg, a.keys.Right):
		a.moveSelection(1)
	case key.Matches(msg, a.keys.Activate):
		a.activate()
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
	case key.Matches(msg, a.keys.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}
	}

	return a, nil
}

// handleSearchKey feeds a key to the search box and applies the new text.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return a.setFocus(focusProducts)
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if v := a.search.Value(); v != a.state.Query() {
		a.state.SetQuery(v)
		a.refresh()
	}
	return a, cmd
}

func (a App) setFocus(z focusZone) (tea.Model, tea.Cmd) {
	a.focus = z
	if z == focusSearch {
		return a, a.search.Focus()
	}
	a.search.Blur()
	return a, nil
}

// moveSelection moves the tab or chip cursor within the focused row.
func (a *App) moveSelection(delta int) {
	if a.catalog == nil {
		return
	}
	switch a.focus {
	case focusUsers:
		a.userTab = clamp(a.userTab+delta, 0, len(a.catalog.Users))
	case focusCategories:
		a.chip = clamp(a.chip+delta, 0, len(a.catalog.Categories))
	}
}

// activate applies the tab or chip under the cursor.
func (a *App) activate() {
	if a.catalog == nil {
		return
	}
	switch a.focus {
	case focusUsers:
		if a.userTab == 0 {
			a.state.SelectAllUsers()
		} else {
			a.state.SelectUser(a.catalog.Users[a.userTab-1].ID)
		}
	case focusCategories:
		if a.chip == 0 {
			a.state.SelectAllCategories()
		} else {
			a.state.ToggleCategory(a.state.Categories()[a.chip-1].ID)
		}
	default:
		return
	}
	a.refresh()
}

func (a *App) clearSearch() {
	if a.state.Query() == "" {
		return
	}
	a.state.ClearQuery()
	a.search.SetValue("")
	a.refresh()
}

func (a *App) resetAll() {
	a.state.Reset()
	a.search.SetValue("")
	a.userTab, a.chip = 0, 0
	a.refresh()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}
	return a.render()
}

// State returns the current filter state (for testing).
func (a App) State() filter.State {
	return a.state
}

// Visible returns the current visible products (for testing).
func (a App) Visible() []model.EnrichedProduct {
	return a.visible
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int {
	return a.cursor
}
