package ui

import "github.com/charmbracelet/bubbles/key"

// focusZone is the part of the screen receiving keys.
type focusZone int

const (
	focusUsers focusZone = iota
	focusSearch
	focusCategories
	focusProducts
	focusZoneCount
)

func (z focusZone) String() string {
	switch z {
	case focusUsers:
		return "users"
	case focusSearch:
		return "search"
	case focusCategories:
		return "categories"
	case focusProducts:
		return "products"
	}
	return "unknown"
}

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Activate key.Binding
	Search   key.Binding
	Clear    key.Binding
	Reset    key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
		Top:      key.NewBinding(key.WithKeys("g", "home")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Clear:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Reset:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^r", "reset")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Search, k.Clear, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Up, k.Down, k.Activate},
		{k.Search, k.Clear, k.Reset, k.Quit},
	}
}
