package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
	colorInfo      = lipgloss.Color("39")  // Blue
	colorLink      = lipgloss.Color("33")  // Owner (m)
	colorDanger    = lipgloss.Color("203") // Owner (f)
)

// Title style for the page heading.
var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// PanelHeading style for the "Filters" panel header.
var PanelHeading = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// Tab style for an inactive user tab.
var Tab = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// ActiveTab style for the selected user tab.
var ActiveTab = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// Chip style for an unselected category.
var Chip = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("238")).
	Padding(0, 1).
	MarginRight(1)

// SelectedChip style for a selected category.
var SelectedChip = Chip.
	Background(colorInfo).
	Bold(true)

// AllChip style for "All" while every category is shown.
var AllChip = Chip.
	Background(colorSuccess).
	Bold(true)

// AllChipOutlined style for "All" while a subset is selected.
var AllChipOutlined = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Padding(0, 1).
	MarginRight(1)

// Cursor marks the focused tab or chip.
var Cursor = lipgloss.NewStyle().
	Underline(true)

// SearchPrompt style for the search icon.
var SearchPrompt = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// ClearButton style for the clear-search affordance.
var ClearButton = lipgloss.NewStyle().
	Foreground(colorMuted)

// ResetButton style for "Reset all filters".
var ResetButton = lipgloss.NewStyle().
	Foreground(colorLink).
	Padding(0, 1)

// FocusedZone marks the label of the focused filter row.
var FocusedZone = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// ZoneLabel style for an unfocused filter row label.
var ZoneLabel = lipgloss.NewStyle().
	Foreground(colorMuted)

// TableHeader style for product table headers.
var TableHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

// TableCell style for product table cells.
var TableCell = lipgloss.NewStyle().
	Padding(0, 1)

// SelectedRow style for the row under the cursor.
var SelectedRow = TableCell.
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary)

// OwnerMale and OwnerFemale colour the owner column.
var (
	OwnerMale   = TableCell.Foreground(colorLink)
	OwnerFemale = TableCell.Foreground(colorDanger)
)

// NoResults style for the empty-state message.
var NoResults = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 2)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)
