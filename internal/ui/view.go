package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abelbrown/catalog/internal/filter"
	"github.com/abelbrown/catalog/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

// NoResultsText is shown instead of the table when nothing matches.
const NoResultsText = "No products matching selected criteria"

// tableChrome is the number of lines the table border and header take.
const tableChrome = 4

func (a App) render() string {
	top := []string{Title.Render("Product Categories")}

	if a.catalog == nil {
		top = append(top, NoResults.Render("Loading catalog..."))
	} else {
		top = append(top,
			PanelHeading.Width(a.width).Render("Filters"),
			a.zoneLine(focusUsers, "Users", RenderUserTabs(a.catalog.Users, a.state, a.userTab, a.focus == focusUsers)),
			a.zoneLine(focusSearch, "Search", RenderSearch(a.search.View(), a.state.Query())),
			a.zoneLine(focusCategories, "Categories", RenderCategoryChips(a.state.Categories(), a.state.AllCategories(), a.chip, a.focus == focusCategories)),
			"  "+RenderReset(),
			"",
		)
	}
	header := lipgloss.JoinVertical(lipgloss.Left, top...)

	errorBar := ""
	if a.err != nil {
		errorBar = ErrorStyle.Width(a.width).Render("Error: "+a.err.Error()+" (press any key to dismiss)") + "\n"
	}

	// Remaining height for the table: subtract header, status bar and error bar.
	tableHeight := a.height - lipgloss.Height(header) - 1 - lipgloss.Height(errorBar)

	body := ""
	if a.catalog != nil {
		body = RenderProducts(a.visible, a.cursor, tableHeight, a.opts)
	}

	total := 0
	if a.catalog != nil {
		total = len(a.catalog.Products)
	}
	statusBar := RenderStatusBar(a.cursor, len(a.visible), total, a.width, a.help.View(a.keys))

	return header + "\n" + body + "\n" + errorBar + statusBar
}

// zoneLine prefixes a filter row with its label, highlighted when focused.
func (a App) zoneLine(z focusZone, label, content string) string {
	style := ZoneLabel
	marker := "  "
	if a.focus == z {
		style = FocusedZone
		marker = "> "
	}
	return marker + style.Render(fmt.Sprintf("%-11s", label)) + content
}

// RenderUserTabs renders "All" followed by one tab per user.
// The active tab follows the filter state; cursor marks the focused tab.
func RenderUserTabs(users []model.User, st filter.State, cursor int, focused bool) string {
	tabs := make([]string, 0, len(users)+1)
	tabs = append(tabs, renderTab("All", st.AllUsers(), focused && cursor == 0))
	for i, u := range users {
		tabs = append(tabs, renderTab(u.Name, st.UserActive(u.ID), focused && cursor == i+1))
	}
	return strings.Join(tabs, "")
}

func renderTab(label string, active, underCursor bool) string {
	style := Tab
	if active {
		style = ActiveTab
	}
	if underCursor {
		style = style.Inherit(Cursor)
	}
	return style.Render(label)
}

// RenderSearch renders the search box and, while a query is set, the clear affordance.
func RenderSearch(input, query string) string {
	s := SearchPrompt.Render("⌕") + " " + input
	if query != "" {
		s += "  " + ClearButton.Render("[x] esc")
	}
	return s
}

// RenderCategoryChips renders "All" followed by one chip per category.
// "All" is outlined while a subset is selected.
func RenderCategoryChips(entries []model.CategoryFilter, allCategories bool, cursor int, focused bool) string {
	chips := make([]string, 0, len(entries)+1)

	all := AllChip
	if !allCategories {
		all = AllChipOutlined
	}
	chips = append(chips, renderChip(all, "All", focused && cursor == 0))

	for i, e := range entries {
		style := Chip
		if e.Selected {
			style = SelectedChip
		}
		chips = append(chips, renderChip(style, e.Title, focused && cursor == i+1))
	}
	return strings.Join(chips, "")
}

func renderChip(style lipgloss.Style, label string, underCursor bool) string {
	if underCursor {
		style = style.Inherit(Cursor)
	}
	return style.Render(label)
}

// RenderReset renders the reset-all button.
func RenderReset() string {
	return ResetButton.Render("[ Reset all filters ]") + ZoneLabel.Render("^r")
}

// RenderProducts renders the product table scrolled to keep cursor in view,
// or the no-results message when products is empty.
func RenderProducts(products []model.EnrichedProduct, cursor, height int, opts Options) string {
	if len(products) == 0 {
		return NoResults.Render(NoResultsText)
	}

	rows := height - tableChrome
	if rows < 1 {
		rows = 1
	}

	offset := calcScrollOffset(cursor, rows)
	end := offset + rows
	if end > len(products) {
		end = len(products)
	}

	return ProductTable(products[offset:end], cursor-offset, opts)
}

// calcScrollOffset returns the first row index that keeps cursor visible.
func calcScrollOffset(cursor, rows int) int {
	if cursor >= rows {
		return cursor - rows + 1
	}
	return 0
}

// ProductTable renders products as a bordered table. The row at cursor is
// highlighted; pass -1 for none.
func ProductTable(products []model.EnrichedProduct, cursor int, opts Options) string {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			strconv.Itoa(p.ID),
			Truncate(p.Name, opts.NameWidth),
			CategoryLabel(p.Category, opts.ShowIcons),
			OwnerLabel(p.User),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("ID", "Product", "Category", "User").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeader
			case row == cursor:
				return SelectedRow
			case col == 3 && row >= 0 && row < len(products):
				return ownerStyle(products[row].User)
			}
			return TableCell
		})

	return t.String()
}

// CategoryLabel renders "icon - title", or "-" for an unresolved category.
func CategoryLabel(c *model.Category, showIcon bool) string {
	if c == nil {
		return "-"
	}
	if showIcon && c.Icon != "" {
		return c.Icon + " - " + c.Title
	}
	return c.Title
}

// OwnerLabel renders the owner name, or "-" for an unresolved owner.
func OwnerLabel(u *model.User) string {
	if u == nil {
		return "-"
	}
	return u.Name
}

func ownerStyle(u *model.User) lipgloss.Style {
	if u == nil {
		return TableCell
	}
	if u.Sex == model.SexFemale {
		return OwnerFemale
	}
	return OwnerMale
}

// Truncate shortens s to at most width display cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// RenderStatusBar renders the position/count on the left and key hints on the right.
func RenderStatusBar(cursor, visible, total, width int, keyHints string) string {
	position := fmt.Sprintf(" %d/%d of %d products ", cursor+1, visible, total)
	if visible == 0 {
		position = fmt.Sprintf(" 0/0 of %d products ", total)
	}

	leftWidth := lipgloss.Width(position)
	rightWidth := lipgloss.Width(keyHints)
	padding := width - leftWidth - rightWidth - 2
	if padding < 0 {
		padding = 0
	}

	bar := position + strings.Repeat(" ", padding) + keyHints
	return StatusBar.Width(width).Render(bar)
}
