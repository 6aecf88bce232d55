// ABOUTME: Users table with search box and paginator
// ABOUTME: Filters by name, email or username and shows eight rows per page

package usertable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/icons"
	"github.com/Mossaabs03254/My-CRUd-App/internal/tui/styles"
	"github.com/Mossaabs03254/My-CRUd-App/internal/users"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewMsg asks to show a user's details
type ViewMsg struct{ ID int }

// EditMsg asks to open the edit form for a user
type EditMsg struct{ ID int }

// DeleteMsg asks to confirm deletion of a user
type DeleteMsg struct{ ID int }

// AddMsg asks to open the create form
type AddMsg struct{}

// Table is the users screen body
type Table struct {
	all      []models.UserRecord
	filtered []models.UserRecord

	table     table.Model
	search    textinput.Model
	paginator paginator.Model
	searching bool
	width     int
}

// New creates an empty table
func New() *Table {
	ti := textinput.New()
	ti.Placeholder = "Search name, email or username"
	ti.Prompt = icons.Search.String() + " "
	ti.CharLimit = 64
	ti.Width = 40

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = users.PageSize

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(users.PageSize+1),
	)

	tb := &Table{table: t, search: ti, paginator: p}
	tb.applyStyles()
	tb.refresh()
	return tb
}

// columns sizes the table for the available width
func columns(width int) []table.Column {
	// ID and padding take a fixed share; the rest is split between text columns
	flexible := max(width-6-10, 40)
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: flexible * 28 / 100},
		{Title: "Email", Width: flexible * 30 / 100},
		{Title: "Company", Width: flexible * 24 / 100},
		{Title: "City", Width: flexible * 18 / 100},
	}
}

// applyStyles matches the table to the active palette
func (t *Table) applyStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Foreground(styles.Primary).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.Primary).
		Bold(false)
	t.table.SetStyles(s)
}

// SetUsers replaces the records shown, keeping the search term and page when possible
func (t *Table) SetUsers(records []models.UserRecord) {
	t.all = records
	t.refresh()
}

// ThemeChanged restyles the table after a palette switch
func (t *Table) ThemeChanged() {
	t.applyStyles()
}

// SetSize adapts column widths
func (t *Table) SetSize(width int) {
	t.width = width
	t.table.SetColumns(columns(width))
	t.table.SetWidth(width)
}

// Searching reports whether the search box has focus
func (t *Table) Searching() bool {
	return t.searching
}

// Term returns the current search term
func (t *Table) Term() string {
	return t.search.Value()
}

// Page returns the current 1-based page
func (t *Table) Page() int {
	return t.paginator.Page + 1
}

// Pages returns the number of pages for the current filter
func (t *Table) Pages() int {
	return t.paginator.TotalPages
}

// Visible returns the records on the current page
func (t *Table) Visible() []models.UserRecord {
	return users.Paginate(t.filtered, t.Page(), users.PageSize)
}

// Selected returns the highlighted record
func (t *Table) Selected() (models.UserRecord, bool) {
	visible := t.Visible()
	i := t.table.Cursor()
	if i < 0 || i >= len(visible) {
		return models.UserRecord{}, false
	}
	return visible[i], true
}

// refresh recomputes the filter, page count and rows
func (t *Table) refresh() {
	t.filtered = users.Filter(t.all, t.search.Value())
	pages := users.PageCount(len(t.filtered), users.PageSize)
	t.paginator.TotalPages = pages
	t.paginator.Page = min(t.paginator.Page, pages-1)
	t.setRows()
}

func (t *Table) setRows() {
	visible := t.Visible()
	rows := make([]table.Row, len(visible))
	for i, u := range visible {
		rows[i] = table.Row{strconv.Itoa(u.ID), u.Name, u.Email, u.Company.Name, u.Address.City}
	}
	t.table.SetRows(rows)
	// An empty table leaves the cursor at -1
	if c := t.table.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		t.table.SetCursor(min(max(c, 0), len(rows)-1))
	}
}

// Init implements tea.Model
func (t *Table) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (t *Table) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if t.searching {
			t.search, cmd = t.search.Update(msg)
		}
		return t, cmd
	}

	if t.searching {
		return t.updateSearch(key)
	}

	switch key.String() {
	case "/":
		t.searching = true
		t.table.Blur()
		return t, t.search.Focus()
	case "left", "h", "pgup":
		t.paginator.PrevPage()
		t.setRows()
		return t, nil
	case "right", "l", "pgdown":
		t.paginator.NextPage()
		t.setRows()
		return t, nil
	case "n", "a":
		return t, func() tea.Msg { return AddMsg{} }
	case "enter", "v":
		return t, t.withSelected(func(id int) tea.Msg { return ViewMsg{ID: id} })
	case "e":
		return t, t.withSelected(func(id int) tea.Msg { return EditMsg{ID: id} })
	case "d", "delete":
		return t, t.withSelected(func(id int) tea.Msg { return DeleteMsg{ID: id} })
	}

	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return t, cmd
}

func (t *Table) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		t.search.SetValue("")
		t.endSearch()
		return t, nil
	case "enter", "down", "tab":
		t.endSearch()
		return t, nil
	}

	var cmd tea.Cmd
	before := t.search.Value()
	t.search, cmd = t.search.Update(key)
	if t.search.Value() != before {
		t.paginator.Page = 0
		t.table.SetCursor(0)
		t.refresh()
	}
	return t, cmd
}

func (t *Table) endSearch() {
	t.searching = false
	t.search.Blur()
	t.table.Focus()
	t.paginator.Page = 0
	t.refresh()
}

func (t *Table) withSelected(msg func(id int) tea.Msg) tea.Cmd {
	u, ok := t.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg { return msg(u.ID) }
}

// View implements tea.Model
func (t *Table) View() string {
	var sb strings.Builder

	sb.WriteString(t.search.View())
	sb.WriteString("\n\n")

	if len(t.filtered) == 0 {
		empty := "No users yet. Press n to add one."
		if t.search.Value() != "" {
			empty = fmt.Sprintf("No users match %q.", t.search.Value())
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render(empty))
		return sb.String()
	}

	sb.WriteString(t.table.View())
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(styles.Muted).Render(
		fmt.Sprintf("Page %s  ·  %d users", t.paginator.View(), len(t.filtered))))
	return sb.String()
}
