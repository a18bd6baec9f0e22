// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/moviefav/internal/movie"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user picked an entry.
	ActionSelected
	// ActionCancelled indicates the user left without picking.
	ActionCancelled
)

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action    SelectionAction
	Selection *movie.SearchEntry
}

type entryItem struct {
	movie.SearchEntry
	favorite bool
}

func (i entryItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.SearchEntry.Title, i.Year)
}

func (i entryItem) FilterValue() string {
	return i.SearchEntry.Title
}

func (i entryItem) Description() string {
	return i.ID
}

type itemStyles struct {
	normal    lipgloss.Style
	selected  lipgloss.Style
	typeStyle lipgloss.Style
	title     lipgloss.Style
	id        lipgloss.Style
	favorite  lipgloss.Style
}

func newItemStyles() itemStyles {
	container := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		typeStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		id: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		favorite: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
	}
}

type entryDelegate struct {
	styles itemStyles
}

func (d entryDelegate) Height() int                         { return 4 }
func (d entryDelegate) Spacing() int                        { return 0 }
func (d entryDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	entry, ok := item.(entryItem)
	if !ok {
		return
	}

	typeLine := d.styles.typeStyle.Render(fmt.Sprintf("[%s]", strings.ToUpper(entry.Type.DisplayName())))
	if entry.favorite {
		typeLine += " " + d.styles.favorite.Render("★")
	}
	titleLine := d.styles.title.Render(truncate(entry.Title(), m.Width()-4))
	idLine := d.styles.id.Render(entry.ID)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(lipgloss.JoinVertical(lipgloss.Left, typeLine, titleLine, idLine)))
}

type model struct {
	list   list.Model
	query  string
	result SelectionResult
}

func newModel(query string, items []entryItem) *model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, entryDelegate{styles: newItemStyles()}, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:   l,
		query:  query,
		result: SelectionResult{Action: ActionNone},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Keys typed into the filter prompt belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(entryItem); ok {
				entry := selected.SearchEntry
				m.result = SelectionResult{Action: ActionSelected, Selection: &entry}
				return m, tea.Quit
			}
		case "ctrl+c", "q", "esc":
			m.result = SelectionResult{Action: ActionCancelled}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(fmt.Sprintf("Results for: %s", m.query))
	help := helpStyle.Render("Up/Down navigate | / filter | Enter select | q cancel")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Select presents an interactive picker over search entries. isFavorite
// marks entries already in the favorites list and may be nil.
func Select(query string, entries []movie.SearchEntry, isFavorite func(id string) bool) (SelectionResult, error) {
	if len(entries) == 0 {
		return SelectionResult{Action: ActionCancelled}, nil
	}

	items := make([]entryItem, len(entries))
	for i, e := range entries {
		items[i] = entryItem{SearchEntry: e, favorite: isFavorite != nil && isFavorite(e.ID)}
	}

	finalModel, err := runProgram(newModel(query, items))
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}
	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
