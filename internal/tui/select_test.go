package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/moviefav/internal/movie"
)

var testEntries = []movie.SearchEntry{
	{ID: "tt3896198", Title: "Guardians of the Galaxy Vol. 2", Year: "2017", Type: movie.TypeMovie},
	{ID: "tt2015381", Title: "Guardians of the Galaxy", Year: "2014", Type: movie.TypeMovie},
}

func newTestModel() *model {
	items := make([]entryItem, len(testEntries))
	for i, e := range testEntries {
		items[i] = entryItem{SearchEntry: e}
	}
	return newModel("guardians", items)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_EnterSelectsHighlightedEntry(t *testing.T) {
	m := newTestModel()

	m.Update(key("down"))
	_, cmd := m.Update(key("enter"))

	require.NotNil(t, cmd)
	assert.Equal(t, ActionSelected, m.result.Action)
	require.NotNil(t, m.result.Selection)
	assert.Equal(t, "tt2015381", m.result.Selection.ID)
}

func TestModel_CancelKeys(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel()
			_, cmd := m.Update(key(k))

			require.NotNil(t, cmd)
			assert.Equal(t, ActionCancelled, m.result.Action)
			assert.Nil(t, m.result.Selection)
		})
	}
}

func TestModel_ViewShowsQuery(t *testing.T) {
	m := newTestModel()
	assert.Contains(t, m.View(), "Results for: guardians")
}

func TestSelect_NoEntries(t *testing.T) {
	called := false
	orig := runProgram
	runProgram = func(m tea.Model) (tea.Model, error) {
		called = true
		return m, nil
	}
	t.Cleanup(func() { runProgram = orig })

	result, err := Select("nothing", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionCancelled, result.Action)
	assert.False(t, called)
}

func TestSelect_ReturnsProgramResult(t *testing.T) {
	orig := runProgram
	t.Cleanup(func() { runProgram = orig })

	var marked []bool
	runProgram = func(tm tea.Model) (tea.Model, error) {
		m := tm.(*model)
		for _, it := range m.list.Items() {
			marked = append(marked, it.(entryItem).favorite)
		}
		m.Update(key("enter"))
		return m, nil
	}

	result, err := Select("guardians", testEntries, func(id string) bool { return id == "tt2015381" })
	require.NoError(t, err)
	assert.Equal(t, ActionSelected, result.Action)
	assert.Equal(t, "tt3896198", result.Selection.ID)
	assert.Equal(t, []bool{false, true}, marked)
}

func TestSelect_ProgramError(t *testing.T) {
	orig := runProgram
	runProgram = func(tea.Model) (tea.Model, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { runProgram = orig })

	_, err := Select("x", testEntries, nil)
	assert.EqualError(t, err, "no tty")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "a b", truncate("a   b", 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 72, clamp(72, 0, 40))
	assert.Equal(t, 50, clamp(72, 50, 40))
	assert.Equal(t, 40, clamp(72, 10, 40))
}
