package playground

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	pm, ok := next.(Model)
	require.True(t, ok)
	return pm, cmd
}

func TestNewModelMergesSeeds(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, "btn p-2 text-primary", "p-4")
	assert.Equal(t, "btn text-primary p-4", m.Merged())
	assert.Equal(t, []string{"p-2"}, m.Dropped())
	assert.Equal(t, FieldDefaults, m.Focused())
	assert.NotNil(t, m.Init())
}

func TestTypingUpdatesMerge(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, "mt-1 foo-custom", "")
	m, _ = press(t, m, tea.KeyTab)
	require.Equal(t, FieldOverrides, m.Focused())

	m = typeText(t, m, "mt-3")
	assert.Equal(t, "foo-custom mt-3", m.Merged())
	assert.Equal(t, []string{"mt-1"}, m.Dropped())
}

func TestChainField(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, "", "")
	m, _ = press(t, m, tea.KeyShiftTab)
	require.Equal(t, FieldChain, m.Focused())

	m = typeText(t, m, "Margin.S3.FromTop")
	view := m.View()
	assert.Contains(t, view, "mt-3")
	assert.Contains(t, view, "margin-top: 1rem")

	m = typeText(t, m, ".Nope")
	assert.Contains(t, m.View(), `unknown call "Nope"`)
}

func TestFocusWrapsAround(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, "", "")
	for i := 0; i < int(fieldCount); i++ {
		m, _ = press(t, m, tea.KeyTab)
	}
	assert.Equal(t, FieldDefaults, m.Focused())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(t, NewModel(nil, "", ""), key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestViewShowsDroppedTokens(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, "d-none rounded", "d-flex")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "stylekit playground")
	assert.Contains(t, view, "rounded d-flex")
	assert.Contains(t, view, "d-none")
	assert.Contains(t, view, "dropped")
}
