package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/leaplearn/pkg/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browserModel(t *testing.T) model {
	t.Helper()
	reg, err := lesson.NewRegistry(
		lesson.Descriptor{Number: 1, Slug: "hello_world", Title: "Hello, world", Runner: lesson.RunnerFunc(func() {})},
		lesson.Descriptor{Number: 2, Slug: "variables", Title: "Variables", Runner: lesson.RunnerFunc(func() {})},
	)
	require.NoError(t, err)

	l := list.New(newItems(reg), list.NewDefaultDelegate(), 40, 20)
	return model{list: l}
}

func TestItemRendering(t *testing.T) {
	d := lesson.Descriptor{Number: 7, Slug: "slices", Title: "Arrays & slices"}
	it := item{d: d}

	assert.Equal(t, "07  slices", it.Title())
	assert.Equal(t, "Arrays & slices", it.Description())
	assert.Contains(t, it.FilterValue(), "slices")
}

func TestNewItemsPreservesOrder(t *testing.T) {
	m := browserModel(t)
	items := m.list.Items()

	require.Len(t, items, 2)
	assert.Equal(t, "01  hello_world", items[0].(item).Title())
	assert.Equal(t, "02  variables", items[1].(item).Title())
}

func TestEnterSelectsHighlightedLesson(t *testing.T) {
	m := browserModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(model)

	require.NotNil(t, got.choice)
	assert.Equal(t, "hello_world", got.choice.Slug)
	assert.NotNil(t, cmd, "enter must quit the program")
}

func TestQuitWithoutChoice(t *testing.T) {
	m := browserModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	got := updated.(model)

	assert.Nil(t, got.choice)
	assert.NotNil(t, cmd)
}
