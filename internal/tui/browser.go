// Package tui implements the interactive lesson browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/leaplearn/pkg/lesson"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// item adapts a lesson descriptor to the bubbles list item interface.
type item struct {
	d lesson.Descriptor
}

func (i item) Title() string       { return fmt.Sprintf("%02d  %s", i.d.Number, i.d.Slug) }
func (i item) Description() string { return i.d.Title }
func (i item) FilterValue() string { return i.d.Slug + " " + i.d.Title }

type model struct {
	list   list.Model
	choice *lesson.Descriptor
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the filter input is active, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				d := it.d
				m.choice = &d
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Browse shows the registry in a full-screen picker and returns the chosen
// descriptor, or nil when the user quit without choosing.
func Browse(reg *lesson.Registry) (*lesson.Descriptor, error) {
	items := newItems(reg)

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "LeapLearn lessons"
	l.SetStatusBarItemName("lesson", "lessons")

	final, err := tea.NewProgram(model{list: l}, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	return final.(model).choice, nil
}

// newItems converts the registry to list items in registration order.
func newItems(reg *lesson.Registry) []list.Item {
	items := make([]list.Item, 0, reg.Len())
	for _, d := range reg.Lessons() {
		items = append(items, item{d: d})
	}
	return items
}
