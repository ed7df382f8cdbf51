package joblist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

type CompleteJobMsg struct {
	ID string
}

type UncompleteJobMsg struct {
	ID string
}

type DeleteJobMsg struct {
	ID string
}

type Item struct {
	Job          models.JobRecord
	SessionShort string
}

func (i Item) Title() string {
	name := i.Job.Name
	if name == "" {
		name = shortID(i.Job.ID)
	}
	if i.Job.Completed {
		return "✓ " + name
	}
	return "○ " + name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d sheets, %.1fm film, %.1f min, session %s",
		i.Job.SheetCount, i.Job.TotalUsageMeters(), i.Job.ProcessingMinutes, i.SessionShort)
	if i.Job.Completed && i.Job.CompletedAt != nil {
		desc += ", done " + utils.FormatClock(*i.Job.CompletedAt)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Job.Name }

type KeyMap struct {
	Done   key.Binding
	Undo   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Done: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark done"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(l *models.Ledger, width, height int) Model {
	lst := list.New(buildItems(l), list.NewDefaultDelegate(), width, height)
	lst.Title = "Jobs"
	lst.SetShowTitle(false)
	lst.SetShowHelp(false)

	keys := DefaultKeyMap()
	lst.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Done, keys.Undo, keys.Delete}
	}
	lst.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Done, keys.Undo, keys.Delete}
	}

	return Model{
		list: lst,
		keys: keys,
	}
}

func buildItems(l *models.Ledger) []list.Item {
	var items []list.Item
	if l == nil {
		return items
	}
	for i := range l.Sessions {
		s := &l.Sessions[i]
		for _, j := range s.Jobs {
			items = append(items, Item{
				Job:          j,
				SessionShort: shortID(s.ID),
			})
		}
	}
	return items
}

func (m *Model) SetLedger(l *models.Ledger) {
	m.list.SetItems(buildItems(l))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Done):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Job.Completed {
				return m, func() tea.Msg { return CompleteJobMsg{ID: i.Job.ID} }
			}
		case key.Matches(msg, m.keys.Undo):
			if i, ok := m.list.SelectedItem().(Item); ok && i.Job.Completed {
				return m, func() tea.Msg { return UncompleteJobMsg{ID: i.Job.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteJobMsg{ID: i.Job.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No jobs today.\n  Add one with 'lamiope job add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func shortID(id string) string {
	for i := 0; i < len(id); i++ {
		if id[i] == '-' {
			return id[:i]
		}
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
