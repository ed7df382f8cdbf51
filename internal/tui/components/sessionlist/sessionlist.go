package sessionlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/shortage"
)

type SelectSessionMsg struct {
	ID string
}

type CloseSessionMsg struct {
	ID string
}

type Item struct {
	Session  models.FilmSession
	IsActive bool
}

func (i Item) Title() string {
	title := shortID(i.Session.ID)
	if i.IsActive {
		title = "* " + title
	} else {
		title = "  " + title
	}
	switch shortage.Classify(&i.Session) {
	case shortage.Empty:
		title += "  [FILM EMPTY]"
	case shortage.Critical:
		title += "  [film critical]"
	case shortage.Low:
		title += "  [film low]"
	}
	return title
}

func (i Item) Description() string {
	state := "active"
	if i.Session.Status() == models.SessionCompleted {
		state = "completed"
	}
	return fmt.Sprintf("%.1fm / %.1fm left, %d jobs, %s",
		i.Session.RemainingMeters(), i.Session.CapacityMeters, len(i.Session.Jobs), state)
}

func (i Item) FilterValue() string { return i.Session.ID }

type KeyMap struct {
	Select key.Binding
	Close  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "make active"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close session"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(l *models.Ledger, width, height int) Model {
	lst := list.New(buildItems(l), list.NewDefaultDelegate(), width, height)
	lst.Title = "Film Sessions"
	lst.SetShowTitle(false)
	lst.SetShowHelp(false)

	keys := DefaultKeyMap()
	lst.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select, keys.Close}
	}
	lst.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select, keys.Close}
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
	for _, s := range l.SessionsNewestFirst() {
		items = append(items, Item{
			Session:  *s,
			IsActive: s.ID == l.ActiveSessionID,
		})
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
		case key.Matches(msg, m.keys.Select):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.IsActive {
				return m, func() tea.Msg { return SelectSessionMsg{ID: i.Session.ID} }
			}
		case key.Matches(msg, m.keys.Close):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Session.Status() != models.SessionCompleted {
					return m, func() tea.Msg { return CloseSessionMsg{ID: i.Session.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No film sessions today.\n  Start one with 'lamiope film new'."
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
