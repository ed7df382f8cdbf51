package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/storage"
	"github.com/ykhara/lamiope/internal/tui/components/dashboard"
	"github.com/ykhara/lamiope/internal/tui/components/joblist"
	"github.com/ykhara/lamiope/internal/tui/components/sessionlist"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateJobs
	StateSessions
	StateAddJob
	StateConfirmDelete
	StateConfirmClose
)

// JobFormModel holds the raw string inputs of the add-job form. Values are
// parsed when the form completes.
type JobFormModel struct {
	Name    string
	Sheets  string
	Paper   string
	Overlap string
	Speed   string
}

type Model struct {
	store          storage.Provider
	ledger         *models.Ledger
	state          SessionState
	keys           KeyMap
	help           help.Model
	dashboard      dashboard.Model
	jobList        joblist.Model
	sessionList    sessionlist.Model
	form           *huh.Form
	jobForm        *JobFormModel
	jobToDeleteID  string
	sessionToClose string
	formError      string
	quitting       bool
	width          int
	height         int
}

func NewModel(store storage.Provider) (Model, error) {
	l, err := store.LoadLedger()
	if err != nil {
		return Model{}, err
	}

	return Model{
		store:       store,
		ledger:      l,
		state:       StateDashboard,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		dashboard:   dashboard.New(l),
		jobList:     joblist.New(l, 0, 0),
		sessionList: sessionlist.New(l, 0, 0),
	}, nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateJobs {
		keys = append(keys, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	var actions []key.Binding
	if m.state == StateJobs {
		actions = []key.Binding{m.keys.Add}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return m.dashboard.Init()
}

// refresh pushes the current ledger into every component.
func (m *Model) refresh() {
	m.dashboard.SetLedger(m.ledger)
	m.jobList.SetLedger(m.ledger)
	m.sessionList.SetLedger(m.ledger)
}

// save persists the ledger, surfacing failures in the status line instead
// of crashing the interface.
func (m *Model) save() {
	if err := m.store.SaveLedger(m.ledger); err != nil {
		m.formError = "save failed: " + err.Error()
		return
	}
	m.formError = ""
}

// reload discards the in-memory ledger and reads it back from the store.
func (m *Model) reload() {
	l, err := m.store.LoadLedger()
	if err != nil {
		m.formError = "reload failed: " + err.Error()
		return
	}
	m.ledger = l
	m.formError = ""
	m.refresh()
}
