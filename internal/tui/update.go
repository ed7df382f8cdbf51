package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ykhara/lamiope/internal/calc"
	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/ledger"
	"github.com/ykhara/lamiope/internal/tui/components/dashboard"
	"github.com/ykhara/lamiope/internal/tui/components/joblist"
	"github.com/ykhara/lamiope/internal/tui/components/sessionlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Job State
	if m.state == StateAddJob {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateJobs
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if err := m.submitJobForm(); err != nil {
				m.formError = err.Error()
			}
			m.state = StateJobs
		case huh.StateAborted:
			m.state = StateJobs
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.dashboard.SetSize(msg.Width, contentHeight)
		m.jobList.SetSize(msg.Width, contentHeight)
		m.sessionList.SetSize(msg.Width, contentHeight)
		return m, nil

	case dashboard.TickMsg:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case joblist.CompleteJobMsg:
		if s, _, err := cli.ResolveJob(m.ledger, msg.ID); err == nil {
			if err := ledger.CompleteJob(m.ledger, s.ID, msg.ID); err == nil {
				m.save()
				m.refresh()
			}
		}
		return m, nil

	case joblist.UncompleteJobMsg:
		if s, _, err := cli.ResolveJob(m.ledger, msg.ID); err == nil {
			if err := ledger.UncompleteJob(m.ledger, s.ID, msg.ID); err == nil {
				m.save()
				m.refresh()
			}
		}
		return m, nil

	case joblist.DeleteJobMsg:
		m.jobToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case sessionlist.SelectSessionMsg:
		if err := ledger.SelectSession(m.ledger, msg.ID); err == nil {
			m.save()
			m.refresh()
		}
		return m, nil

	case sessionlist.CloseSessionMsg:
		m.sessionToClose = msg.ID
		m.state = StateConfirmClose
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleConfirmKeys(msg); handled {
			return m, cmd
		}
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	// Delegate to the component behind the current tab.
	var cmd tea.Cmd
	switch m.state {
	case StateDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case StateJobs:
		m.jobList, cmd = m.jobList.Update(msg)
	case StateSessions:
		m.sessionList, cmd = m.sessionList.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch m.state {
	case StateConfirmDelete:
		switch msg.String() {
		case "y":
			if s, _, err := cli.ResolveJob(m.ledger, m.jobToDeleteID); err == nil {
				if err := ledger.DeleteJob(m.ledger, s.ID, m.jobToDeleteID); err == nil {
					m.save()
					m.refresh()
				}
			}
			m.jobToDeleteID = ""
			m.state = StateJobs
			return true, nil
		case "n", "esc":
			m.jobToDeleteID = ""
			m.state = StateJobs
			return true, nil
		}
		return true, nil

	case StateConfirmClose:
		switch msg.String() {
		case "y":
			if err := ledger.CloseSession(m.ledger, m.sessionToClose); err == nil {
				m.save()
				m.refresh()
			}
			m.sessionToClose = ""
			m.state = StateSessions
			return true, nil
		case "n", "esc":
			m.sessionToClose = ""
			m.state = StateSessions
			return true, nil
		}
		return true, nil
	}
	return false, nil
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		switch m.state {
		case StateDashboard:
			m.state = StateJobs
		case StateJobs:
			m.state = StateSessions
		case StateSessions:
			m.state = StateDashboard
		}
		return true, nil
	case key.Matches(msg, m.keys.ShiftTab):
		switch m.state {
		case StateDashboard:
			m.state = StateSessions
		case StateJobs:
			m.state = StateDashboard
		case StateSessions:
			m.state = StateJobs
		}
		return true, nil
	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		return true, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil
	case key.Matches(msg, m.keys.Add):
		if m.state == StateJobs {
			m.openJobForm()
			return true, m.form.Init()
		}
	}
	return false, nil
}

func (m *Model) openJobForm() {
	m.jobForm = &JobFormModel{Overlap: "10"}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Job name").
				Value(&m.jobForm.Name),
			huh.NewInput().
				Title("Sheets").
				Value(&m.jobForm.Sheets),
			huh.NewInput().
				Title("Paper length (mm)").
				Value(&m.jobForm.Paper),
			huh.NewInput().
				Title("Overlap width (mm)").
				Value(&m.jobForm.Overlap),
			huh.NewInput().
				Title("Process speed (m/min)").
				Value(&m.jobForm.Speed),
		),
	)
	m.state = StateAddJob
}

func (m *Model) submitJobForm() error {
	active := m.ledger.ActiveSession()
	if active == nil {
		return fmt.Errorf("no active film session")
	}

	sheets, err := strconv.Atoi(strings.TrimSpace(m.jobForm.Sheets))
	if err != nil {
		return fmt.Errorf("invalid sheet count %q", m.jobForm.Sheets)
	}
	paper, err := strconv.ParseFloat(strings.TrimSpace(m.jobForm.Paper), 64)
	if err != nil {
		return fmt.Errorf("invalid paper length %q", m.jobForm.Paper)
	}
	overlap, err := strconv.ParseFloat(strings.TrimSpace(m.jobForm.Overlap), 64)
	if err != nil {
		return fmt.Errorf("invalid overlap width %q", m.jobForm.Overlap)
	}
	speed, err := strconv.ParseFloat(strings.TrimSpace(m.jobForm.Speed), 64)
	if err != nil {
		return fmt.Errorf("invalid process speed %q", m.jobForm.Speed)
	}

	job, err := calc.NewJob(calc.Params{
		Name:            strings.TrimSpace(m.jobForm.Name),
		SheetCount:      sheets,
		PaperLengthMm:   paper,
		OverlapWidthMm:  overlap,
		ProcessSpeedMPM: speed,
	})
	if err != nil {
		return err
	}

	if err := ledger.AddJob(m.ledger, active.ID, job, false); err != nil {
		var insufficient *ledger.InsufficientFilmError
		if errors.As(err, &insufficient) {
			return fmt.Errorf("not enough film: need %.1fm, %.1fm left (add it from 'lamiope job add' to override)",
				insufficient.NeededMeters, insufficient.RemainingMeters)
		}
		return err
	}

	m.save()
	m.refresh()
	return nil
}
