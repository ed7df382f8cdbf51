package dashboard

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/projector"
	"github.com/ykhara/lamiope/internal/shortage"
	"github.com/ykhara/lamiope/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	finishStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	onTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model renders the live finish-time projection for the day.
type Model struct {
	Ledger *models.Ledger
	Time   time.Time
	width  int
	height int
}

func New(l *models.Ledger) Model {
	return Model{
		Ledger: l,
		Time:   time.Now(),
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetLedger(l *models.Ledger) {
	m.Ledger = l
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.Ledger == nil {
		return titleStyle.Render("No data loaded.")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("Now: %s", utils.FormatClock(m.Time))),
		m.viewProjection(),
		"",
		m.viewCounts(),
		m.viewFilm(),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewProjection() string {
	proj, err := projector.Project(m.Ledger)
	if err != nil {
		return dimStyle.Render(fmt.Sprintf("projection unavailable: %v", err))
	}

	switch proj.Status {
	case projector.StatusNotStarted:
		return finishStyle.Render("Work not started")
	case projector.StatusOnTrack:
		return lipgloss.JoinVertical(lipgloss.Center,
			clockStyle.Render(fmt.Sprintf("target %s", m.Ledger.TargetEndTime)),
			finishStyle.Render(fmt.Sprintf("Finish %s", utils.FormatClock(proj.FinishTime))),
			onTrackStyle.Render(fmt.Sprintf("on track, %d min to spare", proj.RemainingMinutes)),
		)
	case projector.StatusWarning:
		return lipgloss.JoinVertical(lipgloss.Center,
			clockStyle.Render(fmt.Sprintf("target %s", m.Ledger.TargetEndTime)),
			finishStyle.Render(fmt.Sprintf("Finish %s", utils.FormatClock(proj.FinishTime))),
			warnStyle.Render(fmt.Sprintf("cutting it close, %d min left", proj.RemainingMinutes)),
		)
	default:
		return lipgloss.JoinVertical(lipgloss.Center,
			clockStyle.Render(fmt.Sprintf("target %s", m.Ledger.TargetEndTime)),
			finishStyle.Render(fmt.Sprintf("Finish %s", utils.FormatClock(proj.FinishTime))),
			overdueStyle.Render(fmt.Sprintf("over target by %d min", proj.OverMinutes)),
		)
	}
}

func (m Model) viewCounts() string {
	done := len(m.Ledger.CompletedJobs())
	total := m.Ledger.JobCount()
	return dimStyle.Render(fmt.Sprintf("%d/%d jobs done, %d min extra time booked", done, total, m.Ledger.ExtraMinutes))
}

func (m Model) viewFilm() string {
	active := m.Ledger.ActiveSession()
	if active == nil {
		return dimStyle.Render("no active film session")
	}

	line := fmt.Sprintf("film: %.1fm / %.1fm left", active.RemainingMeters(), active.CapacityMeters)
	switch shortage.Classify(active) {
	case shortage.Empty:
		return overdueStyle.Render(line + "  FILM EMPTY")
	case shortage.Critical:
		return overdueStyle.Render(line + "  film critical")
	case shortage.Low:
		return warnStyle.Render(line + "  film low")
	default:
		return dimStyle.Render(line)
	}
}
