package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDashboard:
		content = m.dashboard.View()
	case StateJobs:
		content = docStyle.Render(m.jobList.View())
	case StateSessions:
		content = docStyle.Render(m.sessionList.View())
	case StateAddJob:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateConfirmClose:
		content = m.viewConfirmClose()
	}

	var banner string
	if m.formError != "" {
		banner = errorBannerStyle.Render("⚠ " + m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		banner,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Dashboard", "Jobs", "Sessions"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this job? Its reserved film returns to the roll."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmClose() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			warningStyle.Render("Close this film session? Leftover film is written off."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
