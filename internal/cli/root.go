package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ykhara/lamiope/internal/backup"
	"github.com/ykhara/lamiope/internal/logger"
	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/storage"
)

type Context struct {
	Store storage.Provider
	// Yes suppresses interactive confirmations, for scripted use.
	Yes bool

	ledger *models.Ledger
}

// Ledger loads the day ledger once per invocation.
func (c *Context) Ledger() (*models.Ledger, error) {
	if c.ledger != nil {
		return c.ledger, nil
	}
	l, err := c.Store.LoadLedger()
	if err != nil {
		return nil, err
	}
	c.ledger = l
	return l, nil
}

// Save persists the ledger after a mutation.
func (c *Context) Save(l *models.Ledger) error {
	return c.Store.SaveLedger(l)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.Create()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Confirm asks the operator a yes/no question, defaulting to no. With the
// --yes flag the question is skipped and answered yes.
func (c *Context) Confirm(title, description string) (bool, error) {
	if c.Yes {
		return true, nil
	}

	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// ResolveSession finds a session by full id, unique id prefix, or the
// literal "active" for the currently selected session.
func ResolveSession(l *models.Ledger, ref string) (*models.FilmSession, error) {
	if ref == "" || ref == "active" {
		s := l.ActiveSession()
		if s == nil {
			return nil, fmt.Errorf("no active film session, start one with 'lamiope film new'")
		}
		return s, nil
	}

	if s := l.Session(ref); s != nil {
		return s, nil
	}

	var matches []*models.FilmSession
	for i := range l.Sessions {
		if strings.HasPrefix(l.Sessions[i].ID, ref) {
			matches = append(matches, &l.Sessions[i])
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("film session not found: %s", ref)
	default:
		return nil, fmt.Errorf("ambiguous session reference %s matches %d sessions", ref, len(matches))
	}
}

// ResolveJob finds a job by full id or unique id prefix across all
// sessions, returning the owning session too.
func ResolveJob(l *models.Ledger, ref string) (*models.FilmSession, *models.JobRecord, error) {
	var matchSession *models.FilmSession
	var matchJob *models.JobRecord
	matchCount := 0

	for i := range l.Sessions {
		s := &l.Sessions[i]
		for k := range s.Jobs {
			j := &s.Jobs[k]
			if j.ID == ref {
				return s, j, nil
			}
			if strings.HasPrefix(j.ID, ref) {
				matchSession, matchJob = s, j
				matchCount++
			}
		}
	}

	switch matchCount {
	case 1:
		return matchSession, matchJob, nil
	case 0:
		return nil, nil, fmt.Errorf("job not found: %s", ref)
	default:
		return nil, nil, fmt.Errorf("ambiguous job reference %s matches %d jobs", ref, matchCount)
	}
}

// FormatMinutes renders fractional minutes as "1h 23m" or "45m".
func FormatMinutes(minutes float64) string {
	total := int(minutes + 0.5)
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	return fmt.Sprintf("%dh %02dm", total/60, total%60)
}

// FormatMeters renders a material length with one decimal.
func FormatMeters(meters float64) string {
	return fmt.Sprintf("%.1fm", meters)
}

// ShortID trims a UUID to its first block for display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
