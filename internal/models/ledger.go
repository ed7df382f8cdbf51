package models

import "time"

// Ledger is the day's complete accounting state: every film session, the
// operator's extra time, and the work-start/target bookkeeping the
// finish-time projection runs on. One ledger exists per work day.
type Ledger struct {
	Sessions        []FilmSession `json:"filmSessions"`
	ActiveSessionID string        `json:"currentFilmSessionId,omitempty"`
	ExtraMinutes    int           `json:"extraTime"`
	WorkStarted     bool          `json:"workStarted"`
	WorkStartTime   *time.Time    `json:"workStartTime,omitempty"`
	TargetEndTime   string        `json:"targetEndTime"` // HH:MM
	TimeSettings    TimeSettings  `json:"timeSettings"`
}

// NewLedger returns an empty ledger with default time settings and the
// normal shift end as target.
func NewLedger() *Ledger {
	ts := DefaultTimeSettings()
	return &Ledger{
		TargetEndTime: ts.WorkEnd,
		TimeSettings:  ts,
	}
}

// Session returns a pointer to the session with the given id, or nil.
func (l *Ledger) Session(id string) *FilmSession {
	for i := range l.Sessions {
		if l.Sessions[i].ID == id {
			return &l.Sessions[i]
		}
	}
	return nil
}

// ActiveSession returns the session new jobs are appended to by default,
// or nil when no session is selected.
func (l *Ledger) ActiveSession() *FilmSession {
	if l.ActiveSessionID == "" {
		return nil
	}
	return l.Session(l.ActiveSessionID)
}

// TotalProcessingMinutes sums processing time over all jobs in all sessions,
// completed or not. The projection is total planned work for the day, not a
// live countdown.
func (l *Ledger) TotalProcessingMinutes() float64 {
	var total float64
	for i := range l.Sessions {
		for _, j := range l.Sessions[i].Jobs {
			total += j.ProcessingMinutes
		}
	}
	return total
}

// CompletedJobs returns every completed job paired with its session,
// in session creation order then job insertion order.
func (l *Ledger) CompletedJobs() []SessionJob {
	var out []SessionJob
	for i := range l.Sessions {
		for k := range l.Sessions[i].Jobs {
			if l.Sessions[i].Jobs[k].Completed {
				out = append(out, SessionJob{Session: &l.Sessions[i], Job: &l.Sessions[i].Jobs[k]})
			}
		}
	}
	return out
}

// SessionsNewestFirst returns the sessions in display order, newest first.
// Sessions are stored and iterated in creation order everywhere else.
func (l *Ledger) SessionsNewestFirst() []*FilmSession {
	out := make([]*FilmSession, 0, len(l.Sessions))
	for i := len(l.Sessions) - 1; i >= 0; i-- {
		out = append(out, &l.Sessions[i])
	}
	return out
}

// JobCount returns the number of jobs across all sessions.
func (l *Ledger) JobCount() int {
	n := 0
	for i := range l.Sessions {
		n += len(l.Sessions[i].Jobs)
	}
	return n
}

// SessionJob pairs a job with the session that owns it.
type SessionJob struct {
	Session *FilmSession
	Job     *JobRecord
}
