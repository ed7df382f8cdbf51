package models

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// FilmSession is the bookkeeping unit for one loaded roll of laminating film
// and the jobs run against it. Used/remaining material is always computed
// from the current job list, never cached, so it cannot drift.
type FilmSession struct {
	ID             string     `json:"id"`
	StartTime      time.Time  `json:"startTime"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	CapacityMeters float64    `json:"filmCapacity"`
	Jobs           []JobRecord `json:"jobs"`
}

// UsedMeters sums the committed material of every job in the session,
// completed or not. Material is reserved when a job is created.
func (s *FilmSession) UsedMeters() float64 {
	var used float64
	for _, j := range s.Jobs {
		used += j.TotalUsageMeters()
	}
	return used
}

// RemainingMeters is capacity minus usage, floored at zero for display.
// Use RemainingMetersRaw to detect overdraw.
func (s *FilmSession) RemainingMeters() float64 {
	if r := s.RemainingMetersRaw(); r > 0 {
		return r
	}
	return 0
}

// RemainingMetersRaw may go negative when jobs commit more material than the
// roll holds.
func (s *FilmSession) RemainingMetersRaw() float64 {
	return s.CapacityMeters - s.UsedMeters()
}

// Status is completed iff the session has jobs and every one is completed.
func (s *FilmSession) Status() SessionStatus {
	if len(s.Jobs) == 0 {
		return SessionActive
	}
	for _, j := range s.Jobs {
		if !j.Completed {
			return SessionActive
		}
	}
	return SessionCompleted
}

// Job returns a pointer to the job with the given id, or nil.
func (s *FilmSession) Job(id string) *JobRecord {
	for i := range s.Jobs {
		if s.Jobs[i].ID == id {
			return &s.Jobs[i]
		}
	}
	return nil
}
