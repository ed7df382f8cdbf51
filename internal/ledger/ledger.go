// Package ledger owns the day's film sessions and the job lifecycle within
// them. Operations take already-validated parameters and report advisory
// conditions as typed errors; turning a warning into a confirmation dialog
// is the caller's job.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ykhara/lamiope/internal/calc"
	"github.com/ykhara/lamiope/internal/models"
)

var (
	// ErrSessionNotFound and ErrJobNotFound are internal consistency
	// failures: identifiers cross the UI boundary as strings, so a stale or
	// mistyped id must abort cleanly instead of mutating anything.
	ErrSessionNotFound = errors.New("film session not found")
	ErrJobNotFound     = errors.New("job not found")

	// ErrInvalidAdjustment marks a rejected capacity/time adjustment.
	ErrInvalidAdjustment = errors.New("invalid adjustment")

	// ErrCreationAborted is returned when the operator cancels capacity
	// entry for a new roll. Entering zero is not a cancellation.
	ErrCreationAborted = errors.New("film session creation aborted")
)

// InsufficientFilmError is advisory: the session's remaining material does
// not cover the job. The operation proceeds only with explicit confirmation
// (operators splice rolls by hand and override routinely).
type InsufficientFilmError struct {
	SessionID       string
	NeededMeters    float64
	RemainingMeters float64
}

func (e *InsufficientFilmError) Error() string {
	return fmt.Sprintf("insufficient film: job needs %.2fm, %.1fm remaining", e.NeededMeters, e.RemainingMeters)
}

// CreateSession appends a new film session for a freshly loaded roll and
// makes it the active session. A capacity of exactly 0 means "unknown, to
// be corrected later" and is permitted.
func CreateSession(l *models.Ledger, capacityMeters float64) (*models.FilmSession, error) {
	if capacityMeters < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative, got %.1f", ErrInvalidAdjustment, capacityMeters)
	}

	session := models.FilmSession{
		ID:             uuid.NewString(),
		StartTime:      time.Now(),
		CapacityMeters: capacityMeters,
	}
	l.Sessions = append(l.Sessions, session)
	l.ActiveSessionID = session.ID
	return &l.Sessions[len(l.Sessions)-1], nil
}

// SetCapacity overwrites a session's roll capacity; remaining material is
// derived, so no job data changes.
func SetCapacity(l *models.Ledger, sessionID string, capacityMeters float64) error {
	if capacityMeters < 0 {
		return fmt.Errorf("%w: capacity must not be negative, got %.1f", ErrInvalidAdjustment, capacityMeters)
	}
	session := l.Session(sessionID)
	if session == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	session.CapacityMeters = capacityMeters
	return nil
}

// AddFilm splices additional material onto a session's roll.
func AddFilm(l *models.Ledger, sessionID string, deltaMeters float64) error {
	if deltaMeters <= 0 {
		return fmt.Errorf("%w: added film must be positive, got %.1f", ErrInvalidAdjustment, deltaMeters)
	}
	session := l.Session(sessionID)
	if session == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	session.CapacityMeters += deltaMeters
	return nil
}

// AdjustFilm applies a signed correction to a session's capacity, floored
// at zero. Used when the operator measures the roll and finds the books off.
func AdjustFilm(l *models.Ledger, sessionID string, deltaMeters float64) error {
	session := l.Session(sessionID)
	if session == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	session.CapacityMeters += deltaMeters
	if session.CapacityMeters < 0 {
		session.CapacityMeters = 0
	}
	return nil
}

// SetRemaining overwrites a session's remaining material by adjusting its
// capacity to current usage plus the measured remainder.
func SetRemaining(l *models.Ledger, sessionID string, remainingMeters float64) error {
	if remainingMeters < 0 {
		return fmt.Errorf("%w: remaining must not be negative, got %.1f", ErrInvalidAdjustment, remainingMeters)
	}
	session := l.Session(sessionID)
	if session == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	session.CapacityMeters = session.UsedMeters() + remainingMeters
	return nil
}

// CloseSession marks a session's roll as unloaded. Used when the operator
// starts a new roll before exhausting the current one.
func CloseSession(l *models.Ledger, sessionID string) error {
	session := l.Session(sessionID)
	if session == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	now := time.Now()
	session.EndTime = &now
	return nil
}

// SelectSession makes an existing session the default target for new jobs.
// The operator may switch back to an older roll at any time.
func SelectSession(l *models.Ledger, sessionID string) error {
	if l.Session(sessionID) == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	l.ActiveSessionID = sessionID
	return nil
}

// AddJob appends a job to a session. Material is committed at creation
// time, so a job that exceeds the remaining material raises
// InsufficientFilmError unless the caller passes confirmed.
func AddJob(l *models.Ledger, sessionID string, job models.JobRecord, confirmed bool) error {
	session := l.Session(sessionID)
	if session == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	needed := job.TotalUsageMeters()
	if !confirmed && session.RemainingMetersRaw() < needed {
		return &InsufficientFilmError{
			SessionID:       sessionID,
			NeededMeters:    needed,
			RemainingMeters: session.RemainingMeters(),
		}
	}

	session.Jobs = append(session.Jobs, job)
	l.ActiveSessionID = sessionID
	return nil
}

// CompleteJob marks a job done. Idempotent; material balance never moves on
// completion because it was committed at creation.
func CompleteJob(l *models.Ledger, sessionID, jobID string) error {
	job, err := findJob(l, sessionID, jobID)
	if err != nil {
		return err
	}
	if job.Completed {
		return nil
	}
	now := time.Now()
	job.Completed = true
	job.CompletedAt = &now
	return nil
}

// UncompleteJob reverts a completed job. Idempotent.
func UncompleteJob(l *models.Ledger, sessionID, jobID string) error {
	job, err := findJob(l, sessionID, jobID)
	if err != nil {
		return err
	}
	job.Completed = false
	job.CompletedAt = nil
	return nil
}

// EditSheetCount corrects a job's sheet count and recomputes its processing
// time. Session usage follows automatically since it is derived.
func EditSheetCount(l *models.Ledger, sessionID, jobID string, sheetCount int) error {
	if sheetCount < 1 {
		return fmt.Errorf("%w: sheet count must be at least 1, got %d", calc.ErrInvalidInput, sheetCount)
	}
	job, err := findJob(l, sessionID, jobID)
	if err != nil {
		return err
	}
	job.SheetCount = sheetCount
	job.ProcessingMinutes = float64(sheetCount) * job.UsageLengthMeters / job.ProcessSpeedMPM
	return nil
}

// DeleteJob removes a job. A session emptied by the deletion is removed
// from the ledger; if it held the active pointer, the pointer falls back to
// the most recently created session that still has open work, or clears.
func DeleteJob(l *models.Ledger, sessionID, jobID string) error {
	session := l.Session(sessionID)
	if session == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}

	idx := -1
	for i := range session.Jobs {
		if session.Jobs[i].ID == jobID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	session.Jobs = append(session.Jobs[:idx], session.Jobs[idx+1:]...)

	if len(session.Jobs) == 0 {
		removeSession(l, sessionID)
	}
	return nil
}

func removeSession(l *models.Ledger, sessionID string) {
	for i := range l.Sessions {
		if l.Sessions[i].ID == sessionID {
			l.Sessions = append(l.Sessions[:i], l.Sessions[i+1:]...)
			break
		}
	}
	if l.ActiveSessionID == sessionID {
		l.ActiveSessionID = ""
		for i := len(l.Sessions) - 1; i >= 0; i-- {
			if l.Sessions[i].Status() == models.SessionActive {
				l.ActiveSessionID = l.Sessions[i].ID
				break
			}
		}
	}
}

func findJob(l *models.Ledger, sessionID, jobID string) (*models.JobRecord, error) {
	session := l.Session(sessionID)
	if session == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	job := session.Job(jobID)
	if job == nil {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return job, nil
}
