package validation

import (
	"fmt"
	"math"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

// ConflictType represents the type of ledger inconsistency
type ConflictType string

const (
	ConflictDuplicateJobID      ConflictType = "duplicate_job_id"
	ConflictDanglingActive      ConflictType = "dangling_active_session"
	ConflictDerivedValueDrift   ConflictType = "derived_value_drift"
	ConflictCompletionMismatch  ConflictType = "completion_mismatch"
	ConflictInvalidJobValues    ConflictType = "invalid_job_values"
	ConflictInvalidClock        ConflictType = "invalid_clock"
	ConflictNegativeCapacity    ConflictType = "negative_capacity"
	ConflictMaterialOverdraw    ConflictType = "material_overdraw"
	ConflictStartedWithoutClock ConflictType = "work_started_without_time"
)

// Conflict represents a detected inconsistency in the day's ledger
type Conflict struct {
	Type        ConflictType
	Description string
	SessionID   string   // session involved (if applicable)
	JobIDs      []string // jobs involved (for auto-fixing)
	Fixable     bool
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No inconsistencies detected."
	}

	report := "Inconsistencies detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks a ledger for internal inconsistencies
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

const driftTolerance = 1e-6

// ValidateLedger checks the full day ledger: session and job identity,
// derived material/time values, completion flags, and clock settings.
func (v *Validator) ValidateLedger(l *models.Ledger) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if l == nil {
		return result
	}

	if l.ActiveSessionID != "" && l.Session(l.ActiveSessionID) == nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDanglingActive,
			Description: fmt.Sprintf("Active session %q does not exist", l.ActiveSessionID),
			SessionID:   l.ActiveSessionID,
			Fixable:     true,
		})
	}

	if l.WorkStarted && l.WorkStartTime == nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictStartedWithoutClock,
			Description: "Work day is marked started but has no start time",
			Fixable:     true,
		})
	}

	seen := make(map[string]string) // job id -> session id of first sighting
	for i := range l.Sessions {
		s := &l.Sessions[i]
		v.validateSession(s, seen, &result)
	}

	clocks := map[string]string{
		"target end":   l.TargetEndTime,
		"work start":   l.TimeSettings.WorkStart,
		"work end":     l.TimeSettings.WorkEnd,
		"overtime end": l.TimeSettings.OvertimeEnd,
	}
	for label, clock := range clocks {
		if clock != "" && !utils.ValidateClockFormat(clock) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidClock,
				Description: fmt.Sprintf("Invalid %s clock: %q", label, clock),
			})
		}
	}

	v.validateWorkWindow(l, &result)

	return result
}

// validateWorkWindow checks the ordering of the day's clocks. The window
// wraps nothing: work end must fall after work start, and the overtime
// end must not fall before the regular end.
func (v *Validator) validateWorkWindow(l *models.Ledger, result *ValidationResult) {
	start, err := utils.ClockToMinutes(l.TimeSettings.WorkStart)
	if err != nil {
		return
	}
	end, err := utils.ClockToMinutes(l.TimeSettings.WorkEnd)
	if err != nil {
		return
	}
	if end <= start {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictInvalidClock,
			Description: fmt.Sprintf("Work end %s is not after work start %s",
				l.TimeSettings.WorkEnd, l.TimeSettings.WorkStart),
		})
	}
	if overtime, err := utils.ClockToMinutes(l.TimeSettings.OvertimeEnd); err == nil && overtime < end {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictInvalidClock,
			Description: fmt.Sprintf("Overtime end %s falls before work end %s",
				l.TimeSettings.OvertimeEnd, l.TimeSettings.WorkEnd),
		})
	}
}

func (v *Validator) validateSession(s *models.FilmSession, seen map[string]string, result *ValidationResult) {
	if s.CapacityMeters < 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictNegativeCapacity,
			Description: fmt.Sprintf("Session %s has negative film capacity %.1fm", s.ID, s.CapacityMeters),
			SessionID:   s.ID,
		})
	}

	if s.CapacityMeters > 0 && s.RemainingMetersRaw() < -driftTolerance {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictMaterialOverdraw,
			Description: fmt.Sprintf("Session %s jobs commit %.1fm against a %.1fm roll",
				s.ID, s.UsedMeters(), s.CapacityMeters),
			SessionID: s.ID,
		})
	}

	for i := range s.Jobs {
		j := &s.Jobs[i]

		if prev, dup := seen[j.ID]; dup {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateJobID,
				Description: fmt.Sprintf("Job id %s appears in sessions %s and %s", j.ID, prev, s.ID),
				SessionID:   s.ID,
				JobIDs:      []string{j.ID},
			})
		} else {
			seen[j.ID] = s.ID
		}

		if j.SheetCount < 1 || j.PaperLengthMm <= 0 || j.ProcessSpeedMPM <= 0 ||
			j.OverlapWidthMm < 0 || j.OverlapWidthMm >= j.PaperLengthMm {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictInvalidJobValues,
				Description: fmt.Sprintf("Job %s has invalid inputs (sheets=%d paper=%.0fmm overlap=%.0fmm speed=%.1fm/min)",
					j.ID, j.SheetCount, j.PaperLengthMm, j.OverlapWidthMm, j.ProcessSpeedMPM),
				SessionID: s.ID,
				JobIDs:    []string{j.ID},
			})
			continue
		}

		wantUsage := (j.PaperLengthMm - j.OverlapWidthMm) / 1000
		wantProcessing := float64(j.SheetCount) * wantUsage / j.ProcessSpeedMPM
		if math.Abs(j.UsageLengthMeters-wantUsage) > driftTolerance ||
			math.Abs(j.ProcessingMinutes-wantProcessing) > driftTolerance {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictDerivedValueDrift,
				Description: fmt.Sprintf("Job %s stored usage/time drifted from its inputs (have %.4fm/%.4fmin, want %.4fm/%.4fmin)",
					j.ID, j.UsageLengthMeters, j.ProcessingMinutes, wantUsage, wantProcessing),
				SessionID: s.ID,
				JobIDs:    []string{j.ID},
				Fixable:   true,
			})
		}

		if j.Completed != (j.CompletedAt != nil) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictCompletionMismatch,
				Description: fmt.Sprintf("Job %s completion flag and timestamp disagree", j.ID),
				SessionID:   s.ID,
				JobIDs:      []string{j.ID},
				Fixable:     true,
			})
		}
	}
}

// AutoFix repairs the fixable conflicts in place and returns the actions
// taken. Unfixable conflicts (bad inputs, overdraw) are left for the
// operator.
func (v *Validator) AutoFix(l *models.Ledger, result ValidationResult) []FixAction {
	var actions []FixAction

	for _, c := range result.Conflicts {
		if !c.Fixable {
			continue
		}
		switch c.Type {
		case ConflictDanglingActive:
			l.ActiveSessionID = ""
			for i := range l.Sessions {
				if l.Sessions[i].Status() == models.SessionActive {
					l.ActiveSessionID = l.Sessions[i].ID
				}
			}
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Repointed active session to %q", l.ActiveSessionID),
				SourceConflict: c,
			})

		case ConflictStartedWithoutClock:
			l.WorkStarted = false
			actions = append(actions, FixAction{
				Action:         "Cleared the started flag; start the day again to record a time",
				SourceConflict: c,
			})

		case ConflictDerivedValueDrift:
			if j := findJob(l, c.SessionID, c.JobIDs); j != nil {
				j.UsageLengthMeters = (j.PaperLengthMm - j.OverlapWidthMm) / 1000
				j.ProcessingMinutes = float64(j.SheetCount) * j.UsageLengthMeters / j.ProcessSpeedMPM
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Recomputed usage and processing time for job %s", j.ID),
					SourceConflict: c,
				})
			}

		case ConflictCompletionMismatch:
			if j := findJob(l, c.SessionID, c.JobIDs); j != nil {
				// The timestamp is the source of truth.
				j.Completed = j.CompletedAt != nil
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Aligned completion flag with timestamp for job %s", j.ID),
					SourceConflict: c,
				})
			}
		}
	}

	return actions
}

func findJob(l *models.Ledger, sessionID string, jobIDs []string) *models.JobRecord {
	if len(jobIDs) == 0 {
		return nil
	}
	s := l.Session(sessionID)
	if s == nil {
		return nil
	}
	return s.Job(jobIDs[0])
}
