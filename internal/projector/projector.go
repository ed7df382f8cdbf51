// Package projector computes the projected finish time for the day's
// declared work and its status against the shift deadline.
package projector

import (
	"fmt"
	"time"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusOnTrack    Status = "on_track"
	StatusWarning    Status = "warning"
	StatusOverdue    Status = "overdue"
)

// WarningThresholdMin is how many minutes before the target the projection
// flips from on-track to warning.
const WarningThresholdMin = 15

// Projection is the result of one finish-time computation.
type Projection struct {
	Status           Status
	FinishTime       time.Time // zero when Status is StatusNotStarted
	TotalWorkMinutes float64   // job processing + extra + cleanup
	OverMinutes      int       // set when Overdue
	RemainingMinutes int       // minutes of slack before the target, zero when Overdue
}

// Project computes the finish time as work start plus the total planned work
// for the day: every job's processing time (completed or not), the
// operator's extra minutes, and the cleanup overhead. Completed jobs keep
// their planned cost so the displayed target does not drift as work is
// ticked off.
func Project(l *models.Ledger) (Projection, error) {
	if !l.WorkStarted || l.WorkStartTime == nil {
		return Projection{Status: StatusNotStarted}, nil
	}

	total := l.TotalProcessingMinutes() + float64(l.ExtraMinutes) + float64(l.TimeSettings.CleanupMin)
	finish := l.WorkStartTime.Add(time.Duration(total * float64(time.Minute)))

	target, err := utils.AtClock(*l.WorkStartTime, l.TargetEndTime)
	if err != nil {
		return Projection{}, fmt.Errorf("invalid target end time %q: %w", l.TargetEndTime, err)
	}
	warningAt := target.Add(-WarningThresholdMin * time.Minute)

	p := Projection{
		FinishTime:       finish,
		TotalWorkMinutes: total,
	}
	switch {
	case finish.After(target):
		p.Status = StatusOverdue
		p.OverMinutes = utils.MinutesBetween(target, finish)
	case finish.After(warningAt):
		p.Status = StatusWarning
		p.RemainingMinutes = utils.MinutesBetween(finish, target)
	default:
		p.Status = StatusOnTrack
		p.RemainingMinutes = utils.MinutesBetween(finish, target)
	}
	return p, nil
}
