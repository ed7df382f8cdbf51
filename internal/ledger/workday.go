package ledger

import (
	"fmt"
	"time"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

// StartWork begins the day at the given moment. No-op when already started.
func StartWork(l *models.Ledger, at time.Time) bool {
	if l.WorkStarted {
		return false
	}
	l.WorkStarted = true
	l.WorkStartTime = &at
	return true
}

// AutoStartWork begins the day at the configured work-start clock, used
// when the app comes up after the shift has nominally begun.
func AutoStartWork(l *models.Ledger, now time.Time) (bool, error) {
	if l.WorkStarted {
		return false, nil
	}
	start, err := utils.AtClock(now, l.TimeSettings.WorkStart)
	if err != nil {
		return false, fmt.Errorf("invalid work start %q: %w", l.TimeSettings.WorkStart, err)
	}
	l.WorkStarted = true
	l.WorkStartTime = &start
	return true, nil
}

// SetStartTime corrects the work start to the given HH:MM clock today,
// starting the day if it had not begun.
func SetStartTime(l *models.Ledger, clock string) error {
	start, err := utils.AtClock(time.Now(), clock)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdjustment, err)
	}
	l.WorkStarted = true
	l.WorkStartTime = &start
	return nil
}

// ToggleTarget switches the target deadline between the normal shift end
// and the overtime end.
func ToggleTarget(l *models.Ledger) string {
	if l.TargetEndTime == l.TimeSettings.OvertimeEnd {
		l.TargetEndTime = l.TimeSettings.WorkEnd
	} else {
		l.TargetEndTime = l.TimeSettings.OvertimeEnd
	}
	return l.TargetEndTime
}

// AddLunchBreak books the configured lunch break as non-production time and
// returns the minutes added.
func AddLunchBreak(l *models.Ledger) int {
	l.ExtraMinutes += l.TimeSettings.LunchBreakMin
	return l.TimeSettings.LunchBreakMin
}

// AddFilmChangeTime books the configured film-change overhead and returns
// the minutes added.
func AddFilmChangeTime(l *models.Ledger) int {
	l.ExtraMinutes += l.TimeSettings.FilmChangeMin
	return l.TimeSettings.FilmChangeMin
}

// AddSameFilmChangeTime books the cheaper reload of the same film type and
// returns the minutes added.
func AddSameFilmChangeTime(l *models.Ledger) int {
	l.ExtraMinutes += l.TimeSettings.SameFilmChangeMin
	return l.TimeSettings.SameFilmChangeMin
}

// AddManualMinutes books an ad hoc delay.
func AddManualMinutes(l *models.Ledger, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: minutes must be positive, got %d", ErrInvalidAdjustment, minutes)
	}
	l.ExtraMinutes += minutes
	return nil
}

// ResetDay clears the day's sessions and time tracking while carrying the
// operator's settings over. Used for the midnight rollover and the explicit
// clear-day action.
func ResetDay(l *models.Ledger) {
	l.Sessions = nil
	l.ActiveSessionID = ""
	l.ExtraMinutes = 0
	l.WorkStarted = false
	l.WorkStartTime = nil
	l.TargetEndTime = l.TimeSettings.WorkEnd
}
