package models

import "github.com/ykhara/lamiope/internal/constants"

// TimeSettings holds the operator-configurable schedule values consumed by
// the finish-time projection. They persist across day rollovers.
type TimeSettings struct {
	WorkStart         string `json:"workStart"`   // the time the shift starts, e.g. "08:30"
	WorkEnd           string `json:"workEnd"`     // the normal shift deadline, e.g. "17:00"
	OvertimeEnd       string `json:"overtimeEnd"` // the overtime deadline, e.g. "18:00"
	LunchBreakMin     int    `json:"lunchBreak"`
	CleanupMin        int    `json:"cleanupTime"`
	FilmChangeMin     int    `json:"diffFilmChange"` // changing to a different film type
	SameFilmChangeMin int    `json:"sameFilmChange"` // reloading the same film type
}

// DefaultTimeSettings returns the factory schedule values.
func DefaultTimeSettings() TimeSettings {
	return TimeSettings{
		WorkStart:         constants.DefaultWorkStart,
		WorkEnd:           constants.DefaultWorkEnd,
		OvertimeEnd:       constants.DefaultOvertimeEnd,
		LunchBreakMin:     constants.DefaultLunchBreakMin,
		CleanupMin:        constants.DefaultCleanupMin,
		FilmChangeMin:     constants.DefaultFilmChangeMin,
		SameFilmChangeMin: constants.DefaultSameFilmChangeMin,
	}
}
