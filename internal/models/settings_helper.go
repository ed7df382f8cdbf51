package models

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/constants"
)

// MapToTimeSettings converts a map of key-value pairs to a TimeSettings struct.
func MapToTimeSettings(data map[string]string) (TimeSettings, error) {
	settings := TimeSettings{}

	for key, value := range data {
		switch key {
		case constants.SettingWorkStart:
			settings.WorkStart = value
		case constants.SettingWorkEnd:
			settings.WorkEnd = value
		case constants.SettingOvertimeEnd:
			settings.OvertimeEnd = value
		case constants.SettingLunchBreakMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.LunchBreakMin); err != nil {
				return TimeSettings{}, fmt.Errorf("parsing lunch_break_min: %w", err)
			}
		case constants.SettingCleanupMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.CleanupMin); err != nil {
				return TimeSettings{}, fmt.Errorf("parsing cleanup_min: %w", err)
			}
		case constants.SettingFilmChangeMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.FilmChangeMin); err != nil {
				return TimeSettings{}, fmt.Errorf("parsing film_change_min: %w", err)
			}
		case constants.SettingSameFilmChangeMin:
			if _, err := fmt.Sscanf(value, "%d", &settings.SameFilmChangeMin); err != nil {
				return TimeSettings{}, fmt.Errorf("parsing same_film_change_min: %w", err)
			}
		}
	}
	return settings, nil
}

// TimeSettingsToMap converts a TimeSettings struct to a map of key-value pairs.
func TimeSettingsToMap(settings TimeSettings) map[string]string {
	return map[string]string{
		constants.SettingWorkStart:         settings.WorkStart,
		constants.SettingWorkEnd:           settings.WorkEnd,
		constants.SettingOvertimeEnd:       settings.OvertimeEnd,
		constants.SettingLunchBreakMin:     fmt.Sprintf("%d", settings.LunchBreakMin),
		constants.SettingCleanupMin:        fmt.Sprintf("%d", settings.CleanupMin),
		constants.SettingFilmChangeMin:     fmt.Sprintf("%d", settings.FilmChangeMin),
		constants.SettingSameFilmChangeMin: fmt.Sprintf("%d", settings.SameFilmChangeMin),
	}
}

// ApplyDefaultTimeSettings applies default values to missing settings.
func ApplyDefaultTimeSettings(settings *TimeSettings) {
	if settings.WorkStart == "" {
		settings.WorkStart = constants.DefaultWorkStart
	}
	if settings.WorkEnd == "" {
		settings.WorkEnd = constants.DefaultWorkEnd
	}
	if settings.OvertimeEnd == "" {
		settings.OvertimeEnd = constants.DefaultOvertimeEnd
	}
	if settings.LunchBreakMin == 0 {
		settings.LunchBreakMin = constants.DefaultLunchBreakMin
	}
	if settings.CleanupMin == 0 {
		settings.CleanupMin = constants.DefaultCleanupMin
	}
	if settings.FilmChangeMin == 0 {
		settings.FilmChangeMin = constants.DefaultFilmChangeMin
	}
	if settings.SameFilmChangeMin == 0 {
		settings.SameFilmChangeMin = constants.DefaultSameFilmChangeMin
	}
}
