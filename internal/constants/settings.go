package constants

const (
	// Time Settings
	SettingWorkStart         = "work_start"
	SettingWorkEnd           = "work_end"
	SettingOvertimeEnd       = "overtime_end"
	SettingLunchBreakMin     = "lunch_break_min"
	SettingCleanupMin        = "cleanup_min"
	SettingFilmChangeMin     = "film_change_min"
	SettingSameFilmChangeMin = "same_film_change_min"

	// Default Settings Values
	DefaultWorkStart         = "08:30"
	DefaultWorkEnd           = "17:00"
	DefaultOvertimeEnd       = "18:00"
	DefaultLunchBreakMin     = 60
	DefaultCleanupMin        = 15
	DefaultFilmChangeMin     = 15
	DefaultSameFilmChangeMin = 10
)
