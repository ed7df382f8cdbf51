// Package shortage classifies how close a film session is to running out of
// material. Thresholds are fixed, not operator-configurable.
package shortage

import "github.com/ykhara/lamiope/internal/models"

type Level string

const (
	Normal   Level = "normal"
	Low      Level = "low"
	Critical Level = "critical"
	Empty    Level = "empty"
)

const (
	criticalRatio  = 0.10
	criticalMeters = 2.0
	lowRatio       = 0.20
	lowMeters      = 5.0
)

// Classify derives the warning level for a session's remaining material.
// Remaining is evaluated raw (capacity minus all committed usage), so an
// overdrawn roll classifies Empty. A zero-capacity session has no usable
// ratio and is judged on remaining alone.
func Classify(session *models.FilmSession) Level {
	remaining := session.RemainingMetersRaw()

	if remaining <= 0 {
		return Empty
	}
	if session.CapacityMeters == 0 {
		return Normal
	}

	ratio := remaining / session.CapacityMeters
	switch {
	case ratio <= criticalRatio || remaining <= criticalMeters:
		return Critical
	case ratio <= lowRatio || remaining <= lowMeters:
		return Low
	default:
		return Normal
	}
}
