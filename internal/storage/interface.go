package storage

import "github.com/ykhara/lamiope/internal/models"

// Provider persists the day ledger and the operator's time settings.
// Implementations roll the ledger over when the stored day is not today:
// sessions and time tracking are cleared, settings carry over.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Ledger
	LoadLedger() (*models.Ledger, error)
	SaveLedger(*models.Ledger) error

	// Settings
	GetTimeSettings() (models.TimeSettings, error)
	SaveTimeSettings(models.TimeSettings) error

	// Utils
	GetConfigPath() string
}
