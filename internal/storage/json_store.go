package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ykhara/lamiope/internal/constants"
	"github.com/ykhara/lamiope/internal/ledger"
	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

// Store is the on-disk JSON shape: a version and day stamp wrapped around
// the ledger fields.
type Store struct {
	Version int    `json:"version"`
	Date    string `json:"date"` // YYYY-MM-DD the ledger belongs to
	models.Ledger
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: constants.StoreVersion,
		Date:    utils.Today(),
		Ledger:  *models.NewLedger(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'lamiope init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Version > constants.StoreVersion {
		return fmt.Errorf("storage version %d is newer than supported version %d - please upgrade the application",
			s.store.Version, constants.StoreVersion)
	}

	// Older blobs may predate some settings keys.
	models.ApplyDefaultTimeSettings(&s.store.TimeSettings)
	if s.store.TargetEndTime == "" {
		s.store.TargetEndTime = s.store.TimeSettings.WorkEnd
	}
	s.store.Version = constants.StoreVersion

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the blob to a temp file, reads it back to prove it parses,
// then renames it over the real file. A crash mid-write never leaves a
// truncated ledger behind.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	written, err := os.ReadFile(tmp)
	if err != nil {
		return fmt.Errorf("failed to verify storage: %w", err)
	}
	var check Store
	if err := json.Unmarshal(written, &check); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("written storage does not parse: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

// LoadLedger returns the day's ledger, rolling it over first when the
// stored day is stale.
func (s *JSONStore) LoadLedger() (*models.Ledger, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	if s.store.Date != utils.Today() {
		ledger.ResetDay(&s.store.Ledger)
		s.store.Date = utils.Today()
		if err := s.save(); err != nil {
			return nil, fmt.Errorf("failed to roll ledger over: %w", err)
		}
	}

	return &s.store.Ledger, nil
}

func (s *JSONStore) SaveLedger(l *models.Ledger) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Ledger = *l
	s.store.Date = utils.Today()
	return s.save()
}

func (s *JSONStore) GetTimeSettings() (models.TimeSettings, error) {
	if s.store == nil {
		return models.TimeSettings{}, fmt.Errorf("storage not loaded")
	}

	settings := s.store.TimeSettings
	models.ApplyDefaultTimeSettings(&settings)
	return settings, nil
}

func (s *JSONStore) SaveTimeSettings(settings models.TimeSettings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.TimeSettings = settings
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
