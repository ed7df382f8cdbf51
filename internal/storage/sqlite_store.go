package storage

import (
	"database/sql"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		store: sqlite.NewStore(path),
	}
}

func (s *SQLiteStore) Init() error {
	return s.store.Init()
}

func (s *SQLiteStore) Load() error {
	return s.store.Load()
}

func (s *SQLiteStore) Close() error {
	return s.store.Close()
}

func (s *SQLiteStore) LoadLedger() (*models.Ledger, error) {
	return s.store.LoadLedger()
}

func (s *SQLiteStore) SaveLedger(l *models.Ledger) error {
	return s.store.SaveLedger(l)
}

func (s *SQLiteStore) GetTimeSettings() (models.TimeSettings, error) {
	return s.store.GetTimeSettings()
}

func (s *SQLiteStore) SaveTimeSettings(settings models.TimeSettings) error {
	return s.store.SaveTimeSettings(settings)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.store.GetConfigPath()
}

// DB exposes the underlying connection for maintenance commands that need
// raw access, such as the online backup.
func (s *SQLiteStore) DB() *sql.DB {
	return s.store.GetDB()
}
