package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ykhara/lamiope/internal/models"
)

func (s *Store) GetTimeSettings() (models.TimeSettings, error) {
	if s.db == nil {
		return models.TimeSettings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.TimeSettings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.TimeSettings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.TimeSettings{}, err
	}

	if len(data) == 0 {
		return models.TimeSettings{}, fmt.Errorf("settings not found")
	}

	return models.MapToTimeSettings(data)
}

func (s *Store) SaveTimeSettings(settings models.TimeSettings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveSettingsTx(tx, settings); err != nil {
		return err
	}
	return tx.Commit()
}

func saveSettingsTx(tx *sql.Tx, settings models.TimeSettings) error {
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range models.TimeSettingsToMap(settings) {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}
	return nil
}
