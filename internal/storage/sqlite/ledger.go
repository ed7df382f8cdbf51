package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ykhara/lamiope/internal/ledger"
	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

// LoadLedger reads the single day ledger with its sessions and jobs. A
// stale day stamp triggers the rollover: sessions and time tracking are
// cleared, settings carry over.
func (s *Store) LoadLedger() (*models.Ledger, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	l := models.NewLedger()

	settings, err := s.GetTimeSettings()
	if err == nil {
		models.ApplyDefaultTimeSettings(&settings)
		l.TimeSettings = settings
		l.TargetEndTime = settings.WorkEnd
	}

	var date, workStartTime, targetEnd sql.NullString
	row := s.db.QueryRow(`
		SELECT date, active_session_id, extra_minutes, work_started, work_start_time, target_end_time
		FROM ledger WHERE id = 1`)
	err = row.Scan(&date, &l.ActiveSessionID, &l.ExtraMinutes, &l.WorkStarted, &workStartTime, &targetEnd)
	if err == sql.ErrNoRows {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}

	if workStartTime.Valid && workStartTime.String != "" {
		t, err := time.Parse(time.RFC3339, workStartTime.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse work start time: %w", err)
		}
		local := t.Local()
		l.WorkStartTime = &local
	}
	if targetEnd.Valid && targetEnd.String != "" {
		l.TargetEndTime = targetEnd.String
	}

	if err := s.loadSessions(l); err != nil {
		return nil, err
	}

	if !date.Valid || date.String != utils.Today() {
		ledger.ResetDay(l)
		if err := s.SaveLedger(l); err != nil {
			return nil, fmt.Errorf("failed to roll ledger over: %w", err)
		}
	}

	return l, nil
}

func (s *Store) loadSessions(l *models.Ledger) error {
	rows, err := s.db.Query(`
		SELECT id, start_time, end_time, film_capacity
		FROM film_sessions ORDER BY position`)
	if err != nil {
		return fmt.Errorf("failed to read sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fs models.FilmSession
		var startTime string
		var endTime sql.NullString
		if err := rows.Scan(&fs.ID, &startTime, &endTime, &fs.CapacityMeters); err != nil {
			return fmt.Errorf("failed to scan session: %w", err)
		}

		t, err := time.Parse(time.RFC3339, startTime)
		if err != nil {
			return fmt.Errorf("failed to parse session start time: %w", err)
		}
		fs.StartTime = t.Local()
		if endTime.Valid && endTime.String != "" {
			e, err := time.Parse(time.RFC3339, endTime.String)
			if err != nil {
				return fmt.Errorf("failed to parse session end time: %w", err)
			}
			local := e.Local()
			fs.EndTime = &local
		}

		l.Sessions = append(l.Sessions, fs)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate sessions: %w", err)
	}

	for i := range l.Sessions {
		if err := s.loadJobs(&l.Sessions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) loadJobs(fs *models.FilmSession) error {
	rows, err := s.db.Query(`
		SELECT id, name, created_at, sheets, paper_length, overlap_width, process_speed,
		       usage_length, processing_time, completed, completed_at
		FROM jobs WHERE session_id = ? ORDER BY position`, fs.ID)
	if err != nil {
		return fmt.Errorf("failed to read jobs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var j models.JobRecord
		var createdAt string
		var completedAt sql.NullString
		err := rows.Scan(
			&j.ID, &j.Name, &createdAt, &j.SheetCount, &j.PaperLengthMm, &j.OverlapWidthMm,
			&j.ProcessSpeedMPM, &j.UsageLengthMeters, &j.ProcessingMinutes, &j.Completed, &completedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan job: %w", err)
		}

		t, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return fmt.Errorf("failed to parse job timestamp: %w", err)
		}
		j.CreatedAt = t.Local()
		if completedAt.Valid && completedAt.String != "" {
			c, err := time.Parse(time.RFC3339, completedAt.String)
			if err != nil {
				return fmt.Errorf("failed to parse job completion time: %w", err)
			}
			local := c.Local()
			j.CompletedAt = &local
		}

		fs.Jobs = append(fs.Jobs, j)
	}
	return rows.Err()
}

// SaveLedger replaces the stored ledger wholesale inside one transaction.
// The data set is one operator's day, so a full rewrite stays cheap.
func (s *Store) SaveLedger(l *models.Ledger) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM jobs", "DELETE FROM film_sessions", "DELETE FROM ledger"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to clear ledger: %w", err)
		}
	}

	var workStartTime any
	if l.WorkStartTime != nil {
		workStartTime = l.WorkStartTime.UTC().Format(time.RFC3339)
	}
	_, err = tx.Exec(`
		INSERT INTO ledger (id, date, active_session_id, extra_minutes, work_started, work_start_time, target_end_time)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		utils.Today(), l.ActiveSessionID, l.ExtraMinutes, l.WorkStarted, workStartTime, l.TargetEndTime)
	if err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}

	sessionStmt, err := tx.Prepare(`
		INSERT INTO film_sessions (id, position, start_time, end_time, film_capacity)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer sessionStmt.Close()

	jobStmt, err := tx.Prepare(`
		INSERT INTO jobs (id, session_id, position, name, created_at, sheets, paper_length,
		                  overlap_width, process_speed, usage_length, processing_time, completed, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer jobStmt.Close()

	for pos := range l.Sessions {
		fs := &l.Sessions[pos]
		var endTime any
		if fs.EndTime != nil {
			endTime = fs.EndTime.UTC().Format(time.RFC3339)
		}
		if _, err := sessionStmt.Exec(fs.ID, pos, fs.StartTime.UTC().Format(time.RFC3339), endTime, fs.CapacityMeters); err != nil {
			return fmt.Errorf("failed to write session %s: %w", fs.ID, err)
		}

		for jpos, j := range fs.Jobs {
			var completedAt any
			if j.CompletedAt != nil {
				completedAt = j.CompletedAt.UTC().Format(time.RFC3339)
			}
			_, err := jobStmt.Exec(
				j.ID, fs.ID, jpos, j.Name, j.CreatedAt.UTC().Format(time.RFC3339), j.SheetCount,
				j.PaperLengthMm, j.OverlapWidthMm, j.ProcessSpeedMPM, j.UsageLengthMeters,
				j.ProcessingMinutes, j.Completed, completedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to write job %s: %w", j.ID, err)
			}
		}
	}

	// Settings live in their own table but travel with the ledger in memory.
	if err := saveSettingsTx(tx, l.TimeSettings); err != nil {
		return err
	}

	return tx.Commit()
}
