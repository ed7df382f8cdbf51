package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ykhara/lamiope/internal/constants"
	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
	"github.com/ykhara/lamiope/internal/validation"
)

// Snapshot is the transfer format: the ledger plus versioning so another
// machine can refuse blobs it does not understand.
type Snapshot struct {
	Version    int       `json:"version"`
	Date       string    `json:"date"`
	ExportedAt time.Time `json:"exportedAt"`
	models.Ledger
}

// WriteJSON writes the ledger as an indented snapshot.
func WriteJSON(w io.Writer, l *models.Ledger) error {
	snap := Snapshot{
		Version:    constants.StoreVersion,
		Date:       utils.Today(),
		ExportedAt: time.Now(),
		Ledger:     *l,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadJSON parses a snapshot and checks it for internal consistency
// before handing it back. A snapshot with conflicts is rejected wholesale
// rather than half imported.
func ReadJSON(r io.Reader) (*models.Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if snap.Version > constants.StoreVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d - please upgrade the application",
			snap.Version, constants.StoreVersion)
	}
	// An arbitrary JSON object decodes to a zero snapshot. Require the
	// version marker and the ledger shape before replacing any state.
	if snap.Version <= 0 {
		return nil, fmt.Errorf("not a lamiope snapshot: missing or invalid version marker")
	}
	for _, key := range []string{"filmSessions", "timeSettings"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("not a lamiope snapshot: missing %q", key)
		}
	}

	models.ApplyDefaultTimeSettings(&snap.TimeSettings)
	if snap.TargetEndTime == "" {
		snap.TargetEndTime = snap.TimeSettings.WorkEnd
	}

	l := snap.Ledger
	if result := validation.New().ValidateLedger(&l); result.HasConflicts() {
		return nil, fmt.Errorf("snapshot failed consistency checks:\n%s", result.FormatReport())
	}

	return &l, nil
}
