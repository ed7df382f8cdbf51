package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ykhara/lamiope/internal/constants"
	"github.com/ykhara/lamiope/internal/storage"
)

func initJSONStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lamiope.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return path
}

func initSQLiteStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lamiope.db")
	store := storage.NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreateJSONBackup(t *testing.T) {
	path := initJSONStore(t)
	m := NewManager(path)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup extension = %q, want .json", filepath.Ext(backupPath))
	}
}

func TestCreateSQLiteBackup(t *testing.T) {
	path := initSQLiteStore(t)
	m := NewManager(path)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := m.verify(backupPath); err != nil {
		t.Errorf("backup does not verify: %v", err)
	}
}

func TestCreateMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.Create(); err == nil {
		t.Error("Create() on a missing store returned nil error")
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	path := initJSONStore(t)
	m := NewManager(path)

	// Seed backups with known timestamps.
	names := []string{
		constants.BackupFilePrefix + "20250101-0900.json",
		constants.BackupFilePrefix + "20250301-0900.json",
		constants.BackupFilePrefix + "20250201-0900.json",
	}
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("List() = %d backups, want 3", len(backups))
	}
	if !backups[0].Timestamp.After(backups[1].Timestamp) || !backups[1].Timestamp.After(backups[2].Timestamp) {
		t.Errorf("backups not sorted newest first: %+v", backups)
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	path := initJSONStore(t)
	m := NewManager(path)
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "lamiope-garbage.json", constants.BackupFilePrefix + "20250101-0900.db"} {
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("List() picked up foreign files: %+v", backups)
	}
}

func TestRotateKeepsNewest(t *testing.T) {
	path := initJSONStore(t)
	m := NewManager(path)
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= constants.MaxBackups+3; i++ {
		name := fmt.Sprintf("%s2025%02d01-0900.json", constants.BackupFilePrefix, (i-1)%12+1)
		if i > 12 {
			name = fmt.Sprintf("%s2026%02d01-0900.json", constants.BackupFilePrefix, i-12)
		}
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.rotate(); err != nil {
		t.Fatalf("rotate() error = %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("after rotation %d backups remain, want %d", len(backups), constants.MaxBackups)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	path := initJSONStore(t)
	m := NewManager(path)

	original, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Clobber the live store, then restore.
	if err := os.WriteFile(path, []byte(`{"version":99}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	restored, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != string(original) {
		t.Error("restored store differs from the backed up content")
	}
}

func TestRestoreRejectsCorruptBackup(t *testing.T) {
	path := initJSONStore(t)
	m := NewManager(path)
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	corrupt := filepath.Join(m.BackupDir(), constants.BackupFilePrefix+"20250101-0900.json")
	if err := os.WriteFile(corrupt, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(corrupt); err == nil {
		t.Error("Restore() accepted a corrupt backup")
	}
}

func TestTrimCounter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20250101-0900", "20250101-0900"},
		{"20250101-090015", "20250101-090015"},
		{"20250101-090015-1", "20250101-090015"},
		{"20250101-090015-42", "20250101-090015"},
		{"20250101-0900-abc", "20250101-0900-abc"},
	}
	for _, tt := range tests {
		if got := trimCounter(tt.in); got != tt.want {
			t.Errorf("trimCounter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
