package migration

import (
	"database/sql"
	"strings"
	"testing"
	"testing/fstest"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE film_sessions (id TEXT PRIMARY KEY);"),
		},
		"002_add_settings.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL);"),
		},
	}
}

func TestApplyFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("Apply() = %d migrations, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Both tables exist.
	for _, table := range []string{"film_sessions", "settings"} {
		var count int
		err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("table %s missing after migration (count=%d, err=%v)", table, count, err)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply() = %d migrations, want 0", applied)
	}
}

func TestApplyRejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	if err := runner.ensureVersionTable(); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (99)"); err != nil {
		t.Fatal(err)
	}

	if _, err := runner.Apply(nil); err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("Apply() error = %v, want newer-than-supported", err)
	}
	if err := runner.Validate(); err == nil {
		t.Error("Validate() accepted a newer schema")
	}
}

func TestReadMigrationsRejectsBadFilenames(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			"missing version prefix",
			fstest.MapFS{"init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")}},
		},
		{
			"non-numeric version",
			fstest.MapFS{"abc_init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")}},
		},
		{
			"zero version",
			fstest.MapFS{"000_init.sql": &fstest.MapFile{Data: []byte("SELECT 1;")}},
		},
		{
			"duplicate version",
			fstest.MapFS{
				"001_a.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
				"001_b.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
			},
		},
	}

	db := openTestDB(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(db, tt.fs)
			if _, err := runner.readMigrations(); err == nil {
				t.Error("readMigrations() accepted a bad filename set")
			}
		})
	}
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, testFS())

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error = %v", err)
	}
	if version != 0 {
		t.Errorf("version = %d, want 0 for fresh database", version)
	}
}
