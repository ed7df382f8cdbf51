package cli

import (
	"testing"

	"github.com/ykhara/lamiope/internal/models"
)

func refLedger() *models.Ledger {
	l := models.NewLedger()
	l.Sessions = []models.FilmSession{
		{
			ID:             "aaaa1111-0000-0000-0000-000000000001",
			CapacityMeters: 50,
			Jobs: []models.JobRecord{
				{ID: "bbbb2222-0000-0000-0000-000000000001", Name: "flyers"},
				{ID: "bbbb3333-0000-0000-0000-000000000002", Name: "menus"},
			},
		},
		{
			ID:             "cccc1111-0000-0000-0000-000000000002",
			CapacityMeters: 30,
		},
	}
	l.ActiveSessionID = "cccc1111-0000-0000-0000-000000000002"
	return l
}

func TestResolveSessionActive(t *testing.T) {
	l := refLedger()

	for _, ref := range []string{"", "active"} {
		s, err := ResolveSession(l, ref)
		if err != nil {
			t.Fatalf("ResolveSession(%q) error = %v", ref, err)
		}
		if s.ID != l.ActiveSessionID {
			t.Errorf("ResolveSession(%q) = %s, want active session", ref, s.ID)
		}
	}
}

func TestResolveSessionByPrefix(t *testing.T) {
	l := refLedger()

	s, err := ResolveSession(l, "aaaa")
	if err != nil {
		t.Fatalf("ResolveSession() error = %v", err)
	}
	if s.ID != l.Sessions[0].ID {
		t.Errorf("resolved %s, want %s", s.ID, l.Sessions[0].ID)
	}

	if _, err := ResolveSession(l, "zzzz"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}

func TestResolveSessionAmbiguousPrefix(t *testing.T) {
	l := refLedger()
	l.Sessions[1].ID = "aaaa9999-0000-0000-0000-000000000003"

	if _, err := ResolveSession(l, "aaaa"); err == nil {
		t.Error("expected error for ambiguous prefix")
	}
}

func TestResolveSessionNoActive(t *testing.T) {
	l := models.NewLedger()
	if _, err := ResolveSession(l, ""); err == nil {
		t.Error("expected error when no session is active")
	}
}

func TestResolveJob(t *testing.T) {
	l := refLedger()

	s, j, err := ResolveJob(l, "bbbb3333")
	if err != nil {
		t.Fatalf("ResolveJob() error = %v", err)
	}
	if j.Name != "menus" {
		t.Errorf("resolved job %q, want menus", j.Name)
	}
	if s.ID != l.Sessions[0].ID {
		t.Errorf("owning session = %s, want %s", s.ID, l.Sessions[0].ID)
	}

	if _, _, err := ResolveJob(l, "bbbb"); err == nil {
		t.Error("expected error for ambiguous job prefix")
	}
	if _, _, err := ResolveJob(l, "dddd"); err == nil {
		t.Error("expected error for unknown job")
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{59.6, "1h 00m"},
		{60, "1h 00m"},
		{83, "1h 23m"},
		{125.4, "2h 05m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("aaaa1111-0000-0000-0000-000000000001"); got != "aaaa1111" {
		t.Errorf("ShortID() = %q, want aaaa1111", got)
	}
	if got := ShortID("short"); got != "short" {
		t.Errorf("ShortID() = %q, want short", got)
	}
	if got := ShortID("longidwithoutdashes"); got != "longidwi" {
		t.Errorf("ShortID() = %q, want longidwi", got)
	}
}
