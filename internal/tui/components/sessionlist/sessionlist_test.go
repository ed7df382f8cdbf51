package sessionlist

import (
	"testing"

	"github.com/ykhara/lamiope/internal/models"
)

func TestBuildItemsNewestFirst(t *testing.T) {
	l := models.NewLedger()
	l.Sessions = []models.FilmSession{
		{ID: "older-roll", CapacityMeters: 50},
		{ID: "newer-roll", CapacityMeters: 30},
	}
	l.ActiveSessionID = "newer-roll"

	items := buildItems(l)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}

	first := items[0].(Item)
	second := items[1].(Item)
	if first.Session.ID != "newer-roll" || second.Session.ID != "older-roll" {
		t.Errorf("item order = %s, %s; want newest first", first.Session.ID, second.Session.ID)
	}
	if !first.IsActive || second.IsActive {
		t.Error("active marker on the wrong session")
	}
}

func TestBuildItemsNilLedger(t *testing.T) {
	if items := buildItems(nil); len(items) != 0 {
		t.Errorf("got %d items for a nil ledger", len(items))
	}
}
