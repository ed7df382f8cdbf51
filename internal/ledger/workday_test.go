package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/ykhara/lamiope/internal/models"
)

func TestStartWork(t *testing.T) {
	l := models.NewLedger()
	at := time.Date(2025, 3, 10, 9, 12, 0, 0, time.Local)

	if !StartWork(l, at) {
		t.Fatal("StartWork() = false on a fresh ledger")
	}
	if !l.WorkStarted || l.WorkStartTime == nil || !l.WorkStartTime.Equal(at) {
		t.Errorf("work start not recorded: started=%v time=%v", l.WorkStarted, l.WorkStartTime)
	}

	later := at.Add(30 * time.Minute)
	if StartWork(l, later) {
		t.Error("StartWork() = true on an already started day")
	}
	if !l.WorkStartTime.Equal(at) {
		t.Error("second StartWork() moved the recorded start")
	}
}

func TestAutoStartWork(t *testing.T) {
	l := models.NewLedger()
	now := time.Date(2025, 3, 10, 10, 3, 0, 0, time.Local)

	started, err := AutoStartWork(l, now)
	if err != nil || !started {
		t.Fatalf("AutoStartWork() = %v, %v", started, err)
	}
	// Anchored at the configured shift start, not at "now".
	want := time.Date(2025, 3, 10, 8, 30, 0, 0, time.Local)
	if !l.WorkStartTime.Equal(want) {
		t.Errorf("start = %v, want %v", l.WorkStartTime, want)
	}

	started, err = AutoStartWork(l, now)
	if err != nil || started {
		t.Errorf("AutoStartWork() on started day = %v, %v, want false, nil", started, err)
	}

	bad := models.NewLedger()
	bad.TimeSettings.WorkStart = "8:3x"
	if _, err := AutoStartWork(bad, now); err == nil {
		t.Error("AutoStartWork() with malformed clock returned nil error")
	}
}

func TestSetStartTime(t *testing.T) {
	l := models.NewLedger()
	if err := SetStartTime(l, "07:45"); err != nil {
		t.Fatalf("SetStartTime() error = %v", err)
	}
	if !l.WorkStarted {
		t.Error("SetStartTime() did not start the day")
	}
	if got := l.WorkStartTime.Format("15:04"); got != "07:45" {
		t.Errorf("start clock = %q, want 07:45", got)
	}

	if err := SetStartTime(l, "25:00"); !errors.Is(err, ErrInvalidAdjustment) {
		t.Errorf("SetStartTime(25:00) error = %v, want ErrInvalidAdjustment", err)
	}
}

func TestToggleTarget(t *testing.T) {
	l := models.NewLedger()
	if l.TargetEndTime != l.TimeSettings.WorkEnd {
		t.Fatalf("fresh target = %q, want work end", l.TargetEndTime)
	}
	if got := ToggleTarget(l); got != l.TimeSettings.OvertimeEnd {
		t.Errorf("first toggle = %q, want overtime end", got)
	}
	if got := ToggleTarget(l); got != l.TimeSettings.WorkEnd {
		t.Errorf("second toggle = %q, want work end again", got)
	}
}

func TestExtraTimeBooking(t *testing.T) {
	l := models.NewLedger()

	if got := AddLunchBreak(l); got != 60 {
		t.Errorf("AddLunchBreak() = %d, want default 60", got)
	}
	if got := AddFilmChangeTime(l); got != 15 {
		t.Errorf("AddFilmChangeTime() = %d, want default 15", got)
	}
	if err := AddManualMinutes(l, 20); err != nil {
		t.Fatalf("AddManualMinutes() error = %v", err)
	}
	if l.ExtraMinutes != 95 {
		t.Errorf("extra minutes = %d, want 95", l.ExtraMinutes)
	}

	for _, n := range []int{0, -10} {
		if err := AddManualMinutes(l, n); !errors.Is(err, ErrInvalidAdjustment) {
			t.Errorf("AddManualMinutes(%d) error = %v, want ErrInvalidAdjustment", n, err)
		}
	}
	if l.ExtraMinutes != 95 {
		t.Error("rejected booking still changed extra minutes")
	}
}

func TestResetDay(t *testing.T) {
	l := models.NewLedger()
	l.TimeSettings.CleanupMin = 25
	s, _ := CreateSession(l, 50)
	if err := AddJob(l, s.ID, mustJob(t, 5, 300, 10, 5), false); err != nil {
		t.Fatal(err)
	}
	StartWork(l, time.Now())
	AddLunchBreak(l)
	ToggleTarget(l)

	ResetDay(l)

	if len(l.Sessions) != 0 || l.ActiveSessionID != "" {
		t.Error("ResetDay() left sessions behind")
	}
	if l.ExtraMinutes != 0 || l.WorkStarted || l.WorkStartTime != nil {
		t.Error("ResetDay() left time tracking behind")
	}
	if l.TargetEndTime != l.TimeSettings.WorkEnd {
		t.Errorf("target = %q, want reset to work end", l.TargetEndTime)
	}
	// Operator settings survive the rollover.
	if l.TimeSettings.CleanupMin != 25 {
		t.Error("ResetDay() discarded the operator's settings")
	}
}
