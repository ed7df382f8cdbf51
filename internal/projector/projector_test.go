package projector

import (
	"math"
	"testing"
	"time"

	"github.com/ykhara/lamiope/internal/models"
)

func startedLedger(t *testing.T, startClock string, processingMinutes float64, extra int) *models.Ledger {
	t.Helper()
	l := models.NewLedger()
	parsed, err := time.Parse("15:04", startClock)
	if err != nil {
		t.Fatalf("bad start clock %q", startClock)
	}
	start := time.Date(2026, 3, 14, parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
	l.WorkStarted = true
	l.WorkStartTime = &start
	l.ExtraMinutes = extra
	if processingMinutes > 0 {
		l.Sessions = []models.FilmSession{{
			ID:             "s1",
			StartTime:      start,
			CapacityMeters: 100,
			Jobs:           []models.JobRecord{{ID: "j1", SheetCount: 1, UsageLengthMeters: 1, ProcessingMinutes: processingMinutes}},
		}}
	}
	return l
}

func TestProjectNotStarted(t *testing.T) {
	l := models.NewLedger()
	p, err := Project(l)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if p.Status != StatusNotStarted {
		t.Errorf("status = %v, want %v", p.Status, StatusNotStarted)
	}
	if !p.FinishTime.IsZero() {
		t.Errorf("finish time = %v, want zero", p.FinishTime)
	}
}

func TestProjectAdditivity(t *testing.T) {
	// 08:30 start + 5.8 min processing + 60 min lunch + 15 min cleanup
	l := startedLedger(t, "08:30", 5.8, 60)
	p, err := Project(l)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if math.Abs(p.TotalWorkMinutes-80.8) > 1e-9 {
		t.Errorf("total work minutes = %v, want 80.8", p.TotalWorkMinutes)
	}
	want := l.WorkStartTime.Add(time.Duration(80.8 * float64(time.Minute)))
	if !p.FinishTime.Equal(want) {
		t.Errorf("finish time = %v, want %v", p.FinishTime, want)
	}
	if p.Status != StatusOnTrack {
		t.Errorf("status = %v, want %v", p.Status, StatusOnTrack)
	}
}

func TestProjectCountsCompletedJobs(t *testing.T) {
	l := startedLedger(t, "08:30", 120, 0)
	before, err := Project(l)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	l.Sessions[0].Jobs[0].Completed = true
	after, err := Project(l)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if !before.FinishTime.Equal(after.FinishTime) {
		t.Errorf("finish time moved on completion: %v -> %v", before.FinishTime, after.FinishTime)
	}
}

func TestProjectStatusBoundaries(t *testing.T) {
	// Target is 17:00, warning threshold 16:45, cleanup 15 min is always added.
	tests := []struct {
		name              string
		processingMinutes float64
		extra             int
		want              Status
		wantOver          int
		wantRemaining     int
	}{
		{
			// finish 09:45, a whole work day of slack
			name:              "well inside the day",
			processingMinutes: 60,
			want:              StatusOnTrack,
			wantRemaining:     435,
		},
		{
			// 08:30 + 480 + 15 = 16:45 exactly, not after the threshold
			name:              "exactly at warning threshold",
			processingMinutes: 480,
			want:              StatusOnTrack,
			wantRemaining:     15,
		},
		{
			// 16:50, inside the warning band
			name:              "inside warning band",
			processingMinutes: 485,
			want:              StatusWarning,
			wantRemaining:     10,
		},
		{
			// 17:00 exactly still counts as meeting the target
			name:              "exactly at target",
			processingMinutes: 495,
			want:              StatusWarning,
			wantRemaining:     0,
		},
		{
			// 17:30
			name:              "past target",
			processingMinutes: 525,
			want:              StatusOverdue,
			wantOver:          30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := startedLedger(t, "08:30", tt.processingMinutes, tt.extra)
			p, err := Project(l)
			if err != nil {
				t.Fatalf("Project() error = %v", err)
			}
			if p.Status != tt.want {
				t.Errorf("status = %v, want %v", p.Status, tt.want)
			}
			if p.OverMinutes != tt.wantOver {
				t.Errorf("over minutes = %d, want %d", p.OverMinutes, tt.wantOver)
			}
			if p.RemainingMinutes != tt.wantRemaining {
				t.Errorf("remaining minutes = %d, want %d", p.RemainingMinutes, tt.wantRemaining)
			}
		})
	}
}

func TestProjectInvalidTarget(t *testing.T) {
	l := startedLedger(t, "08:30", 60, 0)
	l.TargetEndTime = "25:99"
	if _, err := Project(l); err == nil {
		t.Error("Project() expected error for invalid target clock")
	}
}
