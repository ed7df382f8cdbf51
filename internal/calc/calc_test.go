package calc

import (
	"errors"
	"math"
	"testing"
)

func TestSheetCountFromParts(t *testing.T) {
	tests := []struct {
		name     string
		copies   int
		surfaces int
		spares   int
		want     int
		wantErr  bool
	}{
		{
			name:     "exact division",
			copies:   100,
			surfaces: 4,
			spares:   0,
			want:     25,
		},
		{
			name:     "rounds up with spares",
			copies:   100,
			surfaces: 8,
			spares:   5,
			want:     18,
		},
		{
			name:     "small batch",
			copies:   7,
			surfaces: 3,
			spares:   1,
			want:     4,
		},
		{
			name:     "single copy single surface",
			copies:   1,
			surfaces: 1,
			spares:   0,
			want:     1,
		},
		{
			name:     "zero copies",
			copies:   0,
			surfaces: 4,
			spares:   0,
			wantErr:  true,
		},
		{
			name:     "zero surfaces",
			copies:   100,
			surfaces: 0,
			spares:   0,
			wantErr:  true,
		},
		{
			name:     "negative spares",
			copies:   100,
			surfaces: 4,
			spares:   -1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SheetCountFromParts(tt.copies, tt.surfaces, tt.spares)
			if (err != nil) != tt.wantErr {
				t.Errorf("SheetCountFromParts() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("SheetCountFromParts() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("SheetCountFromParts() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewJob(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{
			name: "valid job",
			params: Params{
				SheetCount:      100,
				PaperLengthMm:   300,
				OverlapWidthMm:  10,
				ProcessSpeedMPM: 5,
			},
		},
		{
			name: "zero overlap is valid",
			params: Params{
				SheetCount:      10,
				PaperLengthMm:   540,
				OverlapWidthMm:  0,
				ProcessSpeedMPM: 12,
			},
		},
		{
			name: "zero sheets",
			params: Params{
				SheetCount:      0,
				PaperLengthMm:   300,
				OverlapWidthMm:  10,
				ProcessSpeedMPM: 5,
			},
			wantErr: true,
		},
		{
			name: "overlap equals paper length",
			params: Params{
				SheetCount:      10,
				PaperLengthMm:   300,
				OverlapWidthMm:  300,
				ProcessSpeedMPM: 5,
			},
			wantErr: true,
		},
		{
			name: "overlap exceeds paper length",
			params: Params{
				SheetCount:      10,
				PaperLengthMm:   300,
				OverlapWidthMm:  400,
				ProcessSpeedMPM: 5,
			},
			wantErr: true,
		},
		{
			name: "negative overlap",
			params: Params{
				SheetCount:      10,
				PaperLengthMm:   300,
				OverlapWidthMm:  -1,
				ProcessSpeedMPM: 5,
			},
			wantErr: true,
		},
		{
			name: "zero speed",
			params: Params{
				SheetCount:      10,
				PaperLengthMm:   300,
				OverlapWidthMm:  10,
				ProcessSpeedMPM: 0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := NewJob(tt.params)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewJob() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("NewJob() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if job.ID == "" {
				t.Error("NewJob() assigned no ID")
			}
			if job.UsageLengthMeters <= 0 {
				t.Errorf("NewJob() usage length = %v, want > 0", job.UsageLengthMeters)
			}
			if job.Completed {
				t.Error("NewJob() job should start incomplete")
			}
		})
	}
}

func TestNewJobDerivedValues(t *testing.T) {
	job, err := NewJob(Params{
		SheetCount:      100,
		PaperLengthMm:   300,
		OverlapWidthMm:  10,
		ProcessSpeedMPM: 5,
	})
	if err != nil {
		t.Fatalf("NewJob() error = %v", err)
	}

	if math.Abs(job.UsageLengthMeters-0.29) > 1e-9 {
		t.Errorf("usage length = %v, want 0.29", job.UsageLengthMeters)
	}
	if math.Abs(job.ProcessingMinutes-5.8) > 1e-9 {
		t.Errorf("processing time = %v, want 5.8", job.ProcessingMinutes)
	}
	if math.Abs(job.TotalUsageMeters()-29.0) > 1e-9 {
		t.Errorf("total usage = %v, want 29.0", job.TotalUsageMeters())
	}
}

func TestCheckLongRunning(t *testing.T) {
	short, err := NewJob(Params{SheetCount: 10, PaperLengthMm: 300, OverlapWidthMm: 10, ProcessSpeedMPM: 5})
	if err != nil {
		t.Fatalf("NewJob() error = %v", err)
	}
	if warn := CheckLongRunning(short); warn != nil {
		t.Errorf("CheckLongRunning() = %v, want nil for a short job", warn)
	}

	// 10000 sheets * 0.5m / 1 m/min = 5000 minutes
	long, err := NewJob(Params{SheetCount: 10000, PaperLengthMm: 500, OverlapWidthMm: 0, ProcessSpeedMPM: 1})
	if err != nil {
		t.Fatalf("NewJob() error = %v", err)
	}
	warn := CheckLongRunning(long)
	if warn == nil {
		t.Fatal("CheckLongRunning() = nil, want warning for a long job")
	}
	if warn.Minutes != long.ProcessingMinutes {
		t.Errorf("warning minutes = %v, want %v", warn.Minutes, long.ProcessingMinutes)
	}
}
