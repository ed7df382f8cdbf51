package export

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ykhara/lamiope/internal/models"
)

func reportLedger() *models.Ledger {
	l := models.NewLedger()
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	doneAt := time.Date(2025, 3, 10, 10, 15, 0, 0, time.Local)
	l.Sessions = []models.FilmSession{{
		ID:             "s1",
		StartTime:      now,
		CapacityMeters: 50,
		Jobs: []models.JobRecord{
			{
				ID: "j1", Name: `flyers, "A4" batch`, CreatedAt: now,
				SheetCount: 100, PaperLengthMm: 300, OverlapWidthMm: 10, ProcessSpeedMPM: 5,
				UsageLengthMeters: 0.29, ProcessingMinutes: 5.8,
				Completed: true, CompletedAt: &doneAt,
			},
			{
				ID: "j2", CreatedAt: now,
				SheetCount: 4, PaperLengthMm: 540, OverlapWidthMm: 0, ProcessSpeedMPM: 12,
				UsageLengthMeters: 0.54, ProcessingMinutes: 0.18,
			},
		},
	}}
	l.ActiveSessionID = "s1"
	return l
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, reportLedger()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, utf8BOM) {
		t.Error("CSV output missing UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\r\n")
	// Header plus the one completed job; the pending job stays out.
	if len(lines) != 2 {
		t.Fatalf("CSV has %d lines, want 2: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], `"Completed At"`) {
		t.Errorf("header row = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"flyers, ""A4"" batch"`) {
		t.Errorf("embedded quotes and commas not escaped: %q", lines[1])
	}
	if !strings.Contains(lines[1], `"10:15"`) || !strings.Contains(lines[1], `"29.0"`) || !strings.Contains(lines[1], `"5.8"`) {
		t.Errorf("derived values missing from row: %q", lines[1])
	}
	if strings.Contains(out, "j2") {
		t.Error("pending job leaked into the work report")
	}
}

func TestWriteCSVEmptyDay(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, models.NewLedger()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\r\n"), "\r\n")
	if len(lines) != 1 {
		t.Errorf("empty day CSV has %d lines, want header only", len(lines))
	}
}

func TestJSONSnapshotRoundTrip(t *testing.T) {
	want := reportLedger()
	want.ExtraMinutes = 75

	var b strings.Builder
	if err := WriteJSON(&b, want); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	got, err := ReadJSON(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if len(got.Sessions) != 1 || len(got.Sessions[0].Jobs) != 2 {
		t.Fatalf("snapshot lost sessions or jobs: %+v", got)
	}
	if got.ExtraMinutes != 75 || got.ActiveSessionID != "s1" {
		t.Errorf("snapshot lost ledger state: %+v", got)
	}
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json"},
		{"empty object", "{}"},
		{"unrelated object", `{"foo": "bar"}`},
		{"missing version", `{"filmSessions": [], "timeSettings": {}}`},
		{"zero version", `{"version": 0, "filmSessions": [], "timeSettings": {}}`},
		{"missing film sessions", `{"version": 3, "timeSettings": {}}`},
		{"missing time settings", `{"version": 3, "filmSessions": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ReadJSON(%q) accepted a non-snapshot", tt.input)
			}
		})
	}
}

func TestReadJSONRejectsNewerVersion(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"version": 999}`))
	if err == nil || !strings.Contains(err.Error(), "newer than supported") {
		t.Errorf("ReadJSON() error = %v, want newer-than-supported", err)
	}
}

func TestReadJSONRejectsInconsistentSnapshot(t *testing.T) {
	l := reportLedger()
	l.Sessions[0].Jobs[0].ProcessingMinutes = 99 // drifted derived value

	var b strings.Builder
	if err := WriteJSON(&b, l); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadJSON(strings.NewReader(b.String())); err == nil {
		t.Error("ReadJSON() accepted an inconsistent snapshot")
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteXLSX(path, reportLedger()); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(reportSheet); err != nil || idx < 0 {
		t.Fatalf("sheet %q missing (idx=%d, err=%v)", reportSheet, idx, err)
	}

	header, err := f.GetCellValue(reportSheet, "B1")
	if err != nil || header != "Job" {
		t.Errorf("B1 = %q, want Job", header)
	}
	// Both jobs appear, completed or not.
	firstJob, _ := f.GetCellValue(reportSheet, "B2")
	secondJob, _ := f.GetCellValue(reportSheet, "B3")
	if firstJob != `flyers, "A4" batch` || secondJob != "j2" {
		t.Errorf("job rows = %q, %q", firstJob, secondJob)
	}

	rows, err := f.GetRows(reportSheet)
	if err != nil {
		t.Fatal(err)
	}
	var foundSheets bool
	for _, row := range rows {
		if len(row) >= 2 && row[0] == "Sheets" && row[1] == "104" {
			foundSheets = true
		}
	}
	if !foundSheets {
		t.Error("summary block missing the sheet total")
	}
}
