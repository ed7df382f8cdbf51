package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/projector"
	"github.com/ykhara/lamiope/internal/utils"
)

const reportSheet = "Day Report"

// WriteXLSX writes the day report workbook: every job with its derived
// values, followed by the day totals and the finish-time projection.
func WriteXLSX(path string, l *models.Ledger) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", reportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Session", "Job", "Sheets", "Material Used (m)", "Processing Time (min)", "Status", "Completed At"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(reportSheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(reportSheet, "A1", lastCol, headerStyle)

	row := 2
	for i := range l.Sessions {
		s := &l.Sessions[i]
		for _, j := range s.Jobs {
			name := j.Name
			if name == "" {
				name = j.ID
			}
			status := "pending"
			completedAt := ""
			if j.Completed {
				status = "completed"
				if j.CompletedAt != nil {
					completedAt = utils.FormatClock(*j.CompletedAt)
				}
			}

			f.SetCellValue(reportSheet, cellName(1, row), s.ID)
			f.SetCellValue(reportSheet, cellName(2, row), name)
			f.SetCellValue(reportSheet, cellName(3, row), j.SheetCount)
			f.SetCellValue(reportSheet, cellName(4, row), j.TotalUsageMeters())
			f.SetCellValue(reportSheet, cellName(5, row), j.ProcessingMinutes)
			f.SetCellValue(reportSheet, cellName(6, row), status)
			f.SetCellValue(reportSheet, cellName(7, row), completedAt)
			row++
		}
	}

	row++ // blank row before the summary
	var totalSheets int
	var totalMeters float64
	completed := 0
	for i := range l.Sessions {
		for _, j := range l.Sessions[i].Jobs {
			totalSheets += j.SheetCount
			totalMeters += j.TotalUsageMeters()
			if j.Completed {
				completed++
			}
		}
	}

	summary := [][2]any{
		{"Date", utils.Today()},
		{"Jobs", l.JobCount()},
		{"Completed", completed},
		{"Sheets", totalSheets},
		{"Material Used (m)", totalMeters},
		{"Processing Time (min)", l.TotalProcessingMinutes()},
		{"Extra Time (min)", l.ExtraMinutes},
	}
	if proj, err := projector.Project(l); err == nil && proj.Status != projector.StatusNotStarted {
		summary = append(summary, [2]any{"Projected Finish", utils.FormatClock(proj.FinishTime)})
	}

	for _, pair := range summary {
		f.SetCellValue(reportSheet, cellName(1, row), pair[0])
		f.SetCellValue(reportSheet, cellName(2, row), pair[1])
		row++
	}

	return f.SaveAs(path)
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
