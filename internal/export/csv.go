// Package export renders the day ledger for other tools: a CSV work
// report, a JSON snapshot for transfer between machines, and an XLSX day
// report.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/utils"
)

// utf8BOM makes spreadsheet applications pick up the encoding instead of
// guessing a legacy code page.
const utf8BOM = "\xEF\xBB\xBF"

var csvHeader = []string{
	"Date", "Completed At", "Job", "Sheets", "Material Used (m)", "Processing Time (min)", "Session",
}

// WriteCSV writes the completed jobs of the day as a quoted CSV work
// report.
func WriteCSV(w io.Writer, l *models.Ledger) error {
	var b strings.Builder
	b.WriteString(utf8BOM)
	writeCSVRow(&b, csvHeader)

	date := utils.Today()
	for _, sj := range l.CompletedJobs() {
		j := sj.Job
		completedAt := ""
		if j.CompletedAt != nil {
			completedAt = utils.FormatClock(*j.CompletedAt)
		}
		name := j.Name
		if name == "" {
			name = j.ID
		}
		writeCSVRow(&b, []string{
			date,
			completedAt,
			name,
			fmt.Sprintf("%d", j.SheetCount),
			fmt.Sprintf("%.1f", j.TotalUsageMeters()),
			fmt.Sprintf("%.1f", j.ProcessingMinutes),
			sj.Session.ID,
		})
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeCSVRow quotes every field unconditionally, doubling embedded
// quotes.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")
}
