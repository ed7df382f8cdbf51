package models

import "time"

// JobRecord is one batch of sheets run through the laminator. Material usage
// and processing time are derived at creation and only change through an
// explicit sheet-count edit.
type JobRecord struct {
	ID                string     `json:"id"`
	Name              string     `json:"name,omitempty"`
	CreatedAt         time.Time  `json:"timestamp"`
	SheetCount        int        `json:"sheets"`
	PaperLengthMm     float64    `json:"paperLength"`
	OverlapWidthMm    float64    `json:"overlapWidth"`
	ProcessSpeedMPM   float64    `json:"processSpeed"` // meters per minute
	UsageLengthMeters float64    `json:"usageLength"`  // per sheet, (paper - overlap) / 1000
	ProcessingMinutes float64    `json:"processingTime"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
}

// TotalUsageMeters is the material this job commits from its session's roll.
func (j JobRecord) TotalUsageMeters() float64 {
	return float64(j.SheetCount) * j.UsageLengthMeters
}
