// Package calc derives a job's material usage and processing time from the
// operator's inputs. It is pure apart from the id/timestamp source.
package calc

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ykhara/lamiope/internal/models"
)

// ErrInvalidInput marks caller-correctable validation failures. Nothing is
// mutated when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// LongRunningMinutes is the advisory threshold above which a single job's
// processing time warrants operator confirmation (8 hours).
const LongRunningMinutes = 480

// Params are the processing conditions for one job. SheetCount may be given
// directly or derived via SheetCountFromParts.
type Params struct {
	Name            string
	SheetCount      int
	PaperLengthMm   float64
	OverlapWidthMm  float64
	ProcessSpeedMPM float64 // meters per minute
}

// Validate checks the preconditions without building anything.
func (p Params) Validate() error {
	if p.SheetCount < 1 {
		return fmt.Errorf("%w: sheet count must be at least 1, got %d", ErrInvalidInput, p.SheetCount)
	}
	if p.PaperLengthMm <= 0 {
		return fmt.Errorf("%w: paper length must be positive, got %.1f", ErrInvalidInput, p.PaperLengthMm)
	}
	if p.OverlapWidthMm < 0 {
		return fmt.Errorf("%w: overlap width must not be negative, got %.1f", ErrInvalidInput, p.OverlapWidthMm)
	}
	if p.OverlapWidthMm >= p.PaperLengthMm {
		return fmt.Errorf("%w: paper length (%.1fmm) must exceed overlap width (%.1fmm)",
			ErrInvalidInput, p.PaperLengthMm, p.OverlapWidthMm)
	}
	if p.ProcessSpeedMPM <= 0 {
		return fmt.Errorf("%w: process speed must be positive, got %.1f", ErrInvalidInput, p.ProcessSpeedMPM)
	}
	return nil
}

// SheetCountFromParts derives the actual sheet count from copies, surfaces
// per sheet, and spare sheets: ceil(copies/surfaces) + spares.
func SheetCountFromParts(copies, surfaces, spares int) (int, error) {
	if copies < 1 {
		return 0, fmt.Errorf("%w: copies must be at least 1, got %d", ErrInvalidInput, copies)
	}
	if surfaces < 1 {
		return 0, fmt.Errorf("%w: surfaces per sheet must be at least 1, got %d", ErrInvalidInput, surfaces)
	}
	if spares < 0 {
		return 0, fmt.Errorf("%w: spare sheets must not be negative, got %d", ErrInvalidInput, spares)
	}
	return int(math.Ceil(float64(copies)/float64(surfaces))) + spares, nil
}

// NewJob validates the params and builds a JobRecord with its derived usage
// length and processing time populated.
func NewJob(p Params) (models.JobRecord, error) {
	if err := p.Validate(); err != nil {
		return models.JobRecord{}, err
	}

	usageLength := (p.PaperLengthMm - p.OverlapWidthMm) / 1000 // meters per sheet
	processingTime := float64(p.SheetCount) * usageLength / p.ProcessSpeedMPM

	return models.JobRecord{
		ID:                uuid.NewString(),
		Name:              p.Name,
		CreatedAt:         time.Now(),
		SheetCount:        p.SheetCount,
		PaperLengthMm:     p.PaperLengthMm,
		OverlapWidthMm:    p.OverlapWidthMm,
		ProcessSpeedMPM:   p.ProcessSpeedMPM,
		UsageLengthMeters: usageLength,
		ProcessingMinutes: processingTime,
	}, nil
}

// LongRunWarning is advisory: the job is valid but its processing time
// exceeds LongRunningMinutes. The caller decides whether to proceed.
type LongRunWarning struct {
	Minutes float64
}

func (w *LongRunWarning) Error() string {
	return fmt.Sprintf("processing time is %.1f minutes (%.1f hours)", w.Minutes, w.Minutes/60)
}

// CheckLongRunning returns a warning when the job's processing time crosses
// the advisory threshold, nil otherwise.
func CheckLongRunning(job models.JobRecord) *LongRunWarning {
	if job.ProcessingMinutes > LongRunningMinutes {
		return &LongRunWarning{Minutes: job.ProcessingMinutes}
	}
	return nil
}
