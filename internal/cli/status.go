package cli

import (
	"fmt"

	"github.com/ykhara/lamiope/internal/models"
	"github.com/ykhara/lamiope/internal/projector"
	"github.com/ykhara/lamiope/internal/shortage"
	"github.com/ykhara/lamiope/internal/utils"
)

// StatusCmd prints the day at a glance: work clock, finish projection,
// film balance, and job progress.
type StatusCmd struct{}

func (cmd *StatusCmd) Run(ctx *Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	printWorkState(l)
	fmt.Println()

	proj, err := projector.Project(l)
	if err != nil {
		return fmt.Errorf("failed to project finish time: %w", err)
	}
	printProjection(l, proj)
	fmt.Println()

	if len(l.Sessions) == 0 {
		fmt.Println("No film sessions today. Load a roll with 'lamiope film new <meters>'.")
		return nil
	}

	for _, s := range l.SessionsNewestFirst() {
		printSession(l, s)
	}
	return nil
}

func printWorkState(l *models.Ledger) {
	if !l.WorkStarted || l.WorkStartTime == nil {
		fmt.Println("Work not started. Start with 'lamiope work start'.")
		return
	}
	fmt.Printf("Work started at %s, target end %s", utils.FormatClock(*l.WorkStartTime), l.TargetEndTime)
	if l.ExtraMinutes > 0 {
		fmt.Printf(", extra time %s", FormatMinutes(float64(l.ExtraMinutes)))
	}
	fmt.Println()
}

func printProjection(l *models.Ledger, proj projector.Projection) {
	if proj.Status == projector.StatusNotStarted {
		fmt.Printf("Planned work: %s processing + %dm cleanup\n",
			FormatMinutes(l.TotalProcessingMinutes()), l.TimeSettings.CleanupMin)
		return
	}

	fmt.Printf("Projected finish: %s (%s of work)\n",
		utils.FormatClock(proj.FinishTime), FormatMinutes(float64(proj.TotalWorkMinutes)))
	switch proj.Status {
	case projector.StatusOnTrack:
		fmt.Printf("On track, %s to spare before %s\n",
			FormatMinutes(float64(proj.RemainingMinutes)), l.TargetEndTime)
	case projector.StatusWarning:
		fmt.Printf("⚠ Cutting it close: %s left before %s\n",
			FormatMinutes(float64(proj.RemainingMinutes)), l.TargetEndTime)
	case projector.StatusOverdue:
		fmt.Printf("❌ Over target by %s\n", FormatMinutes(float64(proj.OverMinutes)))
	}
}

func printSession(l *models.Ledger, s *models.FilmSession) {
	marker := " "
	if s.ID == l.ActiveSessionID {
		marker = "*"
	}

	done := 0
	for _, j := range s.Jobs {
		if j.Completed {
			done++
		}
	}

	fmt.Printf("%s Session %s: %s of %s left, %d/%d jobs done",
		marker, ShortID(s.ID), FormatMeters(s.RemainingMeters()), FormatMeters(s.CapacityMeters), done, len(s.Jobs))

	switch shortage.Classify(s) {
	case shortage.Empty:
		fmt.Print("  [FILM EMPTY]")
	case shortage.Critical:
		fmt.Print("  [film critical]")
	case shortage.Low:
		fmt.Print("  [film low]")
	}
	fmt.Println()
}
