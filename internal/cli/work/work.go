package work

import (
	"fmt"
	"time"

	"github.com/ykhara/lamiope/internal/cli"
	"github.com/ykhara/lamiope/internal/ledger"
	"github.com/ykhara/lamiope/internal/utils"
)

type StartCmd struct {
	At   string `short:"a" help:"Start retroactively at this clock (HH:MM)."`
	Auto bool   `help:"Start at the configured shift start instead of now."`
}

func (c *StartCmd) Validate() error {
	if c.At != "" && !utils.ValidateClockFormat(c.At) {
		return fmt.Errorf("invalid --at time format (expected HH:MM): %s", c.At)
	}
	if c.At != "" && c.Auto {
		return fmt.Errorf("--at and --auto are mutually exclusive")
	}
	return nil
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	switch {
	case c.At != "":
		if err := ledger.SetStartTime(l, c.At); err != nil {
			return err
		}
	case c.Auto:
		if _, err := ledger.AutoStartWork(l, time.Now()); err != nil {
			return err
		}
	default:
		ledger.StartWork(l, time.Now())
	}

	if err := ctx.Save(l); err != nil {
		return err
	}
	fmt.Printf("Work day started at %s, target end %s\n",
		utils.FormatClock(*l.WorkStartTime), l.TargetEndTime)
	return nil
}

// SetStartCmd corrects the recorded start after the fact.
type SetStartCmd struct {
	Time string `arg:"" help:"New work start clock (HH:MM)."`
}

func (c *SetStartCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	if err := ledger.SetStartTime(l, c.Time); err != nil {
		return err
	}
	if err := ctx.Save(l); err != nil {
		return err
	}
	fmt.Printf("Work start corrected to %s\n", c.Time)
	return nil
}

// TargetCmd toggles the deadline between the normal shift end and the
// overtime end.
type TargetCmd struct{}

func (c *TargetCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}
	target := ledger.ToggleTarget(l)
	if err := ctx.Save(l); err != nil {
		return err
	}
	if target == l.TimeSettings.OvertimeEnd {
		fmt.Printf("Target end switched to overtime: %s\n", target)
	} else {
		fmt.Printf("Target end switched to normal shift end: %s\n", target)
	}
	return nil
}

// ResetCmd clears the whole day: sessions, jobs, and time tracking.
// Settings survive.
type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	l, err := ctx.Ledger()
	if err != nil {
		return err
	}

	ok, err := ctx.Confirm("Clear the whole day?",
		fmt.Sprintf("This deletes %d sessions with %d jobs and resets the work clock.", len(l.Sessions), l.JobCount()))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Reset cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	ledger.ResetDay(l)
	if err := ctx.Save(l); err != nil {
		return err
	}
	fmt.Println("Day cleared.")
	return nil
}
